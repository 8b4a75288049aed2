package snapshotting

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
	"github.com/vfg2006/permits-dashboard-api/pkg/metrics"
	"github.com/vfg2006/permits-dashboard-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

// ErrSnapshotUnavailable indica que a origem falhou e não existe snapshot anterior
var ErrSnapshotUnavailable = errors.New("snapshot unavailable")

// Chaves do singleflight. A atualização forçada não pode reaproveitar uma busca
// comum que já estava em andamento.
const (
	refreshKey       = "snapshot"
	forcedRefreshKey = "snapshot-forced"
)

// Cache mantém o último snapshot da planilha e decide quando buscar de novo.
// O par (dataset, momento da busca) é trocado de uma vez só; leitores veem o par
// antigo completo ou o novo completo.
type Cache struct {
	source DataSource
	ttl    time.Duration
	now    func() time.Time

	snapshot  atomic.Pointer[domain.Snapshot]
	lastError atomic.Pointer[string]
	group     singleflight.Group
	fetchMu   sync.Mutex

	history      HistoryRecorder
	historyLimit int
}

type Option func(*Cache)

// WithClock troca o relógio usado para calcular a idade do snapshot
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithHistory registra cada busca na origem e expõe as últimas no status
func WithHistory(history HistoryRecorder, limit int) Option {
	return func(c *Cache) {
		c.history = history
		c.historyLimit = limit
	}
}

func NewCache(source DataSource, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dataset retorna o dataset do snapshot atual, buscando na origem quando ele não existe
// ou passou do TTL. Se a busca falhar, o snapshot anterior é devolvido mesmo vencido.
func (c *Cache) Dataset(ctx context.Context) (*domain.Dataset, error) {
	if snap := c.snapshot.Load(); snap != nil && !c.expired(snap) {
		metrics.RecordCacheRead(metrics.CacheHit)
		return snap.Dataset, nil
	}

	snap, err := c.refresh(ctx, false)
	if err == nil {
		metrics.RecordCacheRead(metrics.CacheRefresh)
		return snap.Dataset, nil
	}

	if previous := c.snapshot.Load(); previous != nil {
		metrics.RecordCacheRead(metrics.CacheStale)
		log.ForContext(ctx).WithFields(log.Fields{
			"snapshot_fetched_at": previous.FetchedAt,
			"error":               err.Error(),
		}).Warn("snapshot: refresh failed, serving previous snapshot")
		return previous.Dataset, nil
	}

	metrics.RecordCacheRead(metrics.CacheUnavailable)
	return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
}

// Refresh força uma busca na origem e retorna o status resultante
func (c *Cache) Refresh(ctx context.Context) (*domain.SnapshotStatus, error) {
	if _, err := c.refresh(ctx, true); err != nil {
		status := c.status()
		return &status, err
	}

	status := c.status()
	return &status, nil
}

// Status descreve o snapshot atual e, se configurado, as últimas buscas registradas
func (c *Cache) Status(ctx context.Context) *domain.SnapshotStatusResponse {
	response := &domain.SnapshotStatusResponse{Status: c.status()}
	if c.history == nil {
		return response
	}

	history, err := c.history.ListRecent(ctx, c.historyLimit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("snapshot: failed to list fetch history")
		return response
	}
	response.History = history

	return response
}

func (c *Cache) expired(snap *domain.Snapshot) bool {
	return c.now().Sub(snap.FetchedAt) > c.ttl
}

// refresh executa no máximo uma busca por vez; chamadas concorrentes do mesmo tipo
// esperam e recebem o mesmo resultado. Buscas comuns e forçadas são enfileiradas
// pelo fetchMu, então a forçada sempre começa depois da comum que estava em andamento
// e o snapshot final é o dela.
func (c *Cache) refresh(ctx context.Context, force bool) (*domain.Snapshot, error) {
	// A busca é compartilhada entre requisições, então não herda o cancelamento de quem chegou primeiro
	fetchCtx := context.WithoutCancel(ctx)

	key := refreshKey
	if force {
		key = forcedRefreshKey
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.fetchMu.Lock()
		defer c.fetchMu.Unlock()

		if !force {
			if snap := c.snapshot.Load(); snap != nil && !c.expired(snap) {
				return snap, nil
			}
		}
		return c.fetch(fetchCtx)
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Snapshot), nil
}

func (c *Cache) fetch(ctx context.Context) (*domain.Snapshot, error) {
	logger := log.ForContext(ctx).WithField("source", c.source.Name())
	startedAt := c.now()
	start := time.Now()

	ds, err := c.source.Fetch(ctx)
	duration := time.Since(start)

	metrics.RecordSheetFetch(c.source.Name(), duration, err)
	c.record(ctx, startedAt, duration, ds, err)

	if err != nil {
		message := err.Error()
		c.lastError.Store(&message)
		logger.WithError(err).Error("snapshot: failed to fetch worksheet")
		return nil, err
	}

	if ds == nil {
		ds = domain.NewDataset(nil, nil)
	}

	snap := &domain.Snapshot{Dataset: ds, FetchedAt: c.now()}
	if previous := c.snapshot.Swap(snap); previous != nil {
		metrics.SnapshotAgeAtRefresh.Observe(snap.FetchedAt.Sub(previous.FetchedAt).Seconds())
	}
	c.lastError.Store(nil)
	metrics.SnapshotRows.Set(float64(ds.Len()))

	logger.WithFields(log.Fields{
		"rows":        ds.Len(),
		"duration_ms": duration.Milliseconds(),
	}).Info("snapshot: worksheet fetched")

	return snap, nil
}

// record grava a tentativa no histórico. Falhas aqui não afetam o snapshot.
func (c *Cache) record(ctx context.Context, startedAt time.Time, duration time.Duration, ds *domain.Dataset, fetchErr error) {
	if c.history == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("snapshot: failed to generate fetch id")
		return
	}

	fetch := &domain.SnapshotFetch{
		ID:         id,
		Source:     c.source.Name(),
		Outcome:    domain.SnapshotFetchSuccess,
		Rows:       ds.Len(),
		DurationMS: duration.Milliseconds(),
		StartedAt:  startedAt,
	}
	if fetchErr != nil {
		fetch.Outcome = domain.SnapshotFetchFailure
		fetch.Error = fetchErr.Error()
	}

	if err := c.history.Save(ctx, fetch); err != nil {
		log.ForContext(ctx).WithError(err).Warn("snapshot: failed to save fetch history")
	}
}

func (c *Cache) status() domain.SnapshotStatus {
	status := domain.SnapshotStatus{
		TTLSeconds: c.ttl.Seconds(),
	}
	if message := c.lastError.Load(); message != nil {
		status.LastError = *message
	}

	snap := c.snapshot.Load()
	if snap == nil {
		return status
	}

	fetchedAt := snap.FetchedAt
	age := c.now().Sub(fetchedAt)

	status.Available = true
	status.FetchedAt = &fetchedAt
	status.AgeSeconds = math.Round(age.Seconds()*10) / 10
	status.Stale = age > c.ttl
	status.Rows = snap.Dataset.Len()
	status.Columns = len(snap.Dataset.Columns)

	return status
}
