package snapshotting

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting/mocks"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func datasetWithRows(n int) *domain.Dataset {
	rows := make([]domain.Row, n)
	for i := range rows {
		rows[i] = domain.Row{"id": i}
	}
	return domain.NewDataset([]string{"id"}, rows)
}

func newSource(ctrl *gomock.Controller) *mocks.MockDataSource {
	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().Name().Return("fake").AnyTimes()
	return source
}

func TestCache_FetchesOncePerTTLWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	source := newSource(ctrl)

	var fetches int
	source.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		fetches++
		return datasetWithRows(fetches), nil
	}).Times(2)

	cache := NewCache(source, 60*time.Second, WithClock(clock.Now))
	ctx := context.Background()

	ds, err := cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	clock.Advance(30 * time.Second)
	_, err = cache.Dataset(ctx)
	require.NoError(t, err)

	clock.Advance(30 * time.Second) // exatamente no TTL ainda é válido
	ds, err = cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 1, ds.Len())

	clock.Advance(time.Second)
	ds, err = cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.Equal(t, 2, ds.Len())

	_, err = cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestCache_ServesPreviousSnapshotWhenRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	source := newSource(ctrl)
	original := datasetWithRows(3)

	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).Return(original, nil),
		source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("quota exceeded")),
		source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("quota exceeded")),
		source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(5), nil),
	)

	cache := NewCache(source, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	_, err := cache.Dataset(ctx)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	ds, err := cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Same(t, original, ds)

	status := cache.Status(ctx).Status
	assert.True(t, status.Available)
	assert.True(t, status.Stale)
	assert.Equal(t, "quota exceeded", status.LastError)

	// Cada chamada com snapshot vencido tenta a origem de novo
	ds, err = cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Same(t, original, ds)

	ds, err = cache.Dataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())

	status = cache.Status(ctx).Status
	assert.False(t, status.Stale)
	assert.Empty(t, status.LastError)
	assert.Equal(t, 5, status.Rows)
}

func TestCache_UnavailableWithoutPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.New("credentials rejected")
	source := newSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(nil, upstream).Times(2)

	cache := NewCache(source, time.Minute, WithClock(newFakeClock().Now))

	ds, err := cache.Dataset(context.Background())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	assert.ErrorIs(t, err, upstream)

	_, err = cache.Dataset(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)

	status := cache.Status(context.Background()).Status
	assert.False(t, status.Available)
	assert.Nil(t, status.FetchedAt)
	assert.Equal(t, 60.0, status.TTLSeconds)
}

func TestCache_ConcurrentRequestsShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	var fetches atomic.Int32

	source := newSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		fetches.Add(1)
		<-release
		return datasetWithRows(7), nil
	}).Times(1)

	cache := NewCache(source, time.Minute, WithClock(newFakeClock().Now))

	const readers = 20
	var wg sync.WaitGroup
	results := make([]*domain.Dataset, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Dataset(context.Background())
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load())
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestCache_RefreshForcesFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	source := newSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(1), nil),
		source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(2), nil),
		source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("timeout")),
	)

	cache := NewCache(source, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	_, err := cache.Dataset(ctx)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	status, err := cache.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Rows)
	assert.Equal(t, 0.0, status.AgeSeconds)

	status, err = cache.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, 2, status.Rows, "o snapshot anterior continua disponível")
	assert.Equal(t, "timeout", status.LastError)
}

func TestCache_RefreshDoesNotJoinInFlightFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	source := newSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
			close(started)
			<-release
			return datasetWithRows(1), nil
		}),
		source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(2), nil),
	)

	cache := NewCache(source, time.Minute, WithClock(newFakeClock().Now))

	var wg sync.WaitGroup
	var readErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, readErr = cache.Dataset(context.Background())
	}()

	<-started

	var status *domain.SnapshotStatus
	var refreshErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		status, refreshErr = cache.Refresh(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, readErr)
	require.NoError(t, refreshErr)
	assert.Equal(t, 2, status.Rows, "a atualização forçada busca de novo")

	ds, err := cache.Dataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len(), "o snapshot da busca forçada prevalece")
}

func TestCache_RecordsFetchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := newFakeClock()
	source := newSource(ctrl)
	history := mocks.NewMockHistoryRecorder(ctrl)

	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(4), nil),
		source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("503")),
	)

	var saved []*domain.SnapshotFetch
	history.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fetch *domain.SnapshotFetch) error {
		saved = append(saved, fetch)
		return nil
	}).Times(2)
	history.EXPECT().ListRecent(gomock.Any(), 5).DoAndReturn(func(ctx context.Context, limit int) ([]*domain.SnapshotFetch, error) {
		return saved, nil
	})

	cache := NewCache(source, time.Minute, WithClock(clock.Now), WithHistory(history, 5))
	ctx := context.Background()

	_, err := cache.Dataset(ctx)
	require.NoError(t, err)
	_, err = cache.Refresh(ctx)
	require.Error(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, domain.SnapshotFetchSuccess, saved[0].Outcome)
	assert.Equal(t, 4, saved[0].Rows)
	assert.Equal(t, "fake", saved[0].Source)
	assert.NotEmpty(t, saved[0].ID)
	assert.Equal(t, domain.SnapshotFetchFailure, saved[1].Outcome)
	assert.Equal(t, "503", saved[1].Error)
	assert.Equal(t, 0, saved[1].Rows)

	response := cache.Status(ctx)
	assert.Len(t, response.History, 2)
}

func TestCache_HistoryFailureDoesNotAffectSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := newSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(datasetWithRows(2), nil)

	history := mocks.NewMockHistoryRecorder(ctrl)
	history.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	history.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	cache := NewCache(source, time.Minute, WithClock(newFakeClock().Now), WithHistory(history, 10))

	ds, err := cache.Dataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	response := cache.Status(context.Background())
	assert.True(t, response.Status.Available)
	assert.Nil(t, response.History)
}
