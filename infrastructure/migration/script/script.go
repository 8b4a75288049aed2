package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/vfg2006/permits-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
)

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return repository.NewSnapshotHistoryRepository(tx).Migrate(ctx)
	})
	if err != nil {
		log.Fatalf("ERRO ao criar tabela do histórico: %v", err)
	}

	log.Printf("Migração concluída em %s", time.Since(startTime))
}
