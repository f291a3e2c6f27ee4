package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"tracking-service/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Up применяет все миграции. Отдельное database/sql соединение нужно goose,
// пул pgx для этого не подходит.
func Up(ctx context.Context, log logger.Logger, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migrations connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close migrations connection", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log.With(logger.NewField("component", "goose"))})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}
	log.Info("Migrations applied", logger.NewField("version", version))
	return nil
}

type gooseLogger struct {
	log logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf не завершает процесс: ошибка и так вернется из Up.
func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error(fmt.Sprintf(format, v...))
}
