package pg

import (
	"fmt"

	"github.com/GlebRadaev/bankapi/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) { zap.S().Fatalf(format, v...) }
func (gooseLogger) Printf(format string, v ...interface{}) { zap.S().Infof(format, v...) }

// RunMigrations applies the embedded schema before the server accepts traffic.
func RunMigrations(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
