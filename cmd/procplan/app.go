package main

import (
	"context"
	"fmt"

	"procplan/db"
	"procplan/db/migrations"
	"procplan/internal/config"
	"procplan/internal/plan"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// app - общие зависимости подкоманд
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
	dbConn *sqlx.DB
	engine *plan.Engine
}

func newApp(ctx context.Context, envFile string) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	logger := cfg.NewLogger()

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresConn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	migrations.SetLogger(logger)

	store := db.NewStorage(dbConn)
	return &app{
		cfg:    cfg,
		logger: logger,
		dbConn: dbConn,
		engine: plan.NewEngine(store, rules, logrus.NewEntry(logger)),
	}, nil
}

func (a *app) Close() error {
	return a.dbConn.Close()
}
