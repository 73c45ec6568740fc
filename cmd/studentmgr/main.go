// Package main - точка входа интерактивной консоли учёта студентов и оценок.
//
// Архитектура следует принципам Clean Architecture:
// - Domain: сущность Student и контракт хранилища
// - Application: команды и запросы (AddStudent, ListStudents, GetAverage, PassFail)
// - Infrastructure: хранилище в памяти процесса
// - Interface: текстовое меню поверх stdin/stdout
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/alem-hub/student-management/config"
	"github.com/alem-hub/student-management/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/student-management/internal/interface/console"
	"github.com/alem-hub/student-management/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	// Неверная конфигурация не должна мешать запуску меню:
	// откатываемся на значения по умолчанию и предупреждаем в лог.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log, err := setupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	if cfgErr != nil {
		log.Warn("invalid configuration, using defaults", logger.Err(cfgErr))
	}
	log.Info("starting student console",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ХРАНИЛИЩЕ И КОНСОЛЬ
	// ─────────────────────────────────────────────────────────────────────────
	repo := memory.NewStudentRepository()

	ui := console.New(repo, console.Options{
		In:     in,
		Out:    out,
		Config: cfg.Console,
		Logger: log,
	})

	return ui.Run(ctx)
}

func setupLogger(cfg *config.Config) (*logger.Logger, error) {
	output, err := logger.ParseOutput(cfg.Observability.LogOutput)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Output:    output,
		Level:     logger.ParseLevel(cfg.EffectiveLogLevel()),
		Service:   cfg.App.Name,
		AddCaller: cfg.IsDevelopment() && cfg.App.Debug,
	})

	return log.WithSessionID(uuid.NewString()), nil
}
