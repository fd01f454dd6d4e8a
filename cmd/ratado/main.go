package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/config"
	"github.com/milosmiric/ratado-sub000/internal/storage"
	"github.com/milosmiric/ratado-sub000/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ratado failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := repo.EnsureInbox(ctx); err != nil {
		return fmt.Errorf("ensure inbox: %w", err)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	tags, err := repo.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	st := app.NewState(tasks, projects, tags)
	st.StatusTTL = time.Duration(cfg.StatusSeconds) * time.Second
	st.ConfirmDelete = cfg.ConfirmDelete

	program := tea.NewProgram(update.New(st, repo, cfg.TickInterval), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
