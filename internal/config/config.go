// Package config reads the runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DBPath        string
	TickInterval  time.Duration
	StatusSeconds int
	ConfirmDelete bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:        defaultDBPath(),
		TickInterval:  time.Second,
		StatusSeconds: 4,
		ConfirmDelete: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("RATADO_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("RATADO_TICK_MS"); ok && v > 0 {
		cfg.TickInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("RATADO_STATUS_SECONDS"); ok && v > 0 {
		cfg.StatusSeconds = v
	}
	if v, ok := getEnvBool("RATADO_CONFIRM_DELETE"); ok {
		cfg.ConfirmDelete = v
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ratado.db"
	}
	return filepath.Join(home, ".ratado", "ratado.db")
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
