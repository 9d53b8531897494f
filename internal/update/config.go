package update

import (
	"os"
	"path/filepath"
	"strings"
)

type RuntimeConfig struct {
	StateFilePath    string
	EventLogPath     string
	EventLogDisabled bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "showpick")
	return RuntimeConfig{
		StateFilePath: filepath.Join(dir, "tv_show_progress.json"),
		EventLogPath:  filepath.Join(dir, "events.db"),
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("SHOWPICK_STATE_FILE"); ok {
		cfg.StateFilePath = v
	}
	if v, ok := getEnvString("SHOWPICK_EVENT_LOG"); ok {
		cfg.EventLogPath = v
	}
	if v, ok := getEnvBool("SHOWPICK_EVENT_LOG_DISABLED"); ok {
		cfg.EventLogDisabled = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
