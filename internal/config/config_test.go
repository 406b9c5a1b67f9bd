package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"procplan/internal/config"
	"procplan/internal/plan"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"POSTGRES_CONN", "SERVER_ADDRESS", "LOG_LEVEL", "LOG_FORMAT",
	"PLAN_RULES_PATH", "REDIS_URL", "SESSION_TTL", "METRICS_PATH",
}

// unsetEnv очищает переменные на время теста; t.Setenv восстановит их после
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Error(t, cfg.RequireDatabase())
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetEnv(t)
	t.Setenv("POSTGRES_CONN", "postgres://u:p@localhost/db")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_ADDRESS=127.0.0.1:9090\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	require.NoError(t, cfg.RequireDatabase())
	require.Equal(t, logrus.DebugLevel, cfg.NewLogger().GetLevel())
}

func TestLoadInvalid(t *testing.T) {
	unsetEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "xml")
	_, err = config.Load()
	require.Error(t, err)

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SESSION_TTL", "0s")
	_, err = config.Load()
	require.Error(t, err)
}

func TestParseRulesYAML(t *testing.T) {
	rules, err := config.ParseRulesYAML([]byte(`
candidate_statuses:
  - won, stage 2
  - won, stage 3
reserve_state: reserved
exempt_categories: [Misc]
`))
	require.NoError(t, err)
	require.Equal(t, []string{"won, stage 2", "won, stage 3"}, rules.CandidateStatuses)
	require.Equal(t, "reserved", rules.ReserveState)
	require.Equal(t, plan.DefaultEngineerRole, rules.EngineerRole)
	require.Equal(t, []string{"Misc"}, rules.ExemptCategories)

	rules, err = config.ParseRulesYAML(nil)
	require.NoError(t, err)
	require.Equal(t, plan.DefaultRules(), rules)

	_, err = config.ParseRulesYAML([]byte("candidate_statuses: [\"\"]"))
	require.Error(t, err)

	_, err = config.ParseRulesYAML([]byte("reserve_state: [oops"))
	require.Error(t, err)
}

func TestLoadRules(t *testing.T) {
	rules, err := config.LoadRules("")
	require.NoError(t, err)
	require.Equal(t, plan.DefaultRules(), rules)

	_, err = config.LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engineer_role: assembler\n"), 0o600))
	rules, err = config.LoadRules(path)
	require.NoError(t, err)
	require.Equal(t, "assembler", rules.EngineerRole)
}
