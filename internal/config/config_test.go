package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPrivate = `pg:
  host: localhost
  port: 5432
  user: threadfeed
  password: secret
  dbname: threadfeed
write_password: hunter2
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("THREADFEED_WRITE_PASSWORD", "")

	dir := writeConfig(t, "port: 9090\nlog_level: debug\nfeed_poll_interval: 3s\ncors_origins:\n  - http://localhost:3000\n", validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, 9090, cfg.Public.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Public.FeedPollInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.CORSOrigins)
	assert.Equal(t, "hunter2", cfg.WritePassword())
	assert.Equal(t, "disable", cfg.Private.Pg.SSLMode)
	assert.Equal(t, defaultReadTimeout, cfg.Public.ReadTimeout)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("THREADFEED_WRITE_PASSWORD", "from-env")

	dir := writeConfig(t, "log_level: info\n", validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, 7070, cfg.Public.Port)
	assert.Equal(t, "from-env", cfg.WritePassword())
	assert.Equal(t, defaultFeedPollInterval, cfg.Public.FeedPollInterval)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	t.Setenv("THREADFEED_WRITE_PASSWORD", "")
	// write_password is intentionally missing
	private := "pg:\n  host: localhost\n  port: 5432\n  user: u\n  dbname: d\n"
	dir := writeConfig(t, "port: 8080\n", private)

	assert.Panics(t, func() { _ = MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	assert.PanicsWithValue(t, "config file does not exist: "+filepath.Join(dir, "public.yaml"), func() {
		_ = MustLoad(dir)
	})
}
