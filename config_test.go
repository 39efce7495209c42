package clr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clr.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_LoadConfig(t *testing.T) {
	t.Run("full_file", func(t *testing.T) {
		path := writeConfig(t, `
auto_space = false
timestamp_format = "HH:mm"
trim_before = true
trim_after = true
console = false
force_color = true
log_forward_errors = false
tags = ["net", "db"]
blacklist_tags = ["cfg-test-deny"]
whitelist_tags = ["cfg-test-allow"]

[forwarding]
url = "https://logs.example.com/ingest"
method = "PUT"
[forwarding.headers]
Authorization = "Bearer tkn"
`)
		cfg, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.NotNil(t, cfg.AutoSpace)
		assert.False(t, *cfg.AutoSpace)
		assert.Equal(t, "HH:mm", cfg.TimestampFormat)
		assert.Equal(t, []string{"net", "db"}, cfg.Tags)
		assert.Equal(t, "https://logs.example.com/ingest", cfg.Forwarding.URL)
		assert.Equal(t, "PUT", cfg.Forwarding.Method)
		assert.Equal(t, "Bearer tkn", cfg.Forwarding.Headers["Authorization"])

		l, out, _, ft := newTestLogger(cfg.Options()...)
		assert.Equal(t, []string{"net", "db"}, l.Tags())
		res := l.Log("a", "b")
		l.Wait()
		assert.Equal(t, "ab", res.Stripped, "auto_space=false not applied")
		assert.Empty(t, out.String(), "console=false not applied")
		calls := ft.Calls()
		assert.Len(t, calls, 1, "forwarding target not applied")
		assert.Equal(t, "PUT", calls[0].method)

		f := NewFilter()
		cfg.SeedFilter(f)
		assert.True(t, f.IsBlacklisted("cfg-test-deny"))
		assert.True(t, f.IsWhitelisted("cfg-test-allow"))
	})
	t.Run("empty_file_touches_nothing", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, ""))
		assert.NoError(t, err)
		assert.Empty(t, cfg.Options())

		l, _, _, _ := newTestLogger(cfg.Options()...)
		assert.Equal(t, "a b", l.Log("a", "b").Stripped, "defaults must survive an empty config")
	})
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorContains(t, err, "reading config")
	})
	t.Run("invalid_toml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "tags = ["))
		assert.ErrorContains(t, err, "parsing config")
	})
	t.Run("seed_default_filter", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `blacklist_tags = ["cfg-test-global-deny"]`))
		assert.NoError(t, err)
		cfg.SeedFilter(nil)
		assert.True(t, IsBlacklisted("cfg-test-global-deny"))
	})
}

func Test_Ident(t *testing.T) {
	t.Run("uuid_form", func(t *testing.T) {
		id := NewIdent()
		assert.Len(t, id, 36)
		assert.NotEqual(t, id, NewIdent(), "identifiers must not repeat")
	})
	t.Run("short", func(t *testing.T) {
		for _, n := range []int{1, 8, 32, 100} {
			id := ShortIdent(n)
			assert.Len(t, id, n)
			assert.NotContains(t, id, "-")
		}
		assert.Len(t, ShortIdent(0), 8)
		assert.Len(t, ShortIdent(-3), 8)
	})
}
