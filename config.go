package clr

/*
config.go

TOML configuration file support. A file can seed a logger's options and the
process-wide filter sets:

	console = true
	auto_space = true
	timestamp_format = "HH:mm:ss"
	tags = ["net", "db"]
	blacklist_tags = ["chatty"]
	whitelist_tags = ["net"]

	[forwarding]
	url = "https://logs.example.com/ingest"
	method = "POST"
	[forwarding.headers]
	Authorization = "Bearer ..."

Boolean fields are pointers so an absent key leaves the logger default
untouched (same last-write-wins merge as Configure).
*/

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the recognized TOML keys.
type FileConfig struct {
	AutoSpace        *bool    `toml:"auto_space"`
	TimestampFormat  string   `toml:"timestamp_format"`
	TrimBefore       *bool    `toml:"trim_before"`
	TrimAfter        *bool    `toml:"trim_after"`
	Console          *bool    `toml:"console"`
	ForceColor       *bool    `toml:"force_color"`
	LogForwardErrors *bool    `toml:"log_forward_errors"`
	Tags             []string `toml:"tags"`
	BlacklistTags    []string `toml:"blacklist_tags"`
	WhitelistTags    []string `toml:"whitelist_tags"`

	Forwarding *ForwardingConfig `toml:"forwarding"`
}

// ForwardingConfig is the file form of a Forwarding target (no error
// callback — that stays code-only).
type ForwardingConfig struct {
	URL     string            `toml:"url"`
	Method  string            `toml:"method"`
	Headers map[string]string `toml:"headers"`
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Options converts the file keys present into logger options.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.AutoSpace != nil {
		opts = append(opts, WithAutoSpace(*c.AutoSpace))
	}
	if c.TimestampFormat != "" {
		opts = append(opts, WithTimestampFormat(c.TimestampFormat))
	}
	if c.TrimBefore != nil {
		opts = append(opts, WithTrimBefore(*c.TrimBefore))
	}
	if c.TrimAfter != nil {
		opts = append(opts, WithTrimAfter(*c.TrimAfter))
	}
	if c.Console != nil {
		opts = append(opts, WithConsole(*c.Console))
	}
	if c.ForceColor != nil {
		opts = append(opts, WithForceColor(*c.ForceColor))
	}
	if c.LogForwardErrors != nil {
		opts = append(opts, WithLogForwardErrors(*c.LogForwardErrors))
	}
	if len(c.Tags) > 0 {
		opts = append(opts, WithTags(c.Tags...))
	}
	if c.Forwarding != nil && c.Forwarding.URL != "" {
		opts = append(opts, WithForwarding(&Forwarding{
			URL:     c.Forwarding.URL,
			Method:  c.Forwarding.Method,
			Headers: c.Forwarding.Headers,
		}))
	}
	return opts
}

// SeedFilter feeds the blacklist/whitelist lists into the given filter
// (DefaultFilter when nil). Additive, like the flag parsing path.
func (c *FileConfig) SeedFilter(f *Filter) {
	if f == nil {
		f = DefaultFilter
	}
	f.Blacklist(c.BlacklistTags...)
	f.Whitelist(c.WhitelistTags...)
}
