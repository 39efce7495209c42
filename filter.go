package clr

/*
filter.go

The tag filter: coarse, additive allow/deny sets consulted before any log
line is emitted. Intentionally not a rules engine — sets only grow, there is
no removal or reset operation.

A Filter is an explicit constructible object so tests can stay hermetic;
DefaultFilter is the process-wide instance every logger uses unless given
another one, and the package-level Blacklist/Whitelist helpers operate on it.
*/

import (
	"strings"
	"sync"
)

// Filter holds the blacklist/whitelist tag sets. Mutation is expected during
// setup, before concurrent log calls begin, but the sets are mutex-guarded
// anyway so late additions from another goroutine stay safe.
type Filter struct {
	mtx       sync.RWMutex
	blacklist map[string]struct{}
	whitelist map[string]struct{}
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return &Filter{
		blacklist: map[string]struct{}{},
		whitelist: map[string]struct{}{},
	}
}

// DefaultFilter is the process-wide filter instance (convenience parity with
// module-level filter state; prefer a dedicated Filter in tests).
var DefaultFilter = NewFilter()

// Blacklist adds one or more tags to the deny set. There is no removal.
func (f *Filter) Blacklist(tags ...string) *Filter {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	for _, tag := range tags {
		f.blacklist[tag] = struct{}{}
	}
	return f
}

// Whitelist adds one or more tags to the allow set. A whitelisted tag is
// rescued from its own blacklisting (and only from its own).
func (f *Filter) Whitelist(tags ...string) *Filter {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	for _, tag := range tags {
		f.whitelist[tag] = struct{}{}
	}
	return f
}

// IsBlacklisted reports whether the tag is in the deny set.
func (f *Filter) IsBlacklisted(tag string) bool {
	f.mtx.RLock()
	defer f.mtx.RUnlock()
	_, ok := f.blacklist[tag]
	return ok
}

// IsWhitelisted reports whether the tag is in the allow set.
func (f *Filter) IsWhitelisted(tag string) bool {
	f.mtx.RLock()
	defer f.mtx.RUnlock()
	_, ok := f.whitelist[tag]
	return ok
}

// Suppresses evaluates the filter over a logger's tag list: the first tag
// that is blacklisted and not also whitelisted suppresses the whole call.
// Whitelisting rescues a tag from its own blacklisting only — it does not
// rescue a call blocked by a different blacklisted tag on the same logger.
func (f *Filter) Suppresses(tags []string) bool {
	for _, tag := range tags {
		if f.IsBlacklisted(tag) && !f.IsWhitelisted(tag) {
			return true
		}
	}
	return false
}

// Package-level wrappers over DefaultFilter.

func Blacklist(tags ...string) { DefaultFilter.Blacklist(tags...) }
func Whitelist(tags ...string) { DefaultFilter.Whitelist(tags...) }
func IsBlacklisted(tag string) bool { return DefaultFilter.IsBlacklisted(tag) }
func IsWhitelisted(tag string) bool { return DefaultFilter.IsWhitelisted(tag) }

// SplitTagList splits a comma-separated tag list (as received from CLI flags
// like --blacklist-tags) into trimmed, non-empty tags.
func SplitTagList(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
