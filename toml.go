// Package toml parses TOML v1.0.0 documents into a typed key tree and
// serializes that tree to a canonical typed-JSON form for
// cross-implementation conformance testing.
package toml

import (
	"fmt"
	"io"
	"os"
)

// Option configures the size limits applied during a parse.
type Option func(*Limits)

// WithMaxFileSize overrides the maximum accepted source size in bytes.
func WithMaxFileSize(n int) Option { return func(l *Limits) { l.MaxFileSize = n } }

// WithMaxLines overrides the maximum accepted line count.
func WithMaxLines(n int) Option { return func(l *Limits) { l.MaxLines = n } }

// WithMaxIdentifierLength overrides the maximum key identifier length.
func WithMaxIdentifierLength(n int) Option { return func(l *Limits) { l.MaxIdentifierLen = n } }

// WithMaxStringLength overrides the maximum string literal length.
func WithMaxStringLength(n int) Option { return func(l *Limits) { l.MaxStringLen = n } }

// WithMaxSubkeys overrides the maximum number of children per key.
func WithMaxSubkeys(n int) Option { return func(l *Limits) { l.MaxSubkeys = n } }

// WithMaxArrayLength overrides the maximum array element count.
func WithMaxArrayLength(n int) Option { return func(l *Limits) { l.MaxArrayLength = n } }

func resolveLimits(opts []Option) Limits {
	limits := DefaultLimits()
	for _, opt := range opts {
		opt(&limits)
	}
	return limits
}

// LoadString parses src (already in memory) as a TOML document.
func LoadString(src string, opts ...Option) (*Key, error) {
	return Parse(NewBuffer([]byte(src)), "<string>", resolveLimits(opts))
}

// LoadFile reads path and parses it as a TOML document.
func LoadFile(path string, opts ...Option) (*Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("toml: open file %q: %w", path, err)
	}
	return Parse(NewBuffer(data), path, resolveLimits(opts))
}

// LoadStream reads r to completion and parses the result as a TOML
// document. The stream is loaded eagerly, matching the build-once,
// read-many tree model: there is no incremental/streaming parse mode.
func LoadStream(r io.Reader, file string, opts ...Option) (*Key, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("toml: read stream %q: %w", file, err)
	}
	return Parse(NewBuffer(data), file, resolveLimits(opts))
}

// Free releases a tree. The Go implementation has no manual memory
// management to perform, but the call is kept as the explicit
// counterpart to load_*/free in the spec's public surface, and as a
// place a future pooled-allocation implementation could hook into.
func Free(root *Key) {
	if root == nil {
		return
	}
	root.Children = nil
	root.Value = nil
}
