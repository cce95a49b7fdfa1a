package trim

import "log/slog"

// Option configures a Trimmer.
type Option func(*Trimmer)

// WithLogger routes the engine's log records. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Trimmer) {
		if l != nil {
			t.log = l
		}
	}
}

// WithIncludes turns on the include override: entries whose folded name
// is in the set are retained regardless of host state. Include beats
// exclude.
func WithIncludes(names map[string]bool) Option {
	return func(t *Trimmer) {
		t.includes = names
		t.useIncludes = true
	}
}

// WithExcludes turns on the exclude override: entries whose folded name
// is in the set are discarded unless an include override retains them
// first.
func WithExcludes(names map[string]bool) Option {
	return func(t *Trimmer) {
		t.excludes = names
		t.useExcludes = true
	}
}
