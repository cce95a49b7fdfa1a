package winapp

import (
	"log/slog"
	"net/http"

	"github.com/lwd-temp/Winapp2/trim/hostprobe"
)

// TrimConfig is the complete configuration surface of a trim run. Pass
// it into Trim; there is no process-wide state.
type TrimConfig struct {
	// InputPath is the ruleset read when Download is off.
	InputPath string
	// OutputPath receives the reduced ruleset, overwriting.
	OutputPath string
	// IncludesPath names entries retained unconditionally. Read only
	// when UseIncludes is on.
	IncludesPath string
	// ExcludesPath names entries discarded unconditionally (unless an
	// include retains them first). Read only when UseExcludes is on.
	ExcludesPath string
	UseIncludes  bool
	UseExcludes  bool
	// Download fetches the ruleset from DownloadURL instead of
	// InputPath. An offline check gates execution.
	Download    bool
	DownloadURL string
}

// DefaultTrimConfig returns the conventional paths: winapp2.ini in the
// working directory, trimmed in place, with the canonical download URL.
func DefaultTrimConfig() TrimConfig {
	return TrimConfig{
		InputPath:    "winapp2.ini",
		OutputPath:   "winapp2.ini",
		IncludesPath: "includes.ini",
		ExcludesPath: "excludes.ini",
		DownloadURL:  DefaultDownloadURL,
	}
}

// Option configures Trim and TrimRuleset.
type Option func(*runtime)

type runtime struct {
	host   hostprobe.Host
	log    *slog.Logger
	client *http.Client
}

func newRuntime(opts []Option) *runtime {
	rt := &runtime{log: slog.Default()}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.host == nil {
		rt.host = hostprobe.New()
	}
	return rt
}

// WithHost substitutes the probed host. The default is the live
// machine; tests pass a hostprobe.Fake.
func WithHost(h hostprobe.Host) Option {
	return func(rt *runtime) { rt.host = h }
}

// WithLogger routes log records. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(rt *runtime) {
		if l != nil {
			rt.log = l
		}
	}
}

// WithHTTPClient substitutes the client used in download mode.
func WithHTTPClient(c *http.Client) Option {
	return func(rt *runtime) { rt.client = c }
}
