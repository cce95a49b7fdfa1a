package hostprobe

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Host is the probing capability the trimming engine runs against.
// Implementations must be safe for repeated reads; the engine never
// writes through a Host.
type Host interface {
	// PathExists reports whether path exists as a file or directory.
	PathExists(path string) Presence
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) Presence
	// ReadDir lists the children of a directory for wildcard expansion.
	ReadDir(path string) ([]os.FileInfo, Presence)
	// OpenKey reports whether the registry key root\path exists.
	OpenKey(root RegRoot, path string) Presence
	// OSVersion returns the host OS major.minor as a decimal, cached
	// after the first read.
	OSVersion() float64
	// Env resolves an environment variable, case-insensitively.
	Env(name string) string
}

// Option configures New.
type Option func(*liveHost)

// WithFs swaps the filesystem the host probes. The default is the OS
// filesystem; tests substitute an afero.MemMapFs.
func WithFs(fsys afero.Fs) Option {
	return func(h *liveHost) { h.fs = fsys }
}

// New returns a Host backed by the live machine: the OS filesystem, the
// native registry (on Windows; always missing elsewhere), the process
// environment, and the real OS version.
func New(opts ...Option) Host {
	h := &liveHost{
		fs:  afero.NewOsFs(),
		env: environSnapshot(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type liveHost struct {
	fs  afero.Fs
	env map[string]string

	versionOnce sync.Once
	version     float64
}

func (h *liveHost) PathExists(path string) Presence {
	if _, err := h.fs.Stat(path); err != nil {
		return presenceFromErr(err)
	}
	return Found
}

func (h *liveHost) DirExists(path string) Presence {
	fi, err := h.fs.Stat(path)
	if err != nil {
		return presenceFromErr(err)
	}
	if !fi.IsDir() {
		return Missing
	}
	return Found
}

func (h *liveHost) ReadDir(path string) ([]os.FileInfo, Presence) {
	fis, err := afero.ReadDir(h.fs, path)
	if err != nil {
		return nil, presenceFromErr(err)
	}
	return fis, Found
}

func (h *liveHost) OpenKey(root RegRoot, path string) Presence {
	return openLiveKey(root, path)
}

func (h *liveHost) OSVersion() float64 {
	h.versionOnce.Do(func() {
		h.version = liveOSVersion()
	})
	return h.version
}

func (h *liveHost) Env(name string) string {
	return h.env[strings.ToLower(name)]
}

// presenceFromErr maps a filesystem error onto a Presence. Only
// permission errors count as evidence of existence; anything else
// (not-exist, illegal characters in the path) is a miss.
func presenceFromErr(err error) Presence {
	if errors.Is(err, fs.ErrPermission) || os.IsPermission(err) {
		return Denied
	}
	return Missing
}

// environSnapshot folds the process environment into a case-insensitive
// lookup table, matching Windows environment semantics.
func environSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[strings.ToLower(k)] = v
		}
	}
	return env
}
