package hostprobe

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Fake is an in-memory Host for tests: an afero MemMapFs, a registry
// key set with per-key presence, a fixed OS version, and an environment
// table.
//
// Probe paths use Windows separators; the Fake folds case and rewrites
// separators before touching the MemMapFs, so `C:\Users\X` and
// `c:\users\x` name the same node on any build platform.
type Fake struct {
	// FS backs the filesystem probes. Populate via AddDir/AddFile.
	FS afero.Fs
	// Reg maps folded "ROOT\PATH" onto presence.
	Reg map[string]Presence
	// Vars maps folded variable names onto values.
	Vars map[string]string
	// Version is returned by OSVersion.
	Version float64
	// Denied marks folded paths whose stat/enumeration is refused.
	Denied map[string]bool
}

// NewFake returns a Fake resembling a bare Windows 10 host.
func NewFake() *Fake {
	return &Fake{
		FS:      afero.NewMemMapFs(),
		Reg:     make(map[string]Presence),
		Vars:    make(map[string]string),
		Version: 10.0,
		Denied:  make(map[string]bool),
	}
}

// AddDir creates a directory and its parents.
func (f *Fake) AddDir(p string) *Fake {
	f.FS.MkdirAll(fakePath(p), 0o755)
	return f
}

// AddFile creates an empty file, including parent directories.
func (f *Fake) AddFile(p string) *Fake {
	fp := fakePath(p)
	f.FS.MkdirAll(path.Dir(fp), 0o755)
	afero.WriteFile(f.FS, fp, nil, 0o644)
	return f
}

// DenyPath makes stat and enumeration of the path report Denied.
func (f *Fake) DenyPath(p string) *Fake {
	f.Denied[fakePath(p)] = true
	return f
}

// AddRegKey registers a registry key and all of its ancestors.
func (f *Fake) AddRegKey(p string) *Fake {
	return f.setRegKey(p, Found)
}

// DenyRegKey registers a registry key that refuses access.
func (f *Fake) DenyRegKey(p string) *Fake {
	return f.setRegKey(p, Denied)
}

func (f *Fake) setRegKey(p string, pres Presence) *Fake {
	key := strings.ToUpper(p)
	f.Reg[key] = pres
	for {
		i := strings.LastIndexByte(key, '\\')
		if i < 0 {
			break
		}
		key = key[:i]
		if _, ok := f.Reg[key]; !ok {
			f.Reg[key] = Found
		}
	}
	return f
}

// SetVar sets an environment variable, case-insensitively.
func (f *Fake) SetVar(name, value string) *Fake {
	f.Vars[strings.ToLower(name)] = value
	return f
}

func (f *Fake) PathExists(p string) Presence {
	fp := fakePath(p)
	if f.Denied[fp] {
		return Denied
	}
	if ok, _ := afero.Exists(f.FS, fp); ok {
		return Found
	}
	return Missing
}

func (f *Fake) DirExists(p string) Presence {
	fp := fakePath(p)
	if f.Denied[fp] {
		return Denied
	}
	if ok, _ := afero.DirExists(f.FS, fp); ok {
		return Found
	}
	return Missing
}

func (f *Fake) ReadDir(p string) ([]os.FileInfo, Presence) {
	fp := fakePath(p)
	if f.Denied[fp] {
		return nil, Denied
	}
	fis, err := afero.ReadDir(f.FS, fp)
	if err != nil {
		return nil, Missing
	}
	return fis, Found
}

func (f *Fake) OpenKey(root RegRoot, p string) Presence {
	key := root.String()
	if p != "" {
		key += `\` + p
	}
	return f.Reg[strings.ToUpper(key)]
}

func (f *Fake) OSVersion() float64 {
	return f.Version
}

func (f *Fake) Env(name string) string {
	return f.Vars[strings.ToLower(name)]
}

// fakePath folds a Windows-style path into the MemMapFs namespace.
func fakePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
}
