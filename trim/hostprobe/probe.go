// Package hostprobe answers existence questions about the running host:
// filesystem paths, registry keys, environment variables, and the OS
// version. Results are three-valued so that permission-denied can be
// told apart from absent; callers decide what denied means (the trimming
// engine treats it as present).
package hostprobe

import (
	"fmt"
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// Presence is the result of a host existence check.
type Presence int

const (
	// Missing means the target does not exist.
	Missing Presence = iota
	// Found means the target exists and was readable.
	Found
	// Denied means the host refused access. The target is there, we just
	// cannot look inside it.
	Denied
)

// Exists maps Denied to true: an inaccessible-but-present target must
// not be treated as absent.
func (p Presence) Exists() bool {
	return p != Missing
}

// String implements fmt.Stringer for log records.
func (p Presence) String() string {
	switch p {
	case Found:
		return "found"
	case Denied:
		return "denied"
	default:
		return "missing"
	}
}

// RegRoot identifies a supported registry hive root.
type RegRoot int

const (
	RootInvalid RegRoot = iota
	RootHKCU
	RootHKLM
	RootHKU
	RootHKCR
)

// String returns the short root name.
func (r RegRoot) String() string {
	switch r {
	case RootHKCU:
		return "HKCU"
	case RootHKLM:
		return "HKLM"
	case RootHKU:
		return "HKU"
	case RootHKCR:
		return "HKCR"
	default:
		return "invalid"
	}
}

// ParseRegRoot maps a short root name onto a RegRoot, case-insensitively.
// Anything outside HKCU/HKLM/HKU/HKCR is an error.
func ParseRegRoot(s string) (RegRoot, error) {
	for _, r := range []RegRoot{RootHKCU, RootHKLM, RootHKU, RootHKCR} {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return RootInvalid, fmt.Errorf("%w: %q", types.ErrBadRegistryRoot, s)
}

// SplitRegPath splits a raw registry value ("HKLM\Software\Acme") into
// its root and subpath.
func SplitRegPath(value string) (root string, path string) {
	root, path, _ = strings.Cut(value, `\`)
	return root, path
}
