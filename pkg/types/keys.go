package types

import (
	"strconv"
	"strings"
)

// KeyRole classifies a winapp2.ini key by its name prefix.
type KeyRole int

// Key roles, in the order they conventionally appear inside an entry.
const (
	RoleOther KeyRole = iota
	RoleDefault
	RoleLangSecRef
	RoleSection
	RoleWarning
	RoleDetectOS
	RoleDetect
	RoleDetectFile
	RoleSpecialDetect
	RoleFileKey
	RoleRegKey
	RoleExcludeKey
)

// rolePrefixes maps the canonical key-name prefix to its role. ParseRole
// compares the whole index-stripped name against each prefix, so the
// order of this list does not affect classification.
var rolePrefixes = []struct {
	prefix string
	role   KeyRole
}{
	{"SpecialDetect", RoleSpecialDetect},
	{"DetectFile", RoleDetectFile},
	{"DetectOS", RoleDetectOS},
	{"Detect", RoleDetect},
	{"ExcludeKey", RoleExcludeKey},
	{"FileKey", RoleFileKey},
	{"RegKey", RoleRegKey},
	{"LangSecRef", RoleLangSecRef},
	{"Section", RoleSection},
	{"Warning", RoleWarning},
	{"Default", RoleDefault},
}

// String returns the canonical key-name prefix for the role, or "" for
// RoleOther.
func (r KeyRole) String() string {
	for _, rp := range rolePrefixes {
		if rp.role == r {
			return rp.prefix
		}
	}
	return ""
}

// ParseRole classifies a key name. The trailing positional index is
// ignored, and matching is case-insensitive.
func ParseRole(name string) KeyRole {
	base := strings.TrimRight(name, "0123456789")
	for _, rp := range rolePrefixes {
		if strings.EqualFold(base, rp.prefix) {
			return rp.role
		}
	}
	return RoleOther
}

// Key is a single positional key of an entry, e.g. "DetectFile1".
type Key struct {
	// Name is the full key name as written, including the index.
	Name string
	// Value is the raw right-hand side of the assignment.
	Value string
	// Role is derived from Name.
	Role KeyRole
	// Index is the positional index parsed from Name (0 if absent).
	Index int
}

// NewKey builds a Key from a raw name/value pair, deriving role and index.
func NewKey(name, value string) *Key {
	base := strings.TrimRight(name, "0123456789")
	idx, _ := strconv.Atoi(name[len(base):])
	return &Key{Name: name, Value: value, Role: ParseRole(name), Index: idx}
}

// PathString derives the probe-usable path from the key value: the part
// before the first "|" separator, with surrounding whitespace and quotes
// removed. FileKey values carry file filters and flags after the
// separator; ExcludeKey values additionally lead with a PATH|/FILE|/REG|
// type token, which is skipped.
func (k *Key) PathString() string {
	v := k.Value
	if k.Role == RoleExcludeKey {
		for _, tok := range []string{"PATH|", "FILE|", "REG|"} {
			if len(v) >= len(tok) && strings.EqualFold(v[:len(tok)], tok) {
				v = v[len(tok):]
				break
			}
		}
	}
	if i := strings.IndexByte(v, '|'); i >= 0 {
		v = v[:i]
	}
	return strings.Trim(strings.TrimSpace(v), `"`)
}

// Entry is one named section of the ruleset: a cleanable application or
// component with its detection criteria and cleanup keys.
type Entry struct {
	// Name is the section header, unique within the ruleset.
	Name string
	// Keys holds all keys in declared order.
	Keys []*Key
}

// KeysByRole returns the entry's keys of the given role in declared order.
func (e *Entry) KeysByRole(role KeyRole) []*Key {
	var out []*Key
	for _, k := range e.Keys {
		if k.Role == role {
			out = append(out, k)
		}
	}
	return out
}

// HasRole reports whether the entry declares at least one key of the role.
func (e *Entry) HasRole(role KeyRole) bool {
	for _, k := range e.Keys {
		if k.Role == role {
			return true
		}
	}
	return false
}

// ReplaceRole swaps all keys of the given role for the supplied slice,
// keeping the block at the position of the role's first occurrence. If
// the entry had no keys of the role, the block is appended.
func (e *Entry) ReplaceRole(role KeyRole, keys []*Key) {
	at := len(e.Keys)
	kept := make([]*Key, 0, len(e.Keys))
	for _, k := range e.Keys {
		if k.Role == role {
			if at == len(e.Keys) {
				at = len(kept)
			}
			continue
		}
		kept = append(kept, k)
	}
	out := make([]*Key, 0, len(kept)+len(keys))
	out = append(out, kept[:at]...)
	out = append(out, keys...)
	out = append(out, kept[at:]...)
	e.Keys = out
}
