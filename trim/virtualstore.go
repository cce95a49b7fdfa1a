package trim

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// augment synthesizes additional FileKey/ExcludeKey/RegKey entries under
// the VirtualStore mirror locations that exist on the host. It only ever
// adds keys; when any are added, the role's keys are renumbered from 1
// in sorted order.
func (t *Trimmer) augment(e *types.Entry) {
	t.augmentRole(e, types.RoleFileKey, vsFileRules)
	t.augmentRole(e, types.RoleExcludeKey, vsFileRules)
	t.augmentRole(e, types.RoleRegKey, vsRegRules)
}

func (t *Trimmer) augmentRole(e *types.Entry, role types.KeyRole, rules []vsRule) {
	keys := e.KeysByRole(role)
	if len(keys) == 0 {
		return
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[strings.ToLower(k.Value)] = true
	}

	out := slices.Clone(keys)
	added := false
	for _, k := range keys {
		for _, rule := range rules {
			cand, ok := replaceFold(k.Value, rule.src, rule.dst)
			if !ok || cand == k.Value || seen[strings.ToLower(cand)] {
				continue
			}
			probe := (&types.Key{Value: cand, Role: role}).PathString()
			if exists, err := t.dispatch(probe); err != nil || !exists {
				continue
			}
			out = append(out, &types.Key{Value: cand, Role: role})
			seen[strings.ToLower(cand)] = true
			added = true
			t.log.Debug("added VirtualStore key", "entry", e.Name, "value", cand)
		}
	}
	if !added {
		return
	}

	sortKeysByValue(out)
	prefix := role.String()
	for i, k := range out {
		k.Index = i + 1
		k.Name = prefix + strconv.Itoa(i+1)
	}
	e.ReplaceRole(role, out)
}

// replaceFold replaces the first case-insensitive occurrence of src
// in value with dst.
func replaceFold(value, src, dst string) (string, bool) {
	i := strings.Index(strings.ToLower(value), strings.ToLower(src))
	if i < 0 {
		return "", false
	}
	return value[:i] + dst + value[i+len(src):], true
}

// sortKeysByValue orders keys ascending by value with "|" as an
// interstitial break, so multi-segment values stay grouped by their
// leading segments.
func sortKeysByValue(keys []*types.Key) {
	slices.SortStableFunc(keys, func(a, b *types.Key) int {
		return comparePipeValues(a.Value, b.Value)
	})
}

func comparePipeValues(a, b string) int {
	as := strings.Split(a, "|")
	bs := strings.Split(b, "|")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := cmp.Compare(strings.ToLower(as[i]), strings.ToLower(bs[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}
