package trim

import (
	"strconv"
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
	"github.com/lwd-temp/Winapp2/trim/hostprobe"
)

// dispatch routes a value to the registry or filesystem probe: values
// beginning with "HK" are registry paths, everything else is a
// filesystem path resolved through the resolver.
func (t *Trimmer) dispatch(value string) (bool, error) {
	if strings.HasPrefix(value, "HK") {
		return t.regExists(value), nil
	}
	return t.res.pathExists(value)
}

// regExists probes a registry path rooted at HKCU/HKLM/HKU/HKCR. An
// HKLM\Software path that is missing is retried once under
// HKLM\Software\WOW6432Node before the miss is final.
func (t *Trimmer) regExists(value string) bool {
	rootName, sub := hostprobe.SplitRegPath(value)
	root, err := hostprobe.ParseRegRoot(rootName)
	if err != nil {
		t.log.Warn("skipping detection with invalid registry root", "value", value)
		return false
	}
	if t.host.OpenKey(root, sub).Exists() {
		return true
	}
	if root == hostprobe.RootHKLM {
		if retry, ok := wowRetryPath(sub); ok {
			return t.host.OpenKey(root, retry).Exists()
		}
	}
	return false
}

// wowRetryPath rewrites "Software\<rest>" as
// "Software\WOW6432Node\<rest>" for the 32-bit view fall-through.
// Matching is case-insensitive; paths already under WOW6432Node are not
// retried.
func wowRetryPath(sub string) (string, bool) {
	const software = `SOFTWARE`
	up := strings.ToUpper(sub)
	if !strings.HasPrefix(up, software+`\`) || strings.HasPrefix(up, software+`\WOW6432NODE`) {
		return "", false
	}
	return sub[:len(software)] + `\WOW6432Node` + sub[len(software):], true
}

// evalDetectOS reports whether any DetectOS range admits the host
// version. Ranges are "|V" (host <= V), "V|" (host >= V), and "V1|V2"
// (inclusive both ends); a bare "V" behaves as a lower bound.
func (t *Trimmer) evalDetectOS(keys []*types.Key) bool {
	for _, k := range keys {
		if osRangeContains(k.Value, t.host.OSVersion()) {
			return true
		}
	}
	return false
}

func osRangeContains(value string, host float64) bool {
	lo, hi, found := strings.Cut(value, "|")
	switch {
	case !found:
		return host >= parseVersionNumber(lo)
	case lo == "":
		return host <= parseVersionNumber(hi)
	case hi == "":
		return host >= parseVersionNumber(lo)
	default:
		return host >= parseVersionNumber(lo) && host <= parseVersionNumber(hi)
	}
}

// parseVersionNumber parses a locale-independent decimal; garbage and
// empty strings parse as 0.
func parseVersionNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// evalSpecial evaluates one SpecialDetect tag. Unknown tags are missing,
// not fatal.
func (t *Trimmer) evalSpecial(tag string) bool {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case tagChrome:
		for _, target := range chromeTargets {
			if ok, err := t.dispatch(target); err == nil && ok {
				return true
			}
		}
		return false
	case tagMozilla:
		return t.probeSpecialPath(mozillaTarget)
	case tagThunderbird:
		return t.probeSpecialPath(thunderbirdTarget)
	case tagOpera:
		return t.probeSpecialPath(operaTarget)
	default:
		t.log.Warn("unknown SpecialDetect tag", "tag", tag)
		return false
	}
}

func (t *Trimmer) probeSpecialPath(target string) bool {
	ok, err := t.res.pathExists(target)
	return err == nil && ok
}
