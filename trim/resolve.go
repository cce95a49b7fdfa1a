package trim

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
	"github.com/lwd-temp/Winapp2/trim/hostprobe"
)

// resolver turns raw detection values containing %VAR% placeholders and
// * wildcards into a boolean "something matching this exists on the
// host". Variable lookup results are never re-expanded: a literal % in
// an environment value stays a literal %.
type resolver struct {
	host hostprobe.Host
	log  *slog.Logger
}

// pathExists resolves the value and probes the host. It reports
// types.ErrMalformedVariable when the placeholder cannot be split; the
// caller must then retain the owning entry.
//
// Values that contained %ProgramFiles% get one retry with the
// ProgramFiles(x86) directory before the miss is final.
func (r *resolver) pathExists(value string) (bool, error) {
	expanded, pfSensitive, err := r.expand(value, false)
	if err != nil {
		return false, err
	}
	if r.exists(expanded) {
		return true, nil
	}
	if pfSensitive && r.host.Env("ProgramFiles(x86)") != "" {
		retry, _, _ := r.expand(value, true)
		r.log.Debug("retrying under ProgramFiles(x86)", "path", retry)
		if r.exists(retry) {
			return true, nil
		}
	}
	return false, nil
}

// expand substitutes the leading %VAR% placeholder. With x86 set, a
// ProgramFiles placeholder resolves to the (x86) directory instead.
func (r *resolver) expand(value string, x86 bool) (string, bool, error) {
	if !strings.Contains(value, "%") {
		return value, false, nil
	}
	parts := strings.SplitN(value, "%", 3)
	if len(parts) < 3 {
		return "", false, fmt.Errorf("%w: %q", types.ErrMalformedVariable, value)
	}
	resolved, pfSensitive := r.lookup(parts[1], x86)
	return parts[0] + resolved + parts[2], pfSensitive, nil
}

// lookup resolves one placeholder name. The product pseudo-variables
// map differently on XP-era hosts (5.1, 5.2); everything outside the
// vocabulary falls through to the host environment.
func (r *resolver) lookup(name string, x86 bool) (string, bool) {
	xp := r.onXP()
	switch strings.ToLower(name) {
	case "programfiles":
		if x86 {
			return r.host.Env("ProgramFiles(x86)"), true
		}
		return r.host.Env("ProgramFiles"), true
	case "documents":
		if xp {
			return r.host.Env("UserProfile") + `\My Documents`, false
		}
		return r.host.Env("UserProfile") + `\Documents`, false
	case "commonappdata":
		if xp {
			return r.host.Env("AllUsersProfile") + `\Application Data`, false
		}
		return r.host.Env("AllUsersProfile"), false
	case "locallowappdata":
		return localLow(r.host.Env("LocalAppData")), false
	case "pictures":
		if xp {
			return r.host.Env("UserProfile") + `\My Documents\My Pictures`, false
		}
		return r.host.Env("UserProfile") + `\Pictures`, false
	case "music":
		if xp {
			return r.host.Env("UserProfile") + `\My Documents\My Music`, false
		}
		return r.host.Env("UserProfile") + `\Music`, false
	case "video":
		if xp {
			return r.host.Env("UserProfile") + `\My Documents\My Videos`, false
		}
		return r.host.Env("UserProfile") + `\Videos`, false
	default:
		return r.host.Env(name), false
	}
}

func (r *resolver) onXP() bool {
	v := r.host.OSVersion()
	return v == 5.1 || v == 5.2
}

// localLow replaces the final "Local" path component with "LocalLow".
func localLow(local string) string {
	if i := strings.LastIndexByte(local, '\\'); i >= 0 && strings.EqualFold(local[i+1:], "Local") {
		return local[:i+1] + "LocalLow"
	}
	return local
}

// exists probes a fully substituted path, expanding wildcards when
// present. Permission-denied anywhere is a hit.
func (r *resolver) exists(path string) bool {
	if strings.Contains(path, "*") {
		return r.walkWildcard(path)
	}
	return r.host.PathExists(path).Exists()
}

// walkWildcard expands * segment by segment, maintaining a working set
// of currently-real prefixes. An empty working set is a definitive miss;
// a denied enumeration is a definitive hit.
func (r *resolver) walkWildcard(path string) bool {
	segs := strings.Split(path, `\`)
	if len(segs) < 2 {
		return r.host.PathExists(path).Exists()
	}

	prefixes := []string{segs[0]}
	for i, seg := range segs[1:] {
		last := i == len(segs)-2
		var next []string
		if strings.Contains(seg, "*") {
			re := segmentPattern(seg)
			for _, p := range prefixes {
				fis, pres := r.host.ReadDir(p)
				if pres == hostprobe.Denied {
					return true
				}
				for _, fi := range fis {
					if !last && !fi.IsDir() {
						continue
					}
					if re.MatchString(fi.Name()) {
						next = append(next, p+`\`+fi.Name())
					}
				}
			}
			if last {
				return len(next) > 0
			}
		} else {
			for _, p := range prefixes {
				cand := p + `\` + seg
				if last {
					if r.host.PathExists(cand).Exists() {
						return true
					}
					continue
				}
				switch r.host.DirExists(cand) {
				case hostprobe.Denied:
					return true
				case hostprobe.Found:
					next = append(next, cand)
				}
			}
			if last {
				return false
			}
		}
		if len(next) == 0 {
			return false
		}
		prefixes = next
	}
	return false
}

// segmentPattern compiles a shell-style segment wildcard into an
// anchored, case-insensitive regexp.
func segmentPattern(seg string) *regexp.Regexp {
	parts := strings.Split(seg, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)^` + strings.Join(parts, ".*") + `$`)
}
