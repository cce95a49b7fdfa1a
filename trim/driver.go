package trim

import (
	"log/slog"
	"math"

	"github.com/lwd-temp/Winapp2/pkg/types"
	"github.com/lwd-temp/Winapp2/trim/hostprobe"
)

// Trimmer audits and augments a ruleset against one host. A Trimmer is
// cheap to construct and single-use state free; the same Trimmer may run
// over multiple rulesets.
type Trimmer struct {
	host hostprobe.Host
	log  *slog.Logger
	res  *resolver

	includes    map[string]bool
	excludes    map[string]bool
	useIncludes bool
	useExcludes bool
}

// New returns a Trimmer probing the given host.
func New(host hostprobe.Host, opts ...Option) *Trimmer {
	t := &Trimmer{host: host, log: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	t.res = &resolver{host: host, log: t.log}
	return t
}

// Stats summarizes one trim run.
type Stats struct {
	// Initial is the entry count before trimming.
	Initial int
	// Final is the entry count after trimming.
	Final int
}

// Removed returns the number of entries dropped.
func (s Stats) Removed() int {
	return s.Initial - s.Final
}

// Percent returns the share of entries removed, rounded to the nearest
// integer.
func (s Stats) Percent() int {
	if s.Initial == 0 {
		return 0
	}
	return int(math.Round(float64(s.Removed()) / float64(s.Initial) * 100))
}

// Run trims the ruleset in place: sections in declared order, entries in
// declared order within each section. Entries failing audit are removed;
// survivors are augmented with existing VirtualStore mirrors.
func (t *Trimmer) Run(rs *types.Ruleset) Stats {
	stats := Stats{Initial: rs.EntryCount()}

	for _, sec := range rs.Sections {
		kept := sec.Entries[:0]
		for _, e := range sec.Entries {
			if !t.audit(e) {
				t.log.Debug("trimming entry", "entry", e.Name)
				continue
			}
			t.augment(e)
			kept = append(kept, e)
		}
		sec.Entries = kept
	}

	stats.Final = rs.EntryCount()
	t.log.Info("trim complete",
		"initial", stats.Initial,
		"final", stats.Final,
		"removed", stats.Removed(),
		"percent", stats.Percent())
	return stats
}
