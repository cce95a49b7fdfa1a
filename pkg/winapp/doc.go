// Package winapp is the high-level API for trimming winapp2.ini
// rulesets: read (or download) a ruleset, evaluate each entry's
// detection criteria against the running host, drop entries whose
// targets are absent, augment survivors with existing VirtualStore
// mirrors, and write the reduced ruleset back.
//
// Most callers need only Trim with a TrimConfig:
//
//	stats, err := winapp.Trim(ctx, winapp.DefaultTrimConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("removed %d of %d entries\n", stats.Removed(), stats.Initial)
//
// Finer-grained callers can Parse a ruleset themselves, run TrimRuleset
// against a custom host (tests use hostprobe.Fake), and Marshal the
// result.
package winapp
