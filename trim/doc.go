// Package trim implements the winapp2.ini entry-detection and trimming
// engine: it evaluates each entry's detection criteria against a host,
// drops entries whose targets are absent, and augments retained entries
// with VirtualStore mirror keys that exist on the host.
//
// The engine consumes a parsed ruleset and a hostprobe.Host and mutates
// the ruleset in place; parsing, fetching, and serialization live with
// the callers. A trim is single-threaded and runs to completion; section,
// entry, and key order are preserved apart from the documented key
// renumbering inside augmented entries.
package trim
