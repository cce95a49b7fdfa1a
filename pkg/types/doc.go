// Package types defines the shared data model for winapp2.ini rulesets:
// keys, entries, top-level sections, and the error sentinels used across
// the parser, the host probe, and the trimming engine.
package types
