package initext

// Parsing constants for the winapp2.ini dialect.
const (
	// CommentPrefix marks a comment line.
	CommentPrefix = ";"

	// SectionMarker introduces a top-level section of entries. The rest
	// of the line after the marker is the section header.
	SectionMarker = "; Section:"

	// EntryOpenBracket and EntryCloseBracket delimit an entry header.
	EntryOpenBracket  = "["
	EntryCloseBracket = "]"

	// ValueAssignment separates a key name from its value.
	ValueAssignment = "="

	// ScannerInitialBufferSize is the initial scanner buffer. Winapp2
	// FileKey lines with long filter lists can exceed the default.
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxLineSize bounds a single line.
	ScannerMaxLineSize = 1024 * 1024
)
