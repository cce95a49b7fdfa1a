package types

import "errors"

var (
	// ErrMalformedVariable indicates a value whose %VAR% placeholder could
	// not be split into name and remainder. The owning entry must be
	// retained, never silently dropped.
	ErrMalformedVariable = errors.New("winapp2: malformed environment variable")
	// ErrBadRegistryRoot indicates a registry path rooted outside
	// HKCU/HKLM/HKU/HKCR.
	ErrBadRegistryRoot = errors.New("winapp2: invalid registry root")
	// ErrEmptyRuleset indicates an input file with no entries.
	ErrEmptyRuleset = errors.New("winapp2: ruleset has no entries")
	// ErrOffline indicates download mode could not reach the remote host.
	ErrOffline = errors.New("winapp2: remote host unreachable")
	// ErrUnknownSpecialTag indicates a SpecialDetect value outside the
	// known tag vocabulary.
	ErrUnknownSpecialTag = errors.New("winapp2: unknown SpecialDetect tag")
)
