package winapp

import (
	"github.com/lwd-temp/Winapp2/pkg/types"
	"github.com/lwd-temp/Winapp2/trim"
)

// Re-export the model types so users only need to import pkg/winapp.

// Core types.
type (
	Ruleset = types.Ruleset
	Section = types.Section
	Entry   = types.Entry
	Key     = types.Key
	KeyRole = types.KeyRole
)

// Stats summarizes a trim run.
type Stats = trim.Stats

// Key role constants.
const (
	RoleDetect        = types.RoleDetect
	RoleDetectFile    = types.RoleDetectFile
	RoleDetectOS      = types.RoleDetectOS
	RoleSpecialDetect = types.RoleSpecialDetect
	RoleFileKey       = types.RoleFileKey
	RoleRegKey        = types.RoleRegKey
	RoleExcludeKey    = types.RoleExcludeKey
)

// Common error sentinels.
var (
	ErrMalformedVariable = types.ErrMalformedVariable
	ErrBadRegistryRoot   = types.ErrBadRegistryRoot
	ErrEmptyRuleset      = types.ErrEmptyRuleset
	ErrOffline           = types.ErrOffline
)
