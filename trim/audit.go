package trim

import (
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// audit decides retain (true) or discard (false) for one entry. The
// first rule that fires decides:
//
//  1. include override retains
//  2. exclude override discards
//  3. an unsatisfied DetectOS discards, regardless of other detectors
//  4. any satisfied Detect/DetectFile/SpecialDetect retains
//  5. a satisfied DetectOS with no other detectors retains
//  6. no detection criteria at all retains (unconditional entry)
//  7. otherwise discard
//
// A malformed %VAR% in a DetectFile value retains the entry: a broken
// detector must never cause silent removal.
func (t *Trimmer) audit(e *types.Entry) bool {
	name := strings.ToLower(e.Name)
	if t.useIncludes && t.includes[name] {
		return true
	}
	if t.useExcludes && t.excludes[name] {
		t.log.Debug("entry discarded by exclude override", "entry", e.Name)
		return false
	}

	osKeys := e.KeysByRole(types.RoleDetectOS)
	regKeys := e.KeysByRole(types.RoleDetect)
	fileKeys := e.KeysByRole(types.RoleDetectFile)
	specialKeys := e.KeysByRole(types.RoleSpecialDetect)

	if len(osKeys) > 0 && !t.evalDetectOS(osKeys) {
		return false
	}

	for _, k := range regKeys {
		if t.regExists(k.Value) {
			return true
		}
	}
	for _, k := range fileKeys {
		ok, err := t.res.pathExists(k.Value)
		if err != nil {
			t.log.Warn("retaining entry with malformed detection value",
				"entry", e.Name, "key", k.Name, "value", k.Value)
			return true
		}
		if ok {
			return true
		}
	}
	for _, k := range specialKeys {
		if t.evalSpecial(k.Value) {
			return true
		}
	}

	if len(regKeys)+len(fileKeys)+len(specialKeys) == 0 {
		// Either DetectOS alone (already satisfied above) or no criteria.
		return true
	}
	return false
}
