package translate

import (
	"github.com/radsim/roadstyle/backmap"
	"github.com/radsim/roadstyle/element"
)

// Tag formats.
const (
	FormatOSM              = "OSM"
	FormatRadSimSimplified = "RadSim Simplified"
	FormatRadSimFull       = "RadSim Full"
)

// Format returns the format of tags, FormatOSM unless they carry a RadSim
// infrastructure key.
func Format(tags element.Tags) string {
	if _, ok := tags[KeyRoadStyleSimplified]; ok {
		return FormatRadSimSimplified
	}
	if _, ok := tags[KeyRoadStyle]; ok {
		return FormatRadSimFull
	}
	return FormatOSM
}

// RequireOSMFormat returns an error if tags were already translated to
// RadSim.
func RequireOSMFormat(tags element.Tags) error {
	if f := Format(tags); f != FormatOSM {
		return backmap.NewError(backmap.PreconditionViolated,
			"tags in %s format, expected %s", f, FormatOSM)
	}
	return nil
}
