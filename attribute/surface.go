package attribute

import (
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
)

// SurfaceKey is the RadSim key of the surface type.
const SurfaceKey = "surface"

// SurfaceType describes how comfortable a surface is to ride on, from
// Comfort1 (asphalt) to Comfort4 (gravel).
type SurfaceType string

const (
	Comfort1Asphalt     = SurfaceType("comfort_1")
	Comfort2Compacted   = SurfaceType("comfort_2")
	Comfort3Cobblestone = SurfaceType("comfort_3")
	Comfort4Gravel      = SurfaceType("comfort_4")
)

var SurfaceTypes = []SurfaceType{Comfort1Asphalt, Comfort2Compacted, Comfort3Cobblestone, Comfort4Gravel}

// SurfaceOSMKeys are checked in this order.
var SurfaceOSMKeys = []string{
	"surface",
	"cycleway:surface",
	"cycleway:both:surface",
	"cycleway:right:surface",
	"cycleway:left:surface",
}

var surfaceTable = newTable(SurfaceOSMKeys, []category{
	{string(Comfort1Asphalt), []string{
		"asphalt", "asphalt.paving_stones", "bricks", "concrete", "concrete.lanes",
		"concrete.plates", "granite.plates", "paved", "paving_stones", "paving_stones.50",
		"paving_stones.lanes", "plates", "tartan",
	}},
	{string(Comfort2Compacted), []string{
		// fine_gravel is mostly used like compacted
		"compacted", "unpaved", "fine_gravel", "grass_paver", "dirt", "dirt.sand",
	}},
	{string(Comfort3Cobblestone), []string{
		"asphalt.cobblestone", "cobblestone", "cobblestone.flattened", "metal",
		"metal_grid", "sett", "tiles", "unhewn_cobblestone",
	}},
	{string(Comfort4Gravel), []string{
		"bare_rock", "bushes", "earth", "grass", "grass.ground", "gravel", "gravel.grass",
		"ground", "ground.grass", "ground.mud", "ground.wood", "mud", "pebblestone",
		"rock", "roots", "sand", "sandstone", "stepping_stones", "stone", "wood", "woodchips",
	}},
})

var surfaceBackMapping = map[SurfaceType]string{
	Comfort1Asphalt:     "asphalt",
	Comfort2Compacted:   "compacted",
	Comfort3Cobblestone: "cobblestone",
	Comfort4Gravel:      "gravel",
}

// Surface returns the surface type of a way. Paths and tracks without
// known surface are compacted, all other ways asphalt.
func Surface(tags element.Tags) SurfaceType {
	if target, ok := surfaceTable.lookup(tags); ok {
		return SurfaceType(target)
	}
	switch tags["highway"] {
	case "path", "track":
		return Comfort2Compacted
	}
	return Comfort1Asphalt
}

// BackMapping returns the OSM tags for s.
func (s SurfaceType) BackMapping() element.Delta {
	return element.Delta{"surface": surfaceBackMapping[s]}
}

func ParseSurfaceType(value string) (SurfaceType, error) {
	for _, s := range SurfaceTypes {
		if string(s) == value {
			return s, nil
		}
	}
	return "", errors.Errorf("unknown surface type %q", value)
}
