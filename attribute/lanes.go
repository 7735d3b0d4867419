package attribute

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
)

// LanesKey is the RadSim key of the number of lanes.
const LanesKey = "noOfLanes"

type LanesCategory string

const (
	NoLanes          = LanesCategory("0")
	OneLane          = LanesCategory("1")
	TwoLanes         = LanesCategory("2")
	ThreeOrMoreLanes = LanesCategory("3ormore")
)

var LanesCategories = []LanesCategory{NoLanes, OneLane, TwoLanes, ThreeOrMoreLanes}

var defaultLanes = map[string]int{}

func init() {
	for _, hw := range []string{
		"footway", "steps", "cycleway", "pedestrian", "platform", "elevator", "bridleway", "bus_stop",
	} {
		defaultLanes[hw] = 0
	}
	for _, hw := range []string{
		"track", "path", "service", "residential", "living_street", "unclassified",
		"construction", "proposed", "rest_area", "raceway",
		"tertiary_link", "secondary_link", "primary_link", "trunk_link",
	} {
		defaultLanes[hw] = 1
	}
	for _, hw := range []string{"tertiary", "secondary", "primary"} {
		defaultLanes[hw] = 2
	}
}

// Lanes returns the number of lanes of a way. It uses lanes, or the sum of
// lanes:forward and lanes:backward, and falls back to a default for the
// highway type.
func Lanes(tags element.Tags) int {
	if n, err := strconv.Atoi(tags["lanes"]); err == nil {
		return n
	}
	forward, errForward := strconv.Atoi(tags["lanes:forward"])
	backward, errBackward := strconv.Atoi(tags["lanes:backward"])
	if errForward == nil || errBackward == nil {
		if errForward != nil {
			forward = 0
		}
		if errBackward != nil {
			backward = 0
		}
		return forward + backward
	}
	if n, ok := defaultLanes[tags["highway"]]; ok {
		return n
	}
	return 1
}

// LanesCategoryOf returns the category of n lanes.
func LanesCategoryOf(n int) LanesCategory {
	switch {
	case n <= 0:
		return NoLanes
	case n == 1:
		return OneLane
	case n == 2:
		return TwoLanes
	}
	return ThreeOrMoreLanes
}

// Count returns the number of lanes a category is mapped back to.
func (c LanesCategory) Count() int {
	switch c {
	case NoLanes:
		return 0
	case OneLane:
		return 1
	case TwoLanes:
		return 2
	}
	return 3
}

// BackMapping returns the OSM tags for c.
func (c LanesCategory) BackMapping() element.Delta {
	return LanesBackMapping(c.Count())
}

// LanesBackMapping returns the OSM tags for n lanes. Negative counts have
// none.
func LanesBackMapping(n int) element.Delta {
	if n < 0 {
		return element.Delta{}
	}
	return element.Delta{"lanes": strconv.Itoa(n)}
}

func ParseLanesCategory(value string) (LanesCategory, error) {
	for _, c := range LanesCategories {
		if string(c) == value {
			return c, nil
		}
	}
	return "", errors.Errorf("unknown lanes category %q", value)
}
