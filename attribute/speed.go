package attribute

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
)

// SpeedKey is the RadSim key of the speed limit category.
const SpeedKey = "maxSpeed"

type Speed string

const (
	SpeedMax30         = Speed("<=30")
	SpeedMax50         = Speed("31-50")
	SpeedOver50        = Speed(">50")
	SpeedNoInformation = Speed("nA")
)

var Speeds = []Speed{SpeedMax30, SpeedMax50, SpeedOver50, SpeedNoInformation}

var speedTable = newTable([]string{"maxspeed"}, []category{
	{string(SpeedMax30), []string{"10 mph", "walk"}},
	// conditional limits like 50 (22:00-06:00)
	{string(SpeedMax50), []string{`50\([^)]*\)`, "DE:rural", "DE:urban"}},
	{string(SpeedNoInformation), []string{"unknown", "none", "signals"}},
})

var speedBackMapping = map[Speed]string{
	SpeedMax30:  "30",
	SpeedMax50:  "50",
	SpeedOver50: "100",
}

// SpeedOf returns the speed limit category of a way. Numeric limits that
// are not recognized by name are compared to 30 and 50 km/h. Ways without
// maxspeed are SpeedMax30 for living streets and SpeedNoInformation
// otherwise.
func SpeedOf(tags element.Tags) (Speed, error) {
	if target, ok := speedTable.lookup(tags); ok {
		return Speed(target), nil
	}
	v := tags["maxspeed"]
	if v == "" {
		if tags["highway"] == "living_street" {
			return SpeedMax30, nil
		}
		return SpeedNoInformation, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil {
		return "", errors.Errorf("unknown value for maxspeed %q", v)
	}
	switch {
	case limit <= 30:
		return SpeedMax30, nil
	case limit <= 50:
		return SpeedMax50, nil
	}
	return SpeedOver50, nil
}

// BackMapping returns the OSM tags for s. SpeedNoInformation has none.
func (s Speed) BackMapping() element.Delta {
	v, ok := speedBackMapping[s]
	if !ok {
		return element.Delta{}
	}
	return element.Delta{"maxspeed": v}
}

func ParseSpeed(value string) (Speed, error) {
	for _, s := range Speeds {
		if string(s) == value {
			return s, nil
		}
	}
	return "", errors.Errorf("unknown speed category %q", value)
}
