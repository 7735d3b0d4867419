package infrastructure

import "github.com/pkg/errors"

// Coarse is the simplified infrastructure category exposed to RadSim users.
type Coarse string

// Selectable coarse categories.
const (
	CycleHighway = Coarse("CycleHighway")
	BicycleRoad  = Coarse("BicycleRoad")
	BicycleWay   = Coarse("BicycleWay")
	BicycleLane  = Coarse("BicycleLane")
	BusLane      = Coarse("BusLane")
	MixedWay     = Coarse("MixedWay")
	No           = Coarse("No")
)

// Internal sub-groups of No. They are never shown to users and never
// targets of a back-mapping.
const (
	ServiceMisc      = Coarse("ServiceMisc")
	MitRoad          = Coarse("MitRoad")
	Pedestrian       = Coarse("Pedestrian")
	PathNotForbidden = Coarse("PathNotForbidden")
)

// Selectable lists the external coarse categories.
var Selectable = []Coarse{
	CycleHighway, BicycleRoad, BicycleWay, BicycleLane, BusLane, MixedWay, No,
}

// External collapses the internal sub-groups to No.
func (c Coarse) External() Coarse {
	switch c {
	case ServiceMisc, MitRoad, Pedestrian, PathNotForbidden:
		return No
	}
	return c
}

// IsSelectable returns whether c is one of the external categories.
func (c Coarse) IsSelectable() bool {
	for _, s := range Selectable {
		if c == s {
			return true
		}
	}
	return false
}

func (c Coarse) String() string {
	return string(c)
}

// ParseCoarse parses an external coarse category.
func ParseCoarse(value string) (Coarse, error) {
	c := Coarse(value)
	if !c.IsSelectable() {
		return "", errors.Errorf("unknown infrastructure category %q", value)
	}
	return c, nil
}

// Simplifier maps detailed categories to external coarse categories.
type Simplifier struct{}

func (Simplifier) Simplify(d Detailed) Coarse {
	return Simplify(d)
}

// Simplify returns the external coarse category of d.
func Simplify(d Detailed) Coarse {
	return d.Group().External()
}
