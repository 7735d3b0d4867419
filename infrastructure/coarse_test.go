package infrastructure

import "testing"

func TestSimplifyTotal(t *testing.T) {
	if len(AllDetailed) != 53 {
		t.Fatalf("expected 53 detailed categories, got %d", len(AllDetailed))
	}
	for _, d := range AllDetailed {
		if _, ok := groups[d]; !ok {
			t.Errorf("%s has no group", d)
		}
		if c := Simplify(d); !c.IsSelectable() {
			t.Errorf("Simplify(%s) = %s is not selectable", d, c)
		}
	}
	if len(groups) != len(AllDetailed) {
		t.Errorf("groups and AllDetailed differ: %d != %d", len(groups), len(AllDetailed))
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		detailed Detailed
		group    Coarse
		simple   Coarse
	}{
		{DetailedCycleHighway, CycleHighway, CycleHighway},
		{DetailedBicycleRoad, BicycleRoad, BicycleRoad},
		{BicycleWayRightLaneLeft, BicycleWay, BicycleWay},
		{BicycleWayLeftNoRight, BicycleWay, BicycleWay},
		{BicycleLaneRightBusLeft, BicycleLane, BicycleLane},
		{BusLaneLeftMixedRight, BusLane, BusLane},
		{MixedWayBoth, MixedWay, MixedWay},
		{DetailedServiceMisc, ServiceMisc, No},
		{MitRoadLeftNoRight, MitRoad, No},
		{PedestrianBoth, Pedestrian, No},
		{DetailedPathNotForbidden, PathNotForbidden, No},
		{DetailedNo, No, No},
	}
	var s Simplifier
	for _, tt := range tests {
		if g := tt.detailed.Group(); g != tt.group {
			t.Errorf("%s.Group() = %s, want %s", tt.detailed, g, tt.group)
		}
		if c := s.Simplify(tt.detailed); c != tt.simple {
			t.Errorf("Simplify(%s) = %s, want %s", tt.detailed, c, tt.simple)
		}
	}
}

func TestParseCoarse(t *testing.T) {
	for _, c := range Selectable {
		parsed, err := ParseCoarse(string(c))
		if err != nil || parsed != c {
			t.Errorf("ParseCoarse(%s) = %s, %v", c, parsed, err)
		}
	}
	for _, v := range []string{"ServiceMisc", "MitRoad", "", "bicycleway"} {
		if _, err := ParseCoarse(v); err == nil {
			t.Errorf("expected error for %q", v)
		}
	}
}

func TestParseDetailed(t *testing.T) {
	d, err := ParseDetailed("BicycleWayRightLaneLeft")
	if err != nil || d != BicycleWayRightLaneLeft {
		t.Error(d, err)
	}
	if _, err := ParseDetailed("BicycleLaneRightLaneLeft"); err == nil {
		t.Error("expected error")
	}
}
