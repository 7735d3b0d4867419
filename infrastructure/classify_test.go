package infrastructure

import (
	"testing"

	"github.com/radsim/roadstyle/element"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		tags element.Tags
		want Detailed
	}{
		{element.Tags{}, DetailedNo},
		{element.Tags{"highway": "cycleway"}, BicycleWayBoth},
		{element.Tags{"highway": "cycleway", "foot": "yes"}, MixedWayBoth},
		{element.Tags{"highway": "cycleway", "access": "no"}, DetailedNo},
		{element.Tags{"highway": "secondary", "tram": "yes"}, DetailedNo},
		{element.Tags{"highway": "service"}, DetailedServiceMisc},
		{element.Tags{"highway": "service", "bicycle": "designated"}, DetailedNo},
		{element.Tags{"highway": "path"}, DetailedServiceMisc},
		{element.Tags{"highway": "path", "bicycle": "designated"}, BicycleWayBoth},
		{element.Tags{"highway": "track", "tracktype": "grade3"}, DetailedPathNotForbidden},
		{element.Tags{"highway": "cycleway", "cycle_highway": "yes"}, DetailedCycleHighway},
		{element.Tags{"bicycle_road": "yes"}, DetailedBicycleRoad},
		{element.Tags{"highway": "residential", "cyclestreet": "yes"}, DetailedBicycleRoad},

		{element.Tags{"highway": "secondary", "cycleway:right": "track", "cycleway:left": "lane"}, BicycleWayRightLaneLeft},
		{element.Tags{"highway": "secondary", "cycleway:right": "track", "cycleway:left": "share_busway"}, BicycleWayRightBusLeft},
		{element.Tags{"highway": "secondary", "cycleway:right": "track"}, BicycleWayRightMitLeft},
		{element.Tags{"highway": "secondary", "cycleway:left": "track"}, BicycleWayLeftMitRight},
		{element.Tags{"highway": "secondary", "cycleway:left": "track", "cycleway:right": "lane"}, BicycleWayLeftLaneRight},
		{element.Tags{"highway": "secondary", "cycleway:left": "track", "bicycle": "no"}, BicycleWayLeftNoRight},
		{element.Tags{"highway": "primary", "bicycle": "designated", "traffic_sign": "DE:241"}, BicycleWayBoth},
		{element.Tags{"highway": "footway", "bicycle": "yes", "segregated": "yes"}, BicycleWayBoth},

		{element.Tags{"highway": "secondary", "cycleway": "lane"}, BicycleLaneBoth},
		{element.Tags{"highway": "secondary", "cycleway:right": "lane"}, BicycleLaneRightMitLeft},
		{element.Tags{"highway": "secondary", "cycleway:right": "lane", "cycleway:left": "share_busway"}, BicycleLaneRightBusLeft},
		{element.Tags{"highway": "secondary", "cycleway:left": "lane"}, BicycleLaneLeftMitRight},
		{element.Tags{"cycleway": "lane"}, BicycleLaneBoth},

		{element.Tags{"highway": "secondary", "cycleway": "share_busway"}, BusLaneBoth},
		{element.Tags{"highway": "secondary", "cycleway:right": "share_busway"}, BusLaneRightMitLeft},
		{element.Tags{"cycleway:left": "share_busway"}, BusLaneLeftNoRight},

		{element.Tags{"highway": "footway", "bicycle": "yes"}, MixedWayBoth},
		{element.Tags{"highway": "footway", "bicycle": "yes", "segregated": "no"}, MixedWayBoth},
		{element.Tags{"highway": "secondary", "sidewalk": "both", "cycleway:right": "track"}, MixedWayRightMitLeft},

		{element.Tags{"highway": "residential"}, MitRoadBoth},
		{element.Tags{"highway": "motorway", "bicycle": "yes"}, DetailedNo},

		{element.Tags{"highway": "footway"}, PedestrianBoth},
		{element.Tags{"highway": "footway", "access": "customers"}, DetailedNo},
		{element.Tags{"highway": "footway", "indoor": "yes"}, DetailedNo},
		{element.Tags{"highway": "pedestrian"}, PedestrianBoth},
	}

	c := NewClassifier()
	for _, tt := range tests {
		if got := c.Classify(tt.tags); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.tags, got, tt.want)
		}
	}
}

func TestClassifyDoesNotModifyTags(t *testing.T) {
	tags := element.Tags{"highway": "cycleway", "foot": "yes"}
	Classify(tags)
	if len(tags) != 2 || tags["highway"] != "cycleway" || tags["foot"] != "yes" {
		t.Fatal(tags)
	}
}

func TestClassifyEmptyValuesAreAbsent(t *testing.T) {
	with := element.Tags{"highway": "cycleway", "foot": "", "access": ""}
	without := element.Tags{"highway": "cycleway"}
	if Classify(with) != Classify(without) {
		t.Errorf("%s != %s", Classify(with), Classify(without))
	}
}
