package backmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
)

func TestMatrixComplete(t *testing.T) {
	m := NewMatrix()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 42 {
		t.Errorf("expected 42 rules, got %d", m.Len())
	}
	for _, from := range infrastructure.Selectable {
		for _, to := range infrastructure.Selectable {
			if from == to {
				continue
			}
			if _, err := m.Delta(from, to, element.Tags{}); err != nil {
				t.Errorf("%s -> %s: %s", from, to, err)
			}
		}
	}
}

func TestMatrixValidateMissing(t *testing.T) {
	m := NewMatrix()
	delete(m.rules, transition{infrastructure.BusLane, infrastructure.No})
	err := m.Validate()
	if !IsKind(err, NoRuleForTransition) {
		t.Fatalf("expected NoRuleForTransition, got %v", err)
	}
}

func TestMatrixNoRule(t *testing.T) {
	m := DefaultMatrix()
	for _, tt := range []struct{ from, to infrastructure.Coarse }{
		{infrastructure.No, infrastructure.No},
		{infrastructure.MitRoad, infrastructure.BicycleWay},
		{infrastructure.BicycleWay, infrastructure.Pedestrian},
	} {
		d, err := m.Delta(tt.from, tt.to, element.Tags{})
		if !IsKind(err, NoRuleForTransition) {
			t.Errorf("%s -> %s: expected NoRuleForTransition, got %v", tt.from, tt.to, err)
		}
		if d != nil {
			t.Errorf("%s -> %s: got delta %v with error", tt.from, tt.to, d)
		}
	}
}

func TestDefaultMatrixShared(t *testing.T) {
	if DefaultMatrix() != DefaultMatrix() {
		t.Error("DefaultMatrix not memoized")
	}
}

func TestRulesDoNotModifyTags(t *testing.T) {
	m := DefaultMatrix()
	tags := element.Tags{
		"highway":        "cycleway",
		"cycleway:right": "lane",
		"cycle_highway":  "yes",
		"bicycle_road":   "yes",
		"bicycle":        "yes",
	}
	orig := tags.Clone()
	for _, from := range infrastructure.Selectable {
		for _, to := range infrastructure.Selectable {
			if from == to {
				continue
			}
			first, _ := m.Delta(from, to, tags)
			// deltas are fresh maps, modifying them does not leak into
			// later calls
			first["mutated"] = "yes"
			second, _ := m.Delta(from, to, tags)
			if _, ok := second["mutated"]; ok {
				t.Errorf("%s -> %s: rule returns shared delta", from, to)
			}
		}
	}
	if diff := cmp.Diff(orig, tags); diff != "" {
		t.Errorf("tags modified (-want +got):\n%s", diff)
	}
}

func TestRules(t *testing.T) {
	m := DefaultMatrix()
	tests := []struct {
		name     string
		from, to infrastructure.Coarse
		tags     element.Tags
		want     element.Delta
	}{
		{"no to bicycle road", infrastructure.No, infrastructure.BicycleRoad,
			element.Tags{},
			element.Delta{"highway": "residential", "bicycle_road": "yes"}},
		{"service to cycle highway", infrastructure.No, infrastructure.CycleHighway,
			element.Tags{"highway": "service"},
			element.Delta{"cycle_highway": "yes", "bicycle": "designated"}},
		{"cycle highway to bicycle road", infrastructure.CycleHighway, infrastructure.BicycleRoad,
			element.Tags{"cycle_highway": "yes", "highway": "cycleway"},
			element.Delta{"cycle_highway": "", "highway": "residential", "bicycle_road": "yes"}},
		{"bicycle road to no", infrastructure.BicycleRoad, infrastructure.No,
			element.Tags{"highway": "residential", "bicycle_road": "yes", "cyclestreet": "yes"},
			element.Delta{"bicycle_road": "", "cyclestreet": ""}},
		{"bicycle road to lane keeps road", infrastructure.BicycleRoad, infrastructure.BicycleLane,
			element.Tags{"highway": "residential", "bicycle_road": "yes"},
			element.Delta{"bicycle_road": "", "cycleway": "lane"}},
		{"bicycle road to lane on cycleway", infrastructure.BicycleRoad, infrastructure.BicycleLane,
			element.Tags{"highway": "cycleway", "bicycle_road": "yes"},
			element.Delta{"bicycle_road": "", "highway": "secondary", "cycleway": "lane"}},
		{"mixed cycleway to bicycle way", infrastructure.MixedWay, infrastructure.BicycleWay,
			element.Tags{"highway": "cycleway", "foot": "yes"},
			element.Delta{"segregated": "yes"}},
		{"mixed cycleway with sidewalk to bicycle way", infrastructure.MixedWay, infrastructure.BicycleWay,
			element.Tags{"highway": "cycleway", "sidewalk": "both"},
			element.Delta{"segregated": "yes"}},
		{"mixed footway to bicycle way", infrastructure.MixedWay, infrastructure.BicycleWay,
			element.Tags{"highway": "footway", "bicycle": "yes"},
			element.Delta{"bicycle": "designated", "segregated": "yes"}},
		{"mixed road to bicycle way", infrastructure.MixedWay, infrastructure.BicycleWay,
			element.Tags{"highway": "secondary", "sidewalk": "both", "cycleway:right": "track"},
			element.Delta{"cycleway": "track", "segregated": "yes"}},
		{"bicycle way track to mixed", infrastructure.BicycleWay, infrastructure.MixedWay,
			element.Tags{"highway": "track", "bicycle": "designated"},
			element.Delta{"bicycle": "designated", "foot": "yes", "segregated": "no"}},
		{"signposted bicycle way to mixed", infrastructure.BicycleWay, infrastructure.MixedWay,
			element.Tags{"highway": "cycleway", "bicycle": "yes", "traffic_sign": "DE:241"},
			element.Delta{"bicycle": "", "traffic_sign": "", "foot": "yes", "segregated": "no"}},
		{"footway with track to mixed", infrastructure.BicycleWay, infrastructure.MixedWay,
			element.Tags{"highway": "footway", "cycleway:right": "track"},
			element.Delta{"cycleway:right": "", "bicycle": "yes", "segregated": "no"}},
		{"designated path to lane", infrastructure.BicycleWay, infrastructure.BicycleLane,
			element.Tags{"highway": "path", "bicycle": "designated", "foot": "designated", "segregated": "yes"},
			element.Delta{"bicycle": "", "highway": "secondary", "cycleway": "lane"}},
		{"designated path to bus lane", infrastructure.BicycleWay, infrastructure.BusLane,
			element.Tags{"highway": "path", "bicycle": "designated", "foot": "designated", "segregated": "yes"},
			element.Delta{"bicycle": "", "highway": "secondary", "cycleway": "share_busway"}},
		{"agricultural track to lane", infrastructure.No, infrastructure.BicycleLane,
			element.Tags{"highway": "track", "motor_vehicle": "agricultural"},
			element.Delta{"motor_vehicle": "", "highway": "secondary", "cycleway": "lane"}},
		{"signposted lane to mixed", infrastructure.BicycleLane, infrastructure.MixedWay,
			element.Tags{"highway": "secondary", "cycleway:right": "lane", "traffic_sign": "DE:241"},
			element.Delta{"cycleway:right": "", "traffic_sign": "", "highway": "path", "bicycle": "yes", "segregated": "no"}},
		{"side designation to no", infrastructure.BicycleWay, infrastructure.No,
			element.Tags{"highway": "secondary", "sidewalk:right:bicycle": "designated"},
			element.Delta{"sidewalk:right:bicycle": ""}},
		{"bicycle way to lane", infrastructure.BicycleWay, infrastructure.BicycleLane,
			element.Tags{"highway": "secondary", "cycleway:right": "track"},
			element.Delta{"cycleway:right": "", "highway": "secondary", "cycleway": "lane"}},
		{"lane to bus", infrastructure.BicycleLane, infrastructure.BusLane,
			element.Tags{"highway": "secondary", "cycleway:right": "lane", "cycleway:left:lane": "exclusive"},
			element.Delta{"cycleway:right": "", "cycleway:left:lane": "", "cycleway": "share_busway"}},
		{"lane to mixed", infrastructure.BicycleLane, infrastructure.MixedWay,
			element.Tags{"cycleway": "lane"},
			element.Delta{"cycleway": "", "highway": "path", "bicycle": "yes", "segregated": "no"}},
		{"bus to mixed", infrastructure.BusLane, infrastructure.MixedWay,
			element.Tags{"highway": "secondary", "cycleway:both": "share_busway"},
			element.Delta{"cycleway:both": "", "highway": "footway", "bicycle": "yes", "segregated": "no"}},
		{"bicycle way to no", infrastructure.BicycleWay, infrastructure.No,
			element.Tags{"highway": "cycleway", "bicycle": "designated", "cycleway": "track"},
			element.Delta{"highway": "path", "bicycle": "", "cycleway": ""}},
		{"cycle highway to no", infrastructure.CycleHighway, infrastructure.No,
			element.Tags{"cycle_highway": "yes"},
			element.Delta{"cycle_highway": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Delta(tt.from, tt.to, tt.tags)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Delta(%s, %s) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}
