package backmap

import (
	"fmt"
	"strings"
	"sync"

	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
)

// A Rule computes the tag changes that move a way with the given tags to
// another category. Rules must not modify tags and always return a new
// delta.
type Rule func(tags element.Tags) element.Delta

type transition struct {
	from, to infrastructure.Coarse
}

// Matrix holds one rule for every ordered pair of distinct selectable
// categories. A Matrix is read-only after construction and safe for
// concurrent use.
type Matrix struct {
	rules map[transition]Rule
}

// Delta returns the tag changes of the rule for from -> to.
func (m *Matrix) Delta(from, to infrastructure.Coarse, tags element.Tags) (element.Delta, error) {
	rule, ok := m.rules[transition{from, to}]
	if !ok {
		return nil, &Error{
			Kind: NoRuleForTransition,
			From: from,
			To:   to,
			Tags: tags,
			Msg:  "no back-mapping rule",
		}
	}
	return rule(tags), nil
}

// Len returns the number of registered rules.
func (m *Matrix) Len() int {
	return len(m.rules)
}

// Validate checks that every transition between selectable categories has
// a rule.
func (m *Matrix) Validate() error {
	var missing []string
	for _, from := range infrastructure.Selectable {
		for _, to := range infrastructure.Selectable {
			if from == to {
				continue
			}
			if _, ok := m.rules[transition{from, to}]; !ok {
				missing = append(missing, fmt.Sprintf("%s->%s", from, to))
			}
		}
	}
	if len(missing) > 0 {
		return &Error{
			Kind: NoRuleForTransition,
			Msg:  "missing rules for " + strings.Join(missing, ", "),
		}
	}
	return nil
}

var (
	defaultMatrix     *Matrix
	defaultMatrixOnce sync.Once
)

// DefaultMatrix returns the shared RadSim rule matrix. It panics if the
// matrix is incomplete.
func DefaultMatrix() *Matrix {
	defaultMatrixOnce.Do(func() {
		m := NewMatrix()
		if err := m.Validate(); err != nil {
			panic(err)
		}
		defaultMatrix = m
	})
	return defaultMatrix
}

const (
	cycleway     = infrastructure.KeyCycleway
	highway      = infrastructure.KeyHighway
	bicycle      = infrastructure.KeyBicycle
	foot         = infrastructure.KeyFoot
	segregated   = infrastructure.KeySegregated
	bicycleRoad  = infrastructure.KeyBicycleRoad
	cyclestreet  = infrastructure.KeyCyclestreet
	cycleHwy     = infrastructure.KeyCycleHighway
	motorVehicle = infrastructure.KeyMotorVehicle

	yes = infrastructure.ValueYes
	no  = infrastructure.ValueNo
)

var sideCycleways = []string{
	infrastructure.KeyCycleway,
	infrastructure.KeyCyclewayRight,
	infrastructure.KeyCyclewayLeft,
	infrastructure.KeyCyclewayBoth,
}

// NewMatrix returns a new matrix with the RadSim rules.
func NewMatrix() *Matrix {
	const (
		ch   = infrastructure.CycleHighway
		road = infrastructure.BicycleRoad
		way  = infrastructure.BicycleWay
		lane = infrastructure.BicycleLane
		bus  = infrastructure.BusLane
		mix  = infrastructure.MixedWay
		none = infrastructure.No
	)
	m := &Matrix{rules: make(map[transition]Rule)}
	set := func(from, to infrastructure.Coarse, r Rule) {
		m.rules[transition{from, to}] = r
	}

	for _, from := range infrastructure.Selectable {
		if from != ch {
			set(from, ch, toCycleHighway)
		}
		if from != road {
			set(from, road, toBicycleRoad)
		}
	}

	toWay := element.Delta{highway: infrastructure.ValueCycleway, segregated: yes}
	set(none, way, leavingService(fixed(toWay)))
	set(road, way, leaveBicycleRoad)
	set(lane, way, leavingService(fixed(toWay)))
	set(bus, way, leavingService(fixed(toWay)))
	set(mix, way, leavingService(mixedToBicycleWay))
	set(ch, way, leavingService(withDelta(leaveCycleHighway, toWay)))

	toLane := element.Delta{highway: infrastructure.ValueSecondary, cycleway: infrastructure.ValueLane}
	set(none, lane, leavingService(fixed(toLane)))
	set(road, lane, leavingService(bicycleRoadToSideLane(infrastructure.ValueLane)))
	set(way, lane, leavingService(withDelta(clearBicycleWay, toLane)))
	set(bus, lane, leavingService(withDelta(removeBusLane, element.Delta{cycleway: infrastructure.ValueLane})))
	set(mix, lane, leavingService(withDelta(clearBicycleWay, toLane)))
	set(ch, lane, leavingService(withDelta(leaveCycleHighway, toLane)))

	toBus := element.Delta{highway: infrastructure.ValueSecondary, cycleway: infrastructure.ValueShareBusway}
	set(none, bus, leavingService(fixed(toBus)))
	set(road, bus, leavingService(bicycleRoadToSideLane(infrastructure.ValueShareBusway)))
	set(way, bus, leavingService(withDelta(clearBicycleWay, toBus)))
	set(lane, bus, leavingService(withDelta(removeBicycleLane, element.Delta{cycleway: infrastructure.ValueShareBusway})))
	set(mix, bus, leavingService(withDelta(clearBicycleWay, toBus)))
	set(ch, bus, leavingService(withDelta(leaveCycleHighway, toBus)))

	toMixed := element.Delta{highway: infrastructure.ValueCycleway, foot: yes, segregated: no}
	set(none, mix, leavingService(unsegregated(fixed(toMixed))))
	set(road, mix, leavingService(bicycleRoadToMixedWay))
	set(way, mix, leavingService(bicycleWayToMixedWay))
	set(lane, mix, leavingService(unsegregated(withDelta(removeBicycleLane, element.Delta{highway: infrastructure.ValuePath, bicycle: yes, segregated: no}))))
	set(bus, mix, leavingService(unsegregated(withDelta(removeBusLane, element.Delta{highway: infrastructure.ValueFootway, bicycle: yes, segregated: no}))))
	set(ch, mix, leavingService(unsegregated(withDelta(leaveCycleHighway, toMixed))))

	set(ch, none, leaveCycleHighway)
	set(road, none, leaveBicycleRoad)
	set(way, none, removeBicycleWay)
	set(mix, none, removeBicycleWay)
	set(lane, none, removeBicycleLane)
	set(bus, none, removeBusLane)

	return m
}

// fixed returns a rule that ignores the current tags.
func fixed(d element.Delta) Rule {
	return func(element.Tags) element.Delta {
		return element.Delta{}.Merge(d)
	}
}

// designateIfService marks the way for bicycles if it would otherwise be
// classified as service road.
func designateIfService(tags element.Tags, d element.Delta) {
	if infrastructure.IsService(tags.Apply(d)) {
		d[bicycle] = infrastructure.ValueDesignated
	}
}

func removeIfPresent(tags element.Tags, d element.Delta, keys ...string) {
	for _, k := range keys {
		if tags.Has(k) {
			d.Remove(k)
		}
	}
}

// removeSideCycleways removes all cycleway and cycleway:<side> tags with
// one of values.
func removeSideCycleways(tags element.Tags, d element.Delta, values ...string) {
	for _, k := range sideCycleways {
		v := tags[k]
		for _, want := range values {
			if v == want {
				d.Remove(k)
				break
			}
		}
	}
}

func toCycleHighway(tags element.Tags) element.Delta {
	d := element.Delta{cycleHwy: yes}
	designateIfService(tags, d)
	return d
}

func toBicycleRoad(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeIfPresent(tags, d, cycleHwy)
	d[highway] = infrastructure.ValueResidential
	d[bicycleRoad] = yes
	designateIfService(tags, d)
	return d
}

// withDelta returns a rule that applies d after the changes of r.
func withDelta(r Rule, d element.Delta) Rule {
	return func(tags element.Tags) element.Delta {
		return r(tags).Merge(d)
	}
}

func leaveCycleHighway(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeIfPresent(tags, d, cycleHwy)
	return d
}

func leaveBicycleRoad(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeIfPresent(tags, d, bicycleRoad, cyclestreet)
	return d
}

func bicycleRoadToSideLane(value string) Rule {
	return func(tags element.Tags) element.Delta {
		d := leaveBicycleRoad(tags)
		if tags[highway] == infrastructure.ValueCycleway {
			d[highway] = infrastructure.ValueSecondary
		}
		d[cycleway] = value
		return d
	}
}

func bicycleRoadToMixedWay(tags element.Tags) element.Delta {
	d := leaveBicycleRoad(tags)
	if !tags.Has(highway) {
		d[highway] = infrastructure.ValueCycleway
	}
	d[foot] = yes
	d[segregated] = no
	return d
}

// mixedToBicycleWay separates foot and bicycle traffic. Sidewalks and
// foot access stay.
func mixedToBicycleWay(tags element.Tags) element.Delta {
	d := element.Delta{segregated: yes}
	switch tags[highway] {
	case infrastructure.ValueCycleway:
	case infrastructure.ValueTrack, infrastructure.ValuePath, infrastructure.ValueFootway, infrastructure.ValuePedestrian:
		d[bicycle] = infrastructure.ValueDesignated
	default:
		d[cycleway] = infrastructure.ValueTrack
	}
	return d
}

func bicycleWayToMixedWay(tags element.Tags) element.Delta {
	d := clearBicycleWay(tags)
	removeSegregated(tags, d)
	removeSegregatedSign(tags, d)
	switch tags[highway] {
	case infrastructure.ValueCycleway:
		d[foot] = yes
	case infrastructure.ValueTrack, infrastructure.ValuePath:
		d[bicycle] = infrastructure.ValueDesignated
		d[foot] = yes
	case infrastructure.ValueFootway, infrastructure.ValuePedestrian:
		d[bicycle] = yes
	default:
		d[cycleway] = infrastructure.ValueTrack
		d[foot] = yes
	}
	d[segregated] = no
	return d
}

// clearBicycleWay removes all tags that make a side a bicycle or mixed
// way, except highway=cycleway.
func clearBicycleWay(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeSideCycleways(tags, d, infrastructure.ValueTrack, infrastructure.ValueSidepath, infrastructure.ValueCrossing)
	if v := tags[bicycle]; v == yes || v == infrastructure.ValueDesignated {
		d.Remove(bicycle)
	}
	for k, v := range tags {
		switch {
		case v == infrastructure.ValueDesignated && (k == infrastructure.KeyCyclewayBicycle ||
			strings.Contains(k, infrastructure.KeyRightBicycle) || strings.Contains(k, infrastructure.KeyLeftBicycle)):
			d.Remove(k)
		case strings.Contains(v, infrastructure.SignBicyclePath) &&
			(strings.Contains(k, infrastructure.KeyRightTrafficSign) || strings.Contains(k, infrastructure.KeyLeftTrafficSign)):
			d.Remove(k)
		}
	}
	return d
}

func removeBicycleWay(tags element.Tags) element.Delta {
	d := clearBicycleWay(tags)
	if tags[highway] == infrastructure.ValueCycleway {
		d[highway] = infrastructure.ValuePath
	}
	return d
}

// removeSegregated removes segregated=yes, including side specific keys.
func removeSegregated(tags element.Tags, d element.Delta) {
	for k, v := range tags {
		if v == yes && strings.Contains(k, segregated) {
			d.Remove(k)
		}
	}
}

// removeSegregatedSign removes the sign for segregated foot and cycle
// paths.
func removeSegregatedSign(tags element.Tags, d element.Delta) {
	for _, k := range []string{infrastructure.KeyTrafficSign, infrastructure.KeyTrafficSignForward} {
		if strings.Contains(tags[k], infrastructure.SignSegregatedPath) {
			d.Remove(k)
		}
	}
}

// unsegregated returns r with signs for segregated paths removed.
func unsegregated(r Rule) Rule {
	return func(tags element.Tags) element.Delta {
		d := r(tags)
		removeSegregatedSign(tags, d)
		return d
	}
}

// leavingService returns r with agricultural and forestry access removed
// if the way would otherwise remain a service road.
func leavingService(r Rule) Rule {
	return func(tags element.Tags) element.Delta {
		d := r(tags)
		if !infrastructure.IsService(tags.Apply(d)) {
			return d
		}
		switch tags[motorVehicle] {
		case infrastructure.ValueAgricultural, infrastructure.ValueForestry:
			d.Remove(motorVehicle)
		}
		return d
	}
}

func removeBicycleLane(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeSideCycleways(tags, d, infrastructure.ValueLane, infrastructure.ValueSharedLane)
	for k, v := range tags {
		if v != infrastructure.ValueExclusive {
			continue
		}
		if strings.Contains(k, infrastructure.KeyRightLane) || strings.Contains(k, infrastructure.KeyLeftLane) {
			d.Remove(k)
		}
	}
	return d
}

func removeBusLane(tags element.Tags) element.Delta {
	d := element.Delta{}
	removeSideCycleways(tags, d, infrastructure.ValueShareBusway)
	return d
}
