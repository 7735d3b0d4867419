package infrastructure

import (
	"strings"

	"github.com/radsim/roadstyle/element"
)

// A Predicate reports whether tags have a single property.
type Predicate func(tags element.Tags) bool

// Not returns the negation of p.
func Not(p Predicate) Predicate {
	return func(tags element.Tags) bool { return !p(tags) }
}

// All returns a predicate that holds if every p holds.
func All(ps ...Predicate) Predicate {
	return func(tags element.Tags) bool {
		for _, p := range ps {
			if !p(tags) {
				return false
			}
		}
		return true
	}
}

// Any returns a predicate that holds if at least one p holds.
func Any(ps ...Predicate) Predicate {
	return func(tags element.Tags) bool {
		for _, p := range ps {
			if p(tags) {
				return true
			}
		}
		return false
	}
}

// valueIs matches if key has one of values.
func valueIs(key string, values ...string) Predicate {
	return func(tags element.Tags) bool {
		v := tags[key]
		if v == "" {
			return false
		}
		for _, want := range values {
			if v == want {
				return true
			}
		}
		return false
	}
}

// anyKeyContains matches if any key containing part has one of values.
func anyKeyContains(part string, values ...string) Predicate {
	return func(tags element.Tags) bool {
		for k, v := range tags {
			if !strings.Contains(k, part) {
				continue
			}
			for _, want := range values {
				if v == want {
					return true
				}
			}
		}
		return false
	}
}

// Side selects the right or the left side of a way in direction of the way.
type Side int

const (
	Right Side = iota
	Left
)

// sideKeys are the side specific keys of the classifier.
type sideKeys struct {
	name            string
	cycleway        string
	cyclewayBicycle string
	cyclewayLane    string
	sidewalk        string
	sidewalkFoot    string
	bicycle         string
	foot            string
	lane            string
	trafficSign     string
}

func (s Side) keys() sideKeys {
	if s == Left {
		return sideKeys{
			name:            ValueLeft,
			cycleway:        KeyCyclewayLeft,
			cyclewayBicycle: KeyCyclewayLeftBicycle,
			cyclewayLane:    KeyCyclewayLeftLane,
			sidewalk:        KeySidewalkLeft,
			sidewalkFoot:    KeySidewalkLeftFoot,
			bicycle:         KeyLeftBicycle,
			foot:            KeyLeftFoot,
			lane:            KeyLeftLane,
			trafficSign:     KeyLeftTrafficSign,
		}
	}
	return sideKeys{
		name:            ValueRight,
		cycleway:        KeyCyclewayRight,
		cyclewayBicycle: KeyCyclewayRightBicycle,
		cyclewayLane:    KeyCyclewayRightLane,
		sidewalk:        KeySidewalkRight,
		sidewalkFoot:    KeySidewalkRightFoot,
		bicycle:         KeyRightBicycle,
		foot:            KeyRightFoot,
		lane:            KeyRightLane,
		trafficSign:     KeyRightTrafficSign,
	}
}
