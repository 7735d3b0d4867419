// Package translate converts the OSM tags of a way to RadSim attributes and
// computes the OSM tag changes for edited RadSim attributes.
package translate

import (
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/attribute"
	"github.com/radsim/roadstyle/backmap"
	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
)

// RadSim keys.
const (
	KeyRoadStyle           = "roadStyle"
	KeyRoadStyleSimplified = "roadStyleSimplified"
	KeySurface             = attribute.SurfaceKey
	KeySurfaceQuality      = attribute.SurfaceQualityKey
	KeyMaxSpeed            = attribute.SpeedKey
	KeyLanes               = attribute.LanesKey

	// KeyID carries the OSM way ID through the translation.
	KeyID = "@id"
)

// Keys are all RadSim keys written by ToRadSim, except KeyID.
var Keys = []string{
	KeyRoadStyle,
	KeyRoadStyleSimplified,
	KeySurface,
	KeySurfaceQuality,
	KeyMaxSpeed,
	KeyLanes,
}

type Translator struct {
	classifier backmap.Classifier
	simplifier backmap.Simplifier
	backMapper *backmap.BackMapper
}

func New(c backmap.Classifier, s backmap.Simplifier, b *backmap.BackMapper) *Translator {
	return &Translator{classifier: c, simplifier: s, backMapper: b}
}

// Default returns a Translator with the RadSim classifier and the default
// back-mapper.
func Default() *Translator {
	return New(infrastructure.NewClassifier(), infrastructure.Simplifier{}, backmap.Default())
}

// ToRadSim returns the RadSim attributes of a way with OSM tags.
func (t *Translator) ToRadSim(tags element.Tags) (element.Tags, error) {
	if err := RequireOSMFormat(tags); err != nil {
		return nil, err
	}
	speed, err := attribute.SpeedOf(tags)
	if err != nil {
		return nil, errors.Wrapf(err, "translating way %s", tags[KeyID])
	}
	detailed := t.classifier.Classify(tags)
	result := element.Tags{
		KeyRoadStyle:           detailed.String(),
		KeyRoadStyleSimplified: t.simplifier.Simplify(detailed).External().String(),
		KeySurface:             string(attribute.Surface(tags)),
		KeySurfaceQuality:      string(attribute.Quality(tags)),
		KeyMaxSpeed:            string(speed),
		KeyLanes:               string(attribute.LanesCategoryOf(attribute.Lanes(tags))),
	}
	if id, ok := tags[KeyID]; ok && id != "" {
		result[KeyID] = id
	}
	return result, nil
}

// ComputeDelta returns the OSM tag changes that set the RadSim attribute
// key of a way with tags to value.
func (t *Translator) ComputeDelta(tags element.Tags, key, value string) (element.Delta, error) {
	if err := RequireOSMFormat(tags); err != nil {
		return nil, err
	}
	switch key {
	case KeyRoadStyleSimplified:
		to, err := infrastructure.ParseCoarse(value)
		if err != nil {
			return nil, unknownValue(key, value)
		}
		from := t.simplifier.Simplify(t.classifier.Classify(tags)).External()
		return t.backMapper.BackMap(from, to, tags)
	case KeySurface:
		s, err := attribute.ParseSurfaceType(value)
		if err != nil {
			return nil, unknownValue(key, value)
		}
		return s.BackMapping(), nil
	case KeySurfaceQuality:
		q, err := attribute.ParseSurfaceQuality(value)
		if err != nil {
			return nil, unknownValue(key, value)
		}
		return q.BackMapping(), nil
	case KeyMaxSpeed:
		s, err := attribute.ParseSpeed(value)
		if err != nil {
			return nil, unknownValue(key, value)
		}
		return s.BackMapping(), nil
	case KeyLanes:
		c, err := attribute.ParseLanesCategory(value)
		if err != nil {
			return nil, unknownValue(key, value)
		}
		return c.BackMapping(), nil
	}
	return nil, backmap.NewError(backmap.UnknownCategory, "unknown RadSim key %q", key)
}

func unknownValue(key, value string) error {
	return backmap.NewError(backmap.UnknownCategory, "unknown value %q for RadSim key %s", value, key)
}

var defaultTranslator = Default()

// ToRadSim translates tags with the default Translator.
func ToRadSim(tags element.Tags) (element.Tags, error) {
	return defaultTranslator.ToRadSim(tags)
}

// ComputeDelta computes a delta with the default Translator.
func ComputeDelta(tags element.Tags, key, value string) (element.Delta, error) {
	return defaultTranslator.ComputeDelta(tags, key, value)
}
