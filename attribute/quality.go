package attribute

import (
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
)

// SurfaceQualityKey is the RadSim key of the surface quality.
const SurfaceQualityKey = "surfaceQuality"

type SurfaceQuality string

const (
	QualityGood          = SurfaceQuality("Good")
	QualityMedium        = SurfaceQuality("Medium")
	QualityBad           = SurfaceQuality("Bad")
	QualityNoInformation = SurfaceQuality("nA")
)

var SurfaceQualities = []SurfaceQuality{QualityGood, QualityMedium, QualityBad, QualityNoInformation}

var qualityTable = newTable([]string{"smoothness"}, []category{
	{string(QualityGood), []string{"excellent", "good"}},
	{string(QualityMedium), []string{"intermediate"}},
	{string(QualityBad), []string{"bad", "very_bad", "horrible", "very_horrible", "impassable"}},
})

var qualityBackMapping = map[SurfaceQuality]string{
	QualityGood:   "good",
	QualityMedium: "intermediate",
	// bad ways are tagged bad and very_bad in equal parts
	QualityBad: "very_bad",
}

// Quality returns the surface quality of a way from its smoothness.
func Quality(tags element.Tags) SurfaceQuality {
	if target, ok := qualityTable.lookup(tags); ok {
		return SurfaceQuality(target)
	}
	return QualityNoInformation
}

// BackMapping returns the OSM tags for q. QualityNoInformation has none.
func (q SurfaceQuality) BackMapping() element.Delta {
	v, ok := qualityBackMapping[q]
	if !ok {
		return element.Delta{}
	}
	return element.Delta{"smoothness": v}
}

func ParseSurfaceQuality(value string) (SurfaceQuality, error) {
	for _, q := range SurfaceQualities {
		if string(q) == value {
			return q, nil
		}
	}
	return "", errors.Errorf("unknown surface quality %q", value)
}
