package infrastructure

import "github.com/pkg/errors"

// Detailed is the side aware infrastructure category. Right and left refer
// to the direction of the way.
type Detailed string

const (
	DetailedCycleHighway = Detailed("CycleHighway")
	DetailedBicycleRoad  = Detailed("BicycleRoad")

	BicycleWayBoth                = Detailed("BicycleWayBoth")
	BicycleWayRightLaneLeft       = Detailed("BicycleWayRightLaneLeft")
	BicycleWayRightBusLeft        = Detailed("BicycleWayRightBusLeft")
	BicycleWayRightMixedLeft      = Detailed("BicycleWayRightMixedLeft")
	BicycleWayRightMitLeft        = Detailed("BicycleWayRightMitLeft")
	BicycleWayRightPedestrianLeft = Detailed("BicycleWayRightPedestrianLeft")
	BicycleWayRightNoLeft         = Detailed("BicycleWayRightNoLeft")
	BicycleWayLeftLaneRight       = Detailed("BicycleWayLeftLaneRight")
	BicycleWayLeftBusRight        = Detailed("BicycleWayLeftBusRight")
	BicycleWayLeftMixedRight      = Detailed("BicycleWayLeftMixedRight")
	BicycleWayLeftMitRight        = Detailed("BicycleWayLeftMitRight")
	BicycleWayLeftPedestrianRight = Detailed("BicycleWayLeftPedestrianRight")
	BicycleWayLeftNoRight         = Detailed("BicycleWayLeftNoRight")

	BicycleLaneBoth                = Detailed("BicycleLaneBoth")
	BicycleLaneRightBusLeft        = Detailed("BicycleLaneRightBusLeft")
	BicycleLaneRightMixedLeft      = Detailed("BicycleLaneRightMixedLeft")
	BicycleLaneRightMitLeft        = Detailed("BicycleLaneRightMitLeft")
	BicycleLaneRightPedestrianLeft = Detailed("BicycleLaneRightPedestrianLeft")
	BicycleLaneRightNoLeft         = Detailed("BicycleLaneRightNoLeft")
	BicycleLaneLeftBusRight        = Detailed("BicycleLaneLeftBusRight")
	BicycleLaneLeftMixedRight      = Detailed("BicycleLaneLeftMixedRight")
	BicycleLaneLeftMitRight        = Detailed("BicycleLaneLeftMitRight")
	BicycleLaneLeftPedestrianRight = Detailed("BicycleLaneLeftPedestrianRight")
	BicycleLaneLeftNoRight         = Detailed("BicycleLaneLeftNoRight")

	BusLaneBoth                = Detailed("BusLaneBoth")
	BusLaneRightMixedLeft      = Detailed("BusLaneRightMixedLeft")
	BusLaneRightMitLeft        = Detailed("BusLaneRightMitLeft")
	BusLaneRightPedestrianLeft = Detailed("BusLaneRightPedestrianLeft")
	BusLaneRightNoLeft         = Detailed("BusLaneRightNoLeft")
	BusLaneLeftMixedRight      = Detailed("BusLaneLeftMixedRight")
	BusLaneLeftMitRight        = Detailed("BusLaneLeftMitRight")
	BusLaneLeftPedestrianRight = Detailed("BusLaneLeftPedestrianRight")
	BusLaneLeftNoRight         = Detailed("BusLaneLeftNoRight")

	MixedWayBoth                = Detailed("MixedWayBoth")
	MixedWayRightMitLeft        = Detailed("MixedWayRightMitLeft")
	MixedWayRightPedestrianLeft = Detailed("MixedWayRightPedestrianLeft")
	MixedWayRightNoLeft         = Detailed("MixedWayRightNoLeft")
	MixedWayLeftMitRight        = Detailed("MixedWayLeftMitRight")
	MixedWayLeftPedestrianRight = Detailed("MixedWayLeftPedestrianRight")
	MixedWayLeftNoRight         = Detailed("MixedWayLeftNoRight")

	DetailedServiceMisc = Detailed("ServiceMisc")

	MitRoadBoth                = Detailed("MitRoadBoth")
	MitRoadRightPedestrianLeft = Detailed("MitRoadRightPedestrianLeft")
	MitRoadRightNoLeft         = Detailed("MitRoadRightNoLeft")
	MitRoadLeftPedestrianRight = Detailed("MitRoadLeftPedestrianRight")
	MitRoadLeftNoRight         = Detailed("MitRoadLeftNoRight")

	PedestrianBoth        = Detailed("PedestrianBoth")
	PedestrianRightNoLeft = Detailed("PedestrianRightNoLeft")
	PedestrianLeftNoRight = Detailed("PedestrianLeftNoRight")

	DetailedPathNotForbidden = Detailed("PathNotForbidden")
	DetailedNo               = Detailed("No")
)

var groups = map[Detailed]Coarse{
	DetailedCycleHighway: CycleHighway,
	DetailedBicycleRoad:  BicycleRoad,

	BicycleWayBoth:                BicycleWay,
	BicycleWayRightLaneLeft:       BicycleWay,
	BicycleWayRightBusLeft:        BicycleWay,
	BicycleWayRightMixedLeft:      BicycleWay,
	BicycleWayRightMitLeft:        BicycleWay,
	BicycleWayRightPedestrianLeft: BicycleWay,
	BicycleWayRightNoLeft:         BicycleWay,
	BicycleWayLeftLaneRight:       BicycleWay,
	BicycleWayLeftBusRight:        BicycleWay,
	BicycleWayLeftMixedRight:      BicycleWay,
	BicycleWayLeftMitRight:        BicycleWay,
	BicycleWayLeftPedestrianRight: BicycleWay,
	BicycleWayLeftNoRight:         BicycleWay,

	BicycleLaneBoth:                BicycleLane,
	BicycleLaneRightBusLeft:        BicycleLane,
	BicycleLaneRightMixedLeft:      BicycleLane,
	BicycleLaneRightMitLeft:        BicycleLane,
	BicycleLaneRightPedestrianLeft: BicycleLane,
	BicycleLaneRightNoLeft:         BicycleLane,
	BicycleLaneLeftBusRight:        BicycleLane,
	BicycleLaneLeftMixedRight:      BicycleLane,
	BicycleLaneLeftMitRight:        BicycleLane,
	BicycleLaneLeftPedestrianRight: BicycleLane,
	BicycleLaneLeftNoRight:         BicycleLane,

	BusLaneBoth:                BusLane,
	BusLaneRightMixedLeft:      BusLane,
	BusLaneRightMitLeft:        BusLane,
	BusLaneRightPedestrianLeft: BusLane,
	BusLaneRightNoLeft:         BusLane,
	BusLaneLeftMixedRight:      BusLane,
	BusLaneLeftMitRight:        BusLane,
	BusLaneLeftPedestrianRight: BusLane,
	BusLaneLeftNoRight:         BusLane,

	MixedWayBoth:                MixedWay,
	MixedWayRightMitLeft:        MixedWay,
	MixedWayRightPedestrianLeft: MixedWay,
	MixedWayRightNoLeft:         MixedWay,
	MixedWayLeftMitRight:        MixedWay,
	MixedWayLeftPedestrianRight: MixedWay,
	MixedWayLeftNoRight:         MixedWay,

	DetailedServiceMisc: ServiceMisc,

	MitRoadBoth:                MitRoad,
	MitRoadRightPedestrianLeft: MitRoad,
	MitRoadRightNoLeft:         MitRoad,
	MitRoadLeftPedestrianRight: MitRoad,
	MitRoadLeftNoRight:         MitRoad,

	PedestrianBoth:        Pedestrian,
	PedestrianRightNoLeft: Pedestrian,
	PedestrianLeftNoRight: Pedestrian,

	DetailedPathNotForbidden: PathNotForbidden,
	DetailedNo:               No,
}

// AllDetailed lists every detailed category in declaration order.
var AllDetailed = []Detailed{
	DetailedCycleHighway, DetailedBicycleRoad,

	BicycleWayBoth,
	BicycleWayRightLaneLeft, BicycleWayRightBusLeft, BicycleWayRightMixedLeft,
	BicycleWayRightMitLeft, BicycleWayRightPedestrianLeft, BicycleWayRightNoLeft,
	BicycleWayLeftLaneRight, BicycleWayLeftBusRight, BicycleWayLeftMixedRight,
	BicycleWayLeftMitRight, BicycleWayLeftPedestrianRight, BicycleWayLeftNoRight,

	BicycleLaneBoth,
	BicycleLaneRightBusLeft, BicycleLaneRightMixedLeft, BicycleLaneRightMitLeft,
	BicycleLaneRightPedestrianLeft, BicycleLaneRightNoLeft,
	BicycleLaneLeftBusRight, BicycleLaneLeftMixedRight, BicycleLaneLeftMitRight,
	BicycleLaneLeftPedestrianRight, BicycleLaneLeftNoRight,

	BusLaneBoth,
	BusLaneRightMixedLeft, BusLaneRightMitLeft, BusLaneRightPedestrianLeft, BusLaneRightNoLeft,
	BusLaneLeftMixedRight, BusLaneLeftMitRight, BusLaneLeftPedestrianRight, BusLaneLeftNoRight,

	MixedWayBoth,
	MixedWayRightMitLeft, MixedWayRightPedestrianLeft, MixedWayRightNoLeft,
	MixedWayLeftMitRight, MixedWayLeftPedestrianRight, MixedWayLeftNoRight,

	DetailedServiceMisc,

	MitRoadBoth,
	MitRoadRightPedestrianLeft, MitRoadRightNoLeft,
	MitRoadLeftPedestrianRight, MitRoadLeftNoRight,

	PedestrianBoth, PedestrianRightNoLeft, PedestrianLeftNoRight,

	DetailedPathNotForbidden,
	DetailedNo,
}

// Group returns the coarse group of d, including the internal sub-groups
// of No. Unknown values belong to No.
func (d Detailed) Group() Coarse {
	if c, ok := groups[d]; ok {
		return c
	}
	return No
}

func (d Detailed) String() string {
	return string(d)
}

// ParseDetailed parses a detailed category.
func ParseDetailed(value string) (Detailed, error) {
	d := Detailed(value)
	if _, ok := groups[d]; !ok {
		return "", errors.Errorf("unknown detailed infrastructure category %q", value)
	}
	return d, nil
}
