package infrastructure

import "github.com/radsim/roadstyle/element"

// choice resolves the other side of a way once the first side matched.
type choice struct {
	when Predicate
	then Detailed
}

// step is a single entry of the classification chain. The first step whose
// when predicate matches decides the category: the first matching choice,
// or otherwise.
type step struct {
	when      Predicate
	choices   []choice
	otherwise Detailed
}

// Classifier maps OSM tags to a detailed category. The order of the steps is
// significant: a way with a bicycle way on the right and a lane on the left
// is a bicycle way, never a lane.
type Classifier struct {
	steps []step
}

// NewClassifier returns the RadSim classifier.
func NewClassifier() *Classifier {
	return &Classifier{steps: []step{
		{when: Any(IsNotAccessible, IsTram), otherwise: DetailedNo},
		{when: IsService, otherwise: DetailedServiceMisc},
		{when: IsCycleHighway, otherwise: DetailedCycleHighway},
		{when: IsBikeRoad, otherwise: DetailedBicycleRoad},

		{when: BicycleWayRight, choices: []choice{
			{BicycleWayLeft, BicycleWayBoth},
			{IsBikeLaneLeft, BicycleWayRightLaneLeft},
			{IsBusLaneLeft, BicycleWayRightBusLeft},
			{MixedWayLeft, BicycleWayRightMixedLeft},
			{MitRoadLeft, BicycleWayRightMitLeft},
			{IsPedestrianLeft, BicycleWayRightPedestrianLeft},
		}, otherwise: BicycleWayRightNoLeft},
		{when: BicycleWayLeft, choices: []choice{
			{IsBikeLaneRight, BicycleWayLeftLaneRight},
			{IsBusLaneRight, BicycleWayLeftBusRight},
			{MixedWayRight, BicycleWayLeftMixedRight},
			{MitRoadRight, BicycleWayLeftMitRight},
			{IsPedestrianRight, BicycleWayLeftPedestrianRight},
		}, otherwise: BicycleWayLeftNoRight},

		{when: IsBikeLaneRight, choices: []choice{
			{IsBikeLaneLeft, BicycleLaneBoth},
			{IsBusLaneLeft, BicycleLaneRightBusLeft},
			{MixedWayLeft, BicycleLaneRightMixedLeft},
			{MitRoadLeft, BicycleLaneRightMitLeft},
			{IsPedestrianLeft, BicycleLaneRightPedestrianLeft},
		}, otherwise: BicycleLaneRightNoLeft},
		{when: IsBikeLaneLeft, choices: []choice{
			{IsBusLaneRight, BicycleLaneLeftBusRight},
			{MixedWayRight, BicycleLaneLeftMixedRight},
			{MitRoadRight, BicycleLaneLeftMitRight},
			{IsPedestrianRight, BicycleLaneLeftPedestrianRight},
		}, otherwise: BicycleLaneLeftNoRight},

		{when: IsBusLaneRight, choices: []choice{
			{IsBusLaneLeft, BusLaneBoth},
			{MixedWayLeft, BusLaneRightMixedLeft},
			{MitRoadLeft, BusLaneRightMitLeft},
			{IsPedestrianLeft, BusLaneRightPedestrianLeft},
		}, otherwise: BusLaneRightNoLeft},
		{when: IsBusLaneLeft, choices: []choice{
			{MixedWayRight, BusLaneLeftMixedRight},
			{MitRoadRight, BusLaneLeftMitRight},
			{IsPedestrianRight, BusLaneLeftPedestrianRight},
		}, otherwise: BusLaneLeftNoRight},

		{when: MixedWayRight, choices: []choice{
			{MixedWayLeft, MixedWayBoth},
			{MitRoadLeft, MixedWayRightMitLeft},
			{IsPedestrianLeft, MixedWayRightPedestrianLeft},
		}, otherwise: MixedWayRightNoLeft},
		{when: MixedWayLeft, choices: []choice{
			{MitRoadRight, MixedWayLeftMitRight},
			{IsPedestrianRight, MixedWayLeftPedestrianRight},
		}, otherwise: MixedWayLeftNoRight},

		{when: MitRoadRight, choices: []choice{
			{MitRoadLeft, MitRoadBoth},
			{IsPedestrianLeft, MitRoadRightPedestrianLeft},
		}, otherwise: MitRoadRightNoLeft},
		{when: MitRoadLeft, choices: []choice{
			{IsPedestrianRight, MitRoadLeftPedestrianRight},
		}, otherwise: MitRoadLeftNoRight},

		// shops and similar places are not part of the network
		{when: IsPedestrianRight, choices: []choice{
			{All(IsPedestrianLeft, IsCustomersOnly), DetailedNo},
			{IsPedestrianLeft, PedestrianBoth},
		}, otherwise: PedestrianRightNoLeft},
		{when: IsPedestrianLeft, choices: []choice{
			{IsCustomersOnly, DetailedNo},
		}, otherwise: PedestrianLeftNoRight},

		{when: IsPathNotForbidden, otherwise: DetailedPathNotForbidden},
	}}
}

// Classify returns the detailed category of tags. Ways matched by no step
// are No.
func (c *Classifier) Classify(tags element.Tags) Detailed {
	for _, s := range c.steps {
		if !s.when(tags) {
			continue
		}
		for _, ch := range s.choices {
			if ch.when(tags) {
				return ch.then
			}
		}
		return s.otherwise
	}
	return DetailedNo
}

var defaultClassifier = NewClassifier()

// Classify classifies tags with the RadSim classifier.
func Classify(tags element.Tags) Detailed {
	return defaultClassifier.Classify(tags)
}
