package infrastructure

import (
	"strings"

	"github.com/radsim/roadstyle/element"
)

// Predicates on the whole way.
var (
	IsSegregated    = anyKeyContains(KeySegregated, ValueYes)
	IsFootpath      = valueIs(KeyHighway, ValueFootway, ValuePedestrian)
	IsPath          = valueIs(KeyHighway, ValuePath)
	IsTrack         = valueIs(KeyHighway, ValueTrack)
	IsIndoor        = valueIs(KeyIndoor, ValueYes)
	IsTram          = valueIs(KeyTram, ValueYes)
	IsNotAccessible = valueIs(KeyAccess, ValueNo)
	IsAccessible    = Not(IsNotAccessible)
	IsCustomersOnly = valueIs(KeyAccess, ValueCustomers)
	IsCycleHighway  = valueIs(KeyCycleHighway, ValueYes)
	IsBikeRoad      = Any(valueIs(KeyBicycleRoad, ValueYes), valueIs(KeyCyclestreet, ValueYes))

	CanBike = All(
		valueIs(KeyBicycle, ValueYes, ValueDesignated),
		Not(valueIs(KeyHighway, ValueMotorway, ValueMotorwayLink)),
	)
	CannotBike = Any(
		valueIs(KeyBicycle, ValueNo, ValueDismount, ValueUseSidepath),
		valueIs(KeyHighway, ValueCorridor, ValueMotorway, ValueMotorwayLink, ValueTrunk, ValueTrunkLink),
		IsCustomersOnly,
	)
	CanCarDrive = valueIs(KeyHighway,
		ValueMotorway, ValueTrunk, ValuePrimary, ValueSecondary, ValueTertiary,
		ValueUnclassified, ValueRoad, ValueResidential, ValueLivingStreet,
		ValuePrimaryLink, ValueSecondaryLink, ValueTertiaryLink, ValueMotorwayLink, ValueTrunkLink,
	)

	// IsObligatedSegregated matches ways signposted as segregated foot and
	// cycle path.
	IsObligatedSegregated = Any(
		valueContains(KeyTrafficSign, SignSegregatedPath),
		valueContains(KeyTrafficSignForward, SignSegregatedPath),
	)
	IsBicycleDesignated = valueIs(KeyBicycle, ValueDesignated)

	isSmooth         = Any(Not(has(KeyTrackType)), valueIs(KeyTrackType, ValueGrade1, ValueGrade2))
	isVehicleAllowed = Not(valueIs(KeyMotorVehicle, ValueNo))

	// IsService matches service roads and accessible agricultural ways,
	// paths and smooth tracks, unless they are designated for bicycles.
	IsService = All(
		Any(
			valueIs(KeyHighway, ValueService),
			All(valueIs(KeyMotorVehicle, ValueAgricultural, ValueForestry), IsAccessible),
			All(IsPath, IsAccessible),
			All(IsTrack, IsAccessible, isSmooth, isVehicleAllowed),
		),
		Not(IsBicycleDesignated),
	)

	IsPathNotForbidden = All(
		valueIs(KeyHighway, ValueCycleway, ValueTrack, ValuePath),
		Not(CannotBike),
	)
)

// Side specific predicates.
var (
	CanWalkRight = canWalk(Right)
	CanWalkLeft  = canWalk(Left)

	IsBicycleDesignatedRight = isBicycleDesignated(Right)
	IsBicycleDesignatedLeft  = isBicycleDesignated(Left)

	IsPedestrianDesignatedRight = isPedestrianDesignated(Right)
	IsPedestrianDesignatedLeft  = isPedestrianDesignated(Left)

	IsBikePathRight = isBikePath(Right)
	IsBikePathLeft  = isBikePath(Left)

	IsBikeLaneRight = isBikeLane(Right)
	IsBikeLaneLeft  = isBikeLane(Left)

	IsBusLaneRight = isBusLane(Right)
	IsBusLaneLeft  = isBusLane(Left)

	IsPedestrianRight = isPedestrian(Right)
	IsPedestrianLeft  = isPedestrian(Left)

	BicycleWayRight = bicycleWay(Right)
	BicycleWayLeft  = bicycleWay(Left)

	MixedWayRight = mixedWay(Right)
	MixedWayLeft  = mixedWay(Left)

	MitRoadRight = mitRoad(Right)
	MitRoadLeft  = mitRoad(Left)
)

func has(key string) Predicate {
	return func(tags element.Tags) bool { return tags.Has(key) }
}

func valueContains(key, part string) Predicate {
	return func(tags element.Tags) bool {
		v := tags[key]
		return v != "" && strings.Contains(v, part)
	}
}

func canWalk(s Side) Predicate {
	k := s.keys()
	return Any(
		valueIs(KeyFoot, ValueYes, ValueDesignated),
		anyKeyContains(k.foot, ValueYes, ValueDesignated),
		valueIs(KeySidewalk, ValueYes, ValueSeparated, ValueBoth, ValueRight, ValueLeft),
		valueIs(k.sidewalk, ValueYes, ValueSeparated, ValueBoth, k.name),
		valueIs(KeySidewalkBoth, ValueYes, ValueSeparated, ValueBoth),
	)
}

func isBicycleDesignated(s Side) Predicate {
	k := s.keys()
	return Any(
		IsBicycleDesignated,
		valueIs(k.cyclewayBicycle, ValueDesignated),
		valueIs(KeyCyclewayBicycle, ValueDesignated),
	)
}

func isPedestrianDesignated(s Side) Predicate {
	k := s.keys()
	return Any(
		valueIs(KeyFoot, ValueDesignated),
		valueIs(k.sidewalkFoot, ValueDesignated),
		valueIs(KeySidewalkFoot, ValueDesignated),
	)
}

func isBikePath(s Side) Predicate {
	k := s.keys()
	separated := []string{ValueTrack, ValueSidepath, ValueCrossing}
	return Any(
		valueIs(KeyHighway, ValueCycleway),
		All(anyKeyContains(k.bicycle, ValueDesignated), Not(has(k.cyclewayLane))),
		valueIs(KeyCycleway, separated...),
		valueIs(k.cycleway, separated...),
		valueIs(KeyCyclewayBoth, separated...),
		anyKeyContains(k.trafficSign, SignBicyclePath),
	)
}

func isBikeLane(s Side) Predicate {
	k := s.keys()
	return Any(
		valueIs(KeyCycleway, ValueLane, ValueSharedLane),
		valueIs(k.cycleway, ValueLane, ValueSharedLane),
		valueIs(KeyCyclewayBoth, ValueLane, ValueSharedLane),
		anyKeyContains(k.lane, ValueExclusive),
	)
}

func isBusLane(s Side) Predicate {
	k := s.keys()
	return Any(
		valueIs(KeyCycleway, ValueShareBusway),
		valueIs(k.cycleway, ValueShareBusway),
		valueIs(KeyCyclewayBoth, ValueShareBusway),
	)
}

func isPedestrian(s Side) Predicate {
	return All(
		Not(IsIndoor),
		Any(
			All(IsFootpath, Not(CanBike)),
			All(IsPath, canWalk(s), Not(CanBike)),
		),
	)
}

func bicycleWay(s Side) Predicate {
	bikePath, walk := isBikePath(s), canWalk(s)
	return Any(
		All(bikePath, Not(walk)),
		All(bikePath, IsSegregated),
		All(CanBike, Any(IsPath, IsTrack), Not(walk)),
		All(CanBike, Any(IsTrack, IsFootpath, IsPath), IsSegregated),
		All(CanBike, IsObligatedSegregated),
		All(isBicycleDesignated(s), isPedestrianDesignated(s), IsSegregated),
	)
}

func mixedWay(s Side) Predicate {
	bikePath, walk := isBikePath(s), canWalk(s)
	return Any(
		All(bikePath, walk, Not(IsSegregated)),
		All(IsFootpath, CanBike, Not(IsSegregated)),
		All(Any(IsPath, IsTrack), CanBike, walk, Not(IsSegregated)),
	)
}

// mitRoad matches roads shared by cars and bicycles without any bicycle
// infrastructure on side s.
func mitRoad(s Side) Predicate {
	return All(
		CanCarDrive,
		Not(isBikePath(s)),
		Not(IsBikeRoad),
		Not(IsFootpath),
		Not(isBikeLane(s)),
		Not(isBusLane(s)),
		Not(IsPath),
		Not(IsTrack),
		Not(CannotBike),
	)
}
