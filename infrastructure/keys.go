package infrastructure

// OSM keys interpreted by the classifier.
const (
	KeyAccess               = "access"
	KeyBicycle              = "bicycle"
	KeyBicycleRoad          = "bicycle_road"
	KeyCyclestreet          = "cyclestreet"
	KeyCycleway             = "cycleway"
	KeyCyclewayBicycle      = "cycleway:bicycle"
	KeyCyclewayBoth         = "cycleway:both"
	KeyCyclewayLeft         = "cycleway:left"
	KeyCyclewayLeftBicycle  = "cycleway:left:bicycle"
	KeyCyclewayLeftLane     = "cycleway:left:lane"
	KeyCyclewayRight        = "cycleway:right"
	KeyCyclewayRightBicycle = "cycleway:right:bicycle"
	KeyCyclewayRightLane    = "cycleway:right:lane"
	KeyCycleHighway         = "cycle_highway"
	KeyFoot                 = "foot"
	KeyHighway              = "highway"
	KeyIndoor               = "indoor"
	KeyLeftBicycle          = "left:bicycle"
	KeyLeftFoot             = "left:foot"
	KeyLeftLane             = "left:lane"
	KeyLeftTrafficSign      = "left:traffic_sign"
	KeyMotorVehicle         = "motor_vehicle"
	KeyRightBicycle         = "right:bicycle"
	KeyRightFoot            = "right:foot"
	KeyRightLane            = "right:lane"
	KeyRightTrafficSign     = "right:traffic_sign"
	KeySegregated           = "segregated"
	KeySidewalk             = "sidewalk"
	KeySidewalkBoth         = "sidewalk:both"
	KeySidewalkFoot         = "sidewalk:foot"
	KeySidewalkLeft         = "sidewalk:left"
	KeySidewalkLeftFoot     = "sidewalk:left:foot"
	KeySidewalkRight        = "sidewalk:right"
	KeySidewalkRightFoot    = "sidewalk:right:foot"
	KeyTrackType            = "tracktype"
	KeyTrafficSign          = "traffic_sign"
	KeyTrafficSignForward   = "traffic_sign:forward"
	KeyTram                 = "tram"
)

// SpecificOSMKeys lists all keys the classifier looks at. Some of them
// (right:foot, left:lane, ...) are matched as substrings of longer keys.
var SpecificOSMKeys = []string{
	KeyAccess, KeyBicycle, KeyBicycleRoad, KeyCyclestreet, KeyCycleway,
	KeyCyclewayBicycle, KeyCyclewayBoth, KeyCyclewayLeft, KeyCyclewayLeftBicycle,
	KeyCyclewayLeftLane, KeyCyclewayRight, KeyCyclewayRightBicycle, KeyCyclewayRightLane,
	KeyCycleHighway, KeyFoot, KeyHighway, KeyIndoor, KeyLeftBicycle, KeyLeftFoot,
	KeyLeftLane, KeyLeftTrafficSign, KeyMotorVehicle, KeyRightBicycle, KeyRightFoot,
	KeyRightLane, KeyRightTrafficSign, KeySegregated, KeySidewalk, KeySidewalkBoth,
	KeySidewalkFoot, KeySidewalkLeft, KeySidewalkLeftFoot, KeySidewalkRight,
	KeySidewalkRightFoot, KeyTrackType, KeyTrafficSign, KeyTrafficSignForward, KeyTram,
}

// OSM values interpreted by the classifier.
const (
	ValueAgricultural  = "agricultural"
	ValueBoth          = "both"
	ValueCorridor      = "corridor"
	ValueCrossing      = "crossing"
	ValueCustomers     = "customers"
	ValueCycleway      = "cycleway"
	ValueDesignated    = "designated"
	ValueDismount      = "dismount"
	ValueExclusive     = "exclusive"
	ValueFootway       = "footway"
	ValueForestry      = "forestry"
	ValueGrade1        = "grade1"
	ValueGrade2        = "grade2"
	ValueLane          = "lane"
	ValueLeft          = "left"
	ValueLivingStreet  = "living_street"
	ValueMotorway      = "motorway"
	ValueMotorwayLink  = "motorway_link"
	ValueNo            = "no"
	ValuePath          = "path"
	ValuePedestrian    = "pedestrian"
	ValuePrimary       = "primary"
	ValuePrimaryLink   = "primary_link"
	ValueResidential   = "residential"
	ValueRight         = "right"
	ValueRoad          = "road"
	ValueSecondary     = "secondary"
	ValueSecondaryLink = "secondary_link"
	ValueSeparated     = "separated"
	ValueService       = "service"
	ValueSharedLane    = "shared_lane"
	ValueShareBusway   = "share_busway"
	ValueSidepath      = "sidepath"
	ValueTertiary      = "tertiary"
	ValueTertiaryLink  = "tertiary_link"
	ValueTrack         = "track"
	ValueTrunk         = "trunk"
	ValueTrunkLink     = "trunk_link"
	ValueUnclassified  = "unclassified"
	ValueUseSidepath   = "use_sidepath"
	ValueYes           = "yes"

	// German traffic signs.
	SignSegregatedPath = "241"
	SignBicyclePath    = "237"
)
