package world

// Ride capacities. Stations and trains beyond what a legacy save can express
// are filled with sentinels on import.
const (
	MaxRides           = 255
	MaxStationsPerRide = 8
	MaxTrainsPerRide   = 48

	RideTypeNull     = 0xFF
	StationIndexNull = 0xFF
)

// Station is one boarding platform of a ride.
type Station struct {
	Start          CoordsXYZD
	Height         uint8
	Length         uint8
	Depart         uint8
	TrainAtStation uint8

	Entrance CoordsXYZD
	Exit     CoordsXYZD

	SegmentLength uint32
	SegmentTime   uint16

	QueueTime       uint8
	QueueLength     uint8
	LastPeepInQueue uint16
}

// UndefinedStation is the sentinel placed in station slots the source file
// could not describe.
func UndefinedStation() Station {
	return Station{
		Start:           CoordsXYZD{X: CoordsNull, Y: CoordsNull, Z: CoordsNull},
		Entrance:        CoordsXYZD{X: CoordsNull, Y: CoordsNull, Z: CoordsNull},
		Exit:            CoordsXYZD{X: CoordsNull, Y: CoordsNull, Z: CoordsNull},
		TrainAtStation:  StationIndexNull,
		LastPeepInQueue: NullEntityIndex,
	}
}

// VehicleColour is one car's paint scheme.
type VehicleColour struct {
	Body, Trim, Tertiary uint8
}

// Ride is one ride or stall. Type RideTypeNull marks an empty slot.
type Ride struct {
	Type    uint8
	Subtype uint8
	Mode    uint8
	Status  uint8

	Name     uint16
	NameArgs uint32

	OverallView CoordsXYZD
	Stations    [MaxStationsPerRide]Station
	NumStations uint8

	Vehicles             [MaxTrainsPerRide]uint16
	NumTrains            uint8
	CarsPerTrain         uint8
	ProposedNumTrains    uint8
	ProposedCarsPerTrain uint8
	MaxTrains            uint8
	MinMaxCarsPerTrain   uint8

	ColourSchemeType uint8
	VehicleColours   [MaxTrainsPerRide]VehicleColour
	TrackColours     [4]struct{ Main, Additional, Supports uint8 }

	DepartFlags     uint8
	MinWaitingTime  uint8
	MaxWaitingTime  uint8
	OperationOption uint8
	LiftHillSpeed   uint8
	NumCircuits     uint8
	NumBlockBrakes  uint8

	BoatHireReturnDirection uint8
	BoatHireReturnPosition  CoordsXYZD

	SpecialTrackElements uint8
	MeasurementIndex     uint8

	MaxSpeed                int32
	AverageSpeed            int32
	CurrentTestSegment      uint8
	AverageSpeedTestTimeout uint8
	MaxPositiveVerticalG    int32
	MaxNegativeVerticalG    int32
	MaxLateralG             int32
	PreviousVerticalG       int32
	PreviousLateralG        int32
	TestingFlags            uint32
	CurTestTrackLocation    CoordsXYZD
	TurnCountDefault        uint16
	TurnCountBanked         uint16
	TurnCountSloped         uint16
	Inversions              uint8
	Drops                   uint8
	StartDropHeight         uint8
	HighestDropHeight       uint8
	ShelteredLength         int32
	NumShelteredSections    uint8
	TotalAirTime            uint16
	CurrentTestStation      uint8

	Excitement int16
	Intensity  int16
	Nausea     int16
	Value      uint16

	Price          uint16
	PriceSecondary uint16

	ChairliftBullwheelLocation [2]CoordsXYZD
	ChairliftBullwheelRotation uint16

	Satisfaction        uint8
	SatisfactionTimeOut uint8
	SatisfactionNext    uint8

	CurNumCustomers     uint16
	NumCustomersTimeout uint16
	NumCustomers        [10]uint16
	TotalCustomers      uint32
	TotalProfit         int32
	Popularity          uint8
	PopularityTimeOut   uint8
	PopularityNext      uint8
	NumRiders           uint16
	GuestsFavourite     uint16

	MusicTuneID   uint8
	Music         uint8
	MusicPosition uint32

	SlideInUse            uint8
	SlidePeep             uint16
	SlidePeepTShirtColour uint8
	SpiralSlideProgress   uint8

	BuildDate  int16
	UpkeepCost int16
	RaceWinner uint16

	BreakdownReasonPending   uint8
	MechanicStatus           uint8
	Mechanic                 uint16
	InspectionStation        uint8
	BrokenTrain              uint8
	BrokenCar                uint8
	BreakdownReason          uint8
	Reliability              uint16
	UnreliabilityFactor      uint8
	Downtime                 uint8
	InspectionInterval       uint8
	LastInspection           uint8
	DowntimeHistory          [8]uint8
	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8

	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32
	IncomePerHour        int32
	Profit               int32

	EntranceStyle        uint8
	VehicleChangeTimeout uint16
	LifecycleFlags       uint32

	CableLiftLoc CoordsXYZD
	CableLift    uint16

	WindowInvalidateFlags uint8
}

// IsNull reports whether the slot holds no ride.
func (r *Ride) IsNull() bool { return r.Type == RideTypeNull }

// Measurement is a recorded test-run data series for one ride.
type Measurement struct {
	RideIndex uint8
	Raw       [4956]byte
}
