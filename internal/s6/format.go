// Package s6 decodes the legacy SC6/SV6 fixed-width container layout into a
// staging record set. The staging set mirrors the legacy tables byte for
// byte; it owns no destination state and is discarded once translation into
// the world model completes.
//
// Every table length below is a literal constant of the legacy wire format.
// None of them may be derived from destination types.
package s6

// Container kinds, as stamped in the header's type byte.
const (
	TypeSavedGame = 0
	TypeScenario  = 1
)

// ClassicFlagCorrupted is the compatibility-flag sentinel written by a
// known fully-corrupted legacy producer. Files carrying it are rejected.
const ClassicFlagCorrupted = 0x0f

// Fixed capacities of the legacy format.
const (
	ObjectEntryCount = 721
	ObjectEntrySize  = 16

	MaxTileElements = 0x30000
	TileElementSize = 8

	MaxSprites       = 10000
	SpriteRecordSize = 256
	NumSpriteLists   = 6

	MaxRides       = 255
	RideRecordSize = 608

	MaxStationsPerRide = 4
	MaxVehiclesPerRide = 32
	MaxCarsPerTrain    = 32

	MaxPeepSpawns    = 2
	MaxParkEntrances = 4
	MaxAwards        = 4
	MaxCampaigns     = 20

	ExpenditureMonths = 16
	ExpenditureTypes  = 14
	FinanceGraphSize  = 128

	MaxResearchItems     = 500
	RideTypeBitsetWords  = 8
	RideEntryBitsetWords = 8
	SceneryBitsetWords   = 56

	MaxBanners       = 250
	MaxCustomStrings = 1024
	CustomStringSize = 32

	MaxAnimatedObjects  = 2000
	MaxRideMeasurements = 8
	RideMeasurementSize = 4956

	MaxStaff        = 204
	PatrolAreaWords = 128

	MaxNewsItems     = 61
	NewsItemTextSize = 255

	CustomerHistorySize = 10
	DowntimeHistorySize = 8
	NumColourSchemes    = 4
)

// Chunk byte lengths. Scenario and saved-game containers share the leading
// chunks; the trailing state differs in how it is split into chunks and in
// which sections are present at all.
const (
	HeaderChunkSize       = 0x20
	InfoChunkSize         = 0x198
	ObjectsChunkSize      = ObjectEntryCount * ObjectEntrySize // 11536
	GameTimeChunkSize     = 16
	TileElementsChunkSize = MaxTileElements * TileElementSize // 1572864

	CoreChunkSize           = 2560076
	GuestCountsChunkSize    = 4
	StaffColoursChunkSize   = 8
	ParkRatingChunkSize     = 2
	ResearchStatusChunkSize = 1082
	FinanceChunkSize        = 16
	ParkValueChunkSize      = 4
	ParkManagementChunkSize = 483816

	// Saved games carry the entire trailing state in one chunk, including
	// the sections scenarios never store.
	SavedGameStateChunkSize = 3048816

	inventionsSectionSize      = 320
	expenditureSectionSize     = 896
	sceneryResearchSectionSize = 288
	savedGameReservedSize      = SavedGameStateChunkSize -
		(CoreChunkSize + inventionsSectionSize + GuestCountsChunkSize +
			expenditureSectionSize + StaffColoursChunkSize + sceneryResearchSectionSize +
			ParkRatingChunkSize + ResearchStatusChunkSize + FinanceChunkSize +
			ParkValueChunkSize + ParkManagementChunkSize) // 2304
)

// Sentinels of the legacy format.
const (
	PeepSpawnUndefined = 0xFFFF
	LocationNull       = 0xFFFF
	XY8Undefined       = 0xFFFF
	RideTypeNull       = 0xFF
	SpriteIndexNull    = 0xFFFF
	StationIndexNull   = 0xFF
)

// Header is the fixed container header (one 0x20-byte chunk).
type Header struct {
	Type             uint8
	ClassicFlag      uint8
	NumPackedObjects uint16
	Version          uint32
	MagicNumber      uint32
}

// Info is the scenario-info block (scenario containers only).
type Info struct {
	EditorStep    uint8
	Category      uint8
	ObjectiveType uint8
	ObjectiveArg1 uint8
	ObjectiveArg2 uint32
	ObjectiveArg3 uint16
	Name          [64]byte
	Details       [256]byte
	Entry         ObjectEntry
}

// ObjectEntry identifies one external asset by its 8-character legacy name.
type ObjectEntry struct {
	Flags    uint32
	Name     [8]byte
	Checksum uint32
}

// IsEmpty reports whether the slot holds no object. Legacy producers left
// unused slots either zeroed or filled with 0xFF.
func (e ObjectEntry) IsEmpty() bool {
	allZero, allFF := true, true
	for _, b := range e.Name {
		if b != 0 {
			allZero = false
		}
		if b != 0xFF {
			allFF = false
		}
	}
	return allZero || allFF
}

// Identifier returns the trimmed object name used for repository lookups.
func (e ObjectEntry) Identifier() string {
	n := len(e.Name)
	for n > 0 && (e.Name[n-1] == ' ' || e.Name[n-1] == 0) {
		n--
	}
	return string(e.Name[:n])
}

type PeepSpawn struct {
	X, Y      uint16
	Z         uint8
	Direction uint8
}

type Award struct {
	Time uint16
	Type uint16
}

type ResearchItem struct {
	RawValue uint32
	Category uint8
}

type Banner struct {
	Type       uint8
	Flags      uint8
	StringID   uint16
	Colour     uint8
	TextColour uint8
	X, Y       uint8
}

type MapAnimation struct {
	BaseZ uint8
	Type  uint8
	X, Y  uint16
}

type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      [NewsItemTextSize]byte
}

// Ride is the 608-byte legacy ride record. Field order follows the wire
// layout; reserved regions are consumed as padding by the decoder.
type Ride struct {
	Type             uint8
	Subtype          uint8
	Mode             uint8
	ColourSchemeType uint8
	VehicleColours   [MaxCarsPerTrain]struct{ Body, Trim uint8 }

	Status        uint8
	Name          uint16
	NameArguments uint32
	OverallView   uint16

	StationStarts   [MaxStationsPerRide]uint16
	StationHeights  [MaxStationsPerRide]uint8
	StationLength   [MaxStationsPerRide]uint8
	StationDepart   [MaxStationsPerRide]uint8
	TrainAtStation  [MaxStationsPerRide]uint8
	Entrances       [MaxStationsPerRide]uint16
	Exits           [MaxStationsPerRide]uint16
	LastPeepInQueue [MaxStationsPerRide]uint16
	Length          [MaxStationsPerRide]uint32
	Time            [MaxStationsPerRide]uint16
	QueueTime       [MaxStationsPerRide]uint8
	QueueLength     [MaxStationsPerRide]uint8

	Vehicles [MaxVehiclesPerRide]uint16

	DepartFlags             uint8
	NumStations             uint8
	NumVehicles             uint8
	NumCarsPerTrain         uint8
	ProposedNumVehicles     uint8
	ProposedNumCarsPerTrain uint8
	MaxTrains               uint8
	MinMaxCarsPerTrain      uint8
	MinWaitingTime          uint8
	MaxWaitingTime          uint8
	OperationOption         uint8

	BoatHireReturnDirection uint8
	BoatHireReturnPosition  uint16
	MeasurementIndex        uint8
	SpecialTrackElements    uint8

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
	CurTestTrackLocation    uint16
	TurnCountDefault        uint16
	TurnCountBanked         uint16
	TurnCountSloped         uint16
	Inversions              uint8
	Drops                   uint8
	StartDropHeight         uint8
	HighestDropHeight       uint8
	ShelteredLength         int32
	Var11C                  uint16
	NumShelteredSections    uint8
	CurTestTrackZ           uint8

	CurNumCustomers     uint16
	NumCustomersTimeout uint16
	NumCustomers        [CustomerHistorySize]uint16
	Price               uint16

	ChairliftBullwheelLocation [2]uint16
	ChairliftBullwheelZ        [2]uint8
	ChairliftBullwheelRotation uint16

	Excitement int16
	Intensity  int16
	Nausea     int16
	Value      uint16

	Satisfaction        uint8
	SatisfactionTimeOut uint8
	SatisfactionNext    uint8

	WindowInvalidateFlags uint8

	TotalCustomers    uint32
	TotalProfit       int32
	Popularity        uint8
	PopularityTimeOut uint8
	PopularityNext    uint8
	NumRiders         uint8

	MusicTuneID           uint8
	SlideInUse            uint8
	SlidePeep             uint16
	SlidePeepTShirtColour uint8
	SpiralSlideProgress   uint8

	BuildDate  int16
	UpkeepCost int16
	RaceWinner uint16

	MusicPosition uint32

	BreakdownReasonPending uint8
	MechanicStatus         uint8
	Mechanic               uint16
	InspectionStation      uint8
	BrokenVehicle          uint8
	BrokenCar              uint8
	BreakdownReason        uint8

	PriceSecondary uint16

	Reliability         uint16
	UnreliabilityFactor uint8
	Downtime            uint8
	InspectionInterval  uint8
	LastInspection      uint8
	DowntimeHistory     [DowntimeHistorySize]uint8

	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32

	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8

	IncomePerHour int32
	Profit        int32

	TrackColourMain       [NumColourSchemes]uint8
	TrackColourAdditional [NumColourSchemes]uint8
	TrackColourSupports   [NumColourSchemes]uint8

	Music                uint8
	EntranceStyle        uint8
	VehicleChangeTimeout uint16
	NumBlockBrakes       uint8
	LiftHillSpeed        uint8
	GuestsFavourite      uint16
	LifecycleFlags       uint32

	VehicleColoursExtended [MaxCarsPerTrain]uint8

	TotalAirTime       uint16
	CurrentTestStation uint8
	NumCircuits        uint8
	CableLiftX         int16
	CableLiftY         int16
	CableLiftZ         uint8
	CableLift          uint16
}

// Data is the staging record set: an in-memory mirror of every legacy table,
// owned exclusively by one import operation.
type Data struct {
	Header Header
	Info   Info

	Objects [ObjectEntryCount]ObjectEntry

	ElapsedMonths uint16
	CurrentDay    uint16
	ScenarioTicks uint32
	RandSeed0     uint32
	RandSeed1     uint32

	TileElements [MaxTileElements]TileElement

	NextFreeTileElementPointerIndex uint32
	Sprites                         [MaxSprites]Sprite
	SpriteListsHead                 [NumSpriteLists]uint16
	SpriteListsCount                [NumSpriteLists]uint16

	ParkName                 uint16
	ParkNameArgs             uint32
	InitialCash              int32
	CurrentLoan              int32
	ParkFlags                uint32
	ParkEntranceFee          uint16
	PeepSpawns               [MaxPeepSpawns]PeepSpawn
	GuestCountChangeModifier uint8
	CurrentResearchLevel     uint8

	// Invention status; present in saved games only, zero for scenarios.
	ResearchedRideTypes    [RideTypeBitsetWords]uint32
	ResearchedRideEntries  [RideEntryBitsetWords]uint32
	ResearchedSceneryItems [SceneryBitsetWords]uint32

	GuestsInPark         uint16
	GuestsHeadingForPark uint16
	ExpenditureTable     [ExpenditureMonths][ExpenditureTypes]int32
	LastGuestsInPark     uint16
	HandymanColour       uint8
	MechanicColour       uint8
	SecurityColour       uint8

	ParkRating          uint16
	ParkRatingHistory   [32]uint8
	GuestsInParkHistory [32]uint8

	ActiveResearchTypes        uint8
	ResearchProgressStage      uint8
	LastResearchedItemSubject  uint32
	NextResearchItem           uint32
	ResearchProgress           uint16
	NextResearchCategory       uint8
	NextResearchExpectedDay    uint8
	NextResearchExpectedMonth  uint8
	GuestInitialHappiness      uint8
	ParkSize                   uint16
	GuestGenerationProbability uint16
	TotalRideValueForMoney     uint16
	MaximumLoan                int32
	GuestInitialCash           uint16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	ObjectiveType              uint8
	ObjectiveYear              uint8
	ObjectiveCurrency          int32
	ObjectiveGuests            uint16
	CampaignWeeksLeft          [MaxCampaigns]uint8
	CampaignRideIndex          [MaxCampaigns]uint8

	CurrentExpenditure          int32
	CurrentProfit               int32
	WeeklyProfitAverageDividend int32
	WeeklyProfitAverageDivisor  int32
	ParkValue                   int32

	CompletedCompanyValue       int32
	TotalAdmissions             uint32
	IncomeFromAdmissions        int32
	CompanyValue                int32
	PeepWarningThrottle         [16]uint8
	Awards                      [MaxAwards]Award
	LandPrice                   uint16
	ConstructionRightsPrice     uint16
	GameVersionNumber           uint32
	CompletedCompanyValueRecord int32
	LoanHash                    uint32
	RideCount                   uint16
	HistoricalProfit            int32
	ScenarioCompletedName       [32]byte
	Cash                        uint32
	ParkRatingCasualtyPenalty   uint16
	MapSizeUnits                uint16
	MapSizeMinus2               uint16
	MapSize                     uint16
	MapMaxXY                    uint16
	SamePriceThroughout         uint32
	SuggestedMaxGuests          uint16
	ParkRatingWarningDays       uint16
	LastEntranceStyle           uint8

	BalanceHistory      [FinanceGraphSize]int32
	WeeklyProfitHistory [FinanceGraphSize]int32
	ParkValueHistory    [FinanceGraphSize]int32

	ResearchItems [MaxResearchItems]ResearchItem

	MapBaseZ                    uint16
	ScenarioName                [64]byte
	ScenarioDescription         [256]byte
	CurrentInterestRate         uint8
	SamePriceThroughoutExtended uint32

	ParkEntranceX         [MaxParkEntrances]uint16
	ParkEntranceY         [MaxParkEntrances]uint16
	ParkEntranceZ         [MaxParkEntrances]uint16
	ParkEntranceDirection [MaxParkEntrances]uint8

	ScenarioFilename        [256]byte
	SavedExpansionPackNames [16][32]byte

	Banners       [MaxBanners]Banner
	CustomStrings [MaxCustomStrings][CustomStringSize]byte
	GameTicks1    uint32

	Rides [MaxRides]Ride

	SavedAge          uint16
	SavedViewX        uint16
	SavedViewY        uint16
	SavedViewZoom     uint8
	SavedViewRotation uint8

	MapAnimations    [MaxAnimatedObjects]MapAnimation
	NumMapAnimations uint16

	RideRatingsCalcData [60]byte
	RideMeasurements    [MaxRideMeasurements][RideMeasurementSize]byte

	NextGuestIndex         uint32
	GrassAndSceneryTilepos uint16

	PatrolAreas [MaxStaff][PatrolAreaWords]uint32
	StaffModes  [MaxStaff]uint8

	Climate              uint8
	ClimateUpdateTimer   uint16
	CurrentWeather       uint8
	NextWeather          uint8
	Temperature          int8
	NextTemperature      int8
	CurrentWeatherEffect uint8
	NextWeatherEffect    uint8
	CurrentWeatherGloom  uint8
	NextWeatherGloom     uint8
	CurrentRainLevel     uint8
	NextRainLevel        uint8

	NewsItems [MaxNewsItems]NewsItem

	WidePathTileLoopX uint16
	WidePathTileLoopY uint16
}

// ScenarioFilenameString returns the NUL-trimmed scenario filename field.
// Quirk matching compares against this field, not the on-disk filename.
func (d *Data) ScenarioFilenameString() string {
	b := d.ScenarioFilename[:]
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
