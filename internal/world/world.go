// Package world holds the destination model that imports populate. It is a
// caller-owned aggregate, constructed once and repopulated in place on each
// import. The package takes no locks; single-writer discipline during an
// import is the caller's responsibility.
package world

// CoordsXYZD is a fully-resolved map position in world units (32 units per
// tile edge, z in small-height units scaled by 8).
type CoordsXYZD struct {
	X, Y, Z   int32
	Direction uint8
}

// CoordsNull marks an unset or off-map position.
const CoordsNull int32 = -0x8000

// IsNull reports whether the position carries the off-map sentinel.
func (c CoordsXYZD) IsNull() bool { return c.X == CoordsNull }

// SavedView is the camera state restored after an import.
type SavedView struct {
	X, Y     int32
	Zoom     uint8
	Rotation uint8
}

// Date is the in-game calendar position.
type Date struct {
	MonthsElapsed uint16
	MonthTicks    uint16
}

// World is the destination model. Every field is rebuilt by an import; no
// field survives from the previous occupant.
type World struct {
	Map      Map
	Entities EntityPool
	Rides    [MaxRides]Ride
	Research Research
	News     NewsQueue
	Park     Park
	Finance  Finance
	Climate  Climate
	Scenario Scenario
	Staff    Staff

	Banners       [MaxBanners]Banner
	CustomStrings [MaxCustomStrings]string
	Animations    []MapAnimation

	RideMeasurements    []Measurement
	RideRatingsCalcData [60]byte

	PeepSpawns    []CoordsXYZD
	ParkEntrances []CoordsXYZD

	Date          Date
	GameTicks     uint32
	RandSeed      [2]uint32
	SavedView     SavedView
	EntranceStyle uint8
}

// New returns a world with every table in its reset state.
func New() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset returns the world to the state a fresh import expects: an empty map,
// a fully-free entity pool, null rides and cleared research. Slices are
// truncated, not reallocated.
func (w *World) Reset() {
	w.Map.Clear()
	w.Entities.Reset()
	for i := range w.Rides {
		w.Rides[i] = Ride{Type: RideTypeNull}
	}
	w.Research.ClearAll()
	w.News.Clear()
	w.Park = Park{}
	w.Finance = Finance{}
	w.Climate = Climate{}
	w.Scenario = Scenario{}
	w.Staff = Staff{}
	for i := range w.Banners {
		w.Banners[i] = Banner{}
	}
	for i := range w.CustomStrings {
		w.CustomStrings[i] = ""
	}
	w.Animations = w.Animations[:0]
	w.RideMeasurements = w.RideMeasurements[:0]
	w.RideRatingsCalcData = [60]byte{}
	w.PeepSpawns = w.PeepSpawns[:0]
	w.ParkEntrances = w.ParkEntrances[:0]
	w.Date = Date{}
	w.GameTicks = 0
	w.RandSeed = [2]uint32{}
	w.SavedView = SavedView{}
	w.EntranceStyle = 0
}

// Banner is a placed banner's display state.
type Banner struct {
	Type       uint8
	Flags      uint8
	StringID   uint16
	Colour     uint8
	TextColour uint8
	X, Y       uint8
}

// MapAnimation is one animated map object awaiting its next frame update.
type MapAnimation struct {
	Type  uint8
	X, Y  int32
	BaseZ uint8
}

// Park is park-wide management state.
type Park struct {
	Name     uint16
	NameArgs uint32
	Flags    uint32

	EntranceFee uint16
	Rating      uint16
	Size        uint16

	RatingHistory       [32]uint8
	GuestsInParkHistory [32]uint8

	GuestsInPark             uint16
	GuestsHeadingForPark     uint16
	LastGuestsInPark         uint16
	GuestCountChangeModifier uint8
	NextGuestIndex           uint32

	GuestInitialHappiness      uint8
	GuestInitialCash           uint16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	GuestGenerationProbability uint16

	TotalAdmissions        uint32
	IncomeFromAdmissions   int32
	TotalRideValueForMoney uint16

	RatingCasualtyPenalty uint16
	SuggestedMaxGuests    uint16

	HandymanColour uint8
	MechanicColour uint8
	SecurityColour uint8

	PeepWarningThrottle [16]uint8
	Awards              []Award

	SamePriceThroughout uint64
}

// Award is a currently-displayed park award.
type Award struct {
	Time uint16
	Type uint16
}

// Finance is the park's monetary state and its graph histories.
type Finance struct {
	Cash        int32
	CurrentLoan int32
	MaximumLoan int32

	ParkValue            int32
	CompanyValue         int32
	HistoricalProfit     int32
	CurrentProfit        int32
	CurrentExpenditure   int32
	WeeklyProfitDividend int32
	WeeklyProfitDivisor  int32
	CurrentInterestRate  uint8

	LandPrice               uint16
	ConstructionRightsPrice uint16

	TotalRideProfit int32

	ExpenditureTable [ExpenditureMonths][ExpenditureTypes]int32

	BalanceHistory      [FinanceGraphSize]int32
	WeeklyProfitHistory [FinanceGraphSize]int32
	ParkValueHistory    [FinanceGraphSize]int32
}

const (
	ExpenditureMonths = 16
	ExpenditureTypes  = 14
	FinanceGraphSize  = 128
)

// Climate is the weather simulation state.
type Climate struct {
	Zone        uint8
	UpdateTimer uint16

	Current ClimateState
	Next    ClimateState
}

// ClimateState is one step of the weather forecast.
type ClimateState struct {
	Weather       uint8
	Temperature   int8
	WeatherEffect uint8
	WeatherGloom  uint8
	RainLevel     uint8
}

// Scenario is objective and provenance state for the loaded scenario.
type Scenario struct {
	Category uint8

	ObjectiveType     uint8
	ObjectiveYear     uint8
	ObjectiveGuests   uint16
	ObjectiveCurrency int32

	Name     string
	Details  string
	FileName string

	CompletedCompanyValue       int32
	CompletedCompanyValueRecord int32
	CompletedBy                 string

	ParkRatingWarningDays uint16
}

// Staff is staff-management state outside the entity records themselves.
type Staff struct {
	Modes       [MaxStaffMembers]uint8
	PatrolAreas [MaxStaffMembers][PatrolAreaWords]uint32
}

const (
	MaxStaffMembers = 204
	PatrolAreaWords = 128

	MaxBanners       = 250
	MaxCustomStrings = 1024
)
