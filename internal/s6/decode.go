package s6

import (
	"errors"
	"fmt"
	"io"

	"parklegacy.dev/internal/sawyer"
)

// ErrWrongContainerKind reports a header whose container-kind discriminant
// contradicts what the file extension promised.
var ErrWrongContainerKind = errors.New("s6: container kind does not match extension")

// UnsupportedFlagError rejects files from the fully-corrupted legacy
// producer identified by the compatibility flag sentinel.
type UnsupportedFlagError struct {
	Flag uint8
}

func (e *UnsupportedFlagError) Error() string {
	return fmt.Sprintf("s6: unsupported legacy compatibility flag 0x%02x", e.Flag)
}

// PackedObjectSink receives the asset blobs embedded in the container. The
// decoder streams each blob through without retaining it.
type PackedObjectSink interface {
	ExportPackedObject(entry ObjectEntry, data []byte) error
}

// Decode reads one complete container from r into a fresh staging set. The
// caller has already validated the stream checksum; header discriminants
// are checked here because they gate which table list is read.
func Decode(r io.Reader, isScenario bool, sink PackedObjectSink) (*Data, error) {
	cr := sawyer.NewChunkReader(r)
	d := &Data{}

	buf := make([]byte, HeaderChunkSize)
	if err := cr.ReadChunk(buf); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if err := d.decodeHeader(buf); err != nil {
		return nil, err
	}

	if isScenario {
		if d.Header.Type != TypeScenario {
			return nil, fmt.Errorf("%w: header says saved game", ErrWrongContainerKind)
		}
		buf = make([]byte, InfoChunkSize)
		if err := cr.ReadChunk(buf); err != nil {
			return nil, fmt.Errorf("scenario info: %w", err)
		}
		if err := d.decodeInfo(buf); err != nil {
			return nil, err
		}
	} else if d.Header.Type != TypeSavedGame {
		return nil, fmt.Errorf("%w: header says scenario", ErrWrongContainerKind)
	}

	if d.Header.ClassicFlag == ClassicFlagCorrupted {
		return nil, &UnsupportedFlagError{Flag: d.Header.ClassicFlag}
	}

	if err := d.decodePackedObjects(r, cr, sink); err != nil {
		return nil, err
	}

	buf = make([]byte, ObjectsChunkSize)
	if err := cr.ReadChunk(buf); err != nil {
		return nil, fmt.Errorf("object list: %w", err)
	}
	if err := d.decodeObjects(buf); err != nil {
		return nil, err
	}

	buf = make([]byte, GameTimeChunkSize)
	if err := cr.ReadChunk(buf); err != nil {
		return nil, fmt.Errorf("game time: %w", err)
	}
	if err := d.decodeGameTime(buf); err != nil {
		return nil, err
	}

	buf = make([]byte, TileElementsChunkSize)
	if err := cr.ReadChunk(buf); err != nil {
		return nil, fmt.Errorf("tile elements: %w", err)
	}
	if err := d.decodeTileElements(buf); err != nil {
		return nil, err
	}

	if isScenario {
		return d, d.decodeScenarioState(cr)
	}
	return d, d.decodeSavedGameState(cr)
}

// decodeScenarioState reads the trailing scenario chunk list. Scenarios omit
// the invention-status, expenditure and history sections entirely; those
// staging fields stay zero.
func (d *Data) decodeScenarioState(cr *sawyer.ChunkReader) error {
	sections := []struct {
		name   string
		size   int
		decode func(*reader) error
	}{
		{"core", CoreChunkSize, d.decodeCore},
		{"guest counts", GuestCountsChunkSize, d.decodeGuestCounts},
		{"staff colours", StaffColoursChunkSize, d.decodeStaffColours},
		{"park rating", ParkRatingChunkSize, d.decodeParkRating},
		{"research status", ResearchStatusChunkSize, d.decodeResearchStatus},
		{"finance", FinanceChunkSize, d.decodeFinance},
		{"park value", ParkValueChunkSize, d.decodeParkValue},
		{"park management", ParkManagementChunkSize, d.decodeParkManagement},
	}
	for _, s := range sections {
		buf := make([]byte, s.size)
		if err := cr.ReadChunk(buf); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if err := s.decode(newReader(buf)); err != nil {
			return err
		}
	}
	return nil
}

// decodeSavedGameState reads the single trailing saved-game chunk, which
// concatenates every section including the ones scenarios never store.
func (d *Data) decodeSavedGameState(cr *sawyer.ChunkReader) error {
	buf := make([]byte, SavedGameStateChunkSize)
	if err := cr.ReadChunk(buf); err != nil {
		return fmt.Errorf("saved game state: %w", err)
	}
	r := newReader(buf)
	steps := []func(*reader) error{
		d.decodeCore,
		d.decodeInventions,
		d.decodeGuestCounts,
		d.decodeExpenditure,
		d.decodeStaffColours,
		d.decodeSceneryResearch,
		func(r *reader) error { r.skip(savedGameReservedSize); return r.err("reserved") },
		d.decodeParkRating,
		d.decodeResearchStatus,
		d.decodeFinance,
		d.decodeParkValue,
		d.decodeParkManagement,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return err
		}
	}
	if r.remaining() != 0 {
		return fmt.Errorf("%w: %d unconsumed bytes in saved game state", sawyer.ErrFormat, r.remaining())
	}
	return nil
}

func (d *Data) decodePackedObjects(raw io.Reader, cr *sawyer.ChunkReader, sink PackedObjectSink) error {
	// A packed object is a raw 16-byte entry followed by one chunk of data.
	for i := 0; i < int(d.Header.NumPackedObjects); i++ {
		var eb [ObjectEntrySize]byte
		if _, err := io.ReadFull(raw, eb[:]); err != nil {
			return fmt.Errorf("%w: packed object %d entry: %v", sawyer.ErrFormat, i, err)
		}
		r := newReader(eb[:])
		entry := decodeObjectEntry(r)
		data, err := cr.ReadChunkAny()
		if err != nil {
			return fmt.Errorf("packed object %d: %w", i, err)
		}
		if sink != nil {
			if err := sink.ExportPackedObject(entry, data); err != nil {
				return fmt.Errorf("packed object %d (%s): %w", i, entry.Identifier(), err)
			}
		}
	}
	return nil
}

func (d *Data) decodeHeader(buf []byte) error {
	r := newReader(buf)
	d.Header.Type = r.u8()
	d.Header.ClassicFlag = r.u8()
	d.Header.NumPackedObjects = r.u16()
	d.Header.Version = r.u32()
	d.Header.MagicNumber = r.u32()
	r.padTo(HeaderChunkSize)
	return r.err("header")
}

func (d *Data) decodeInfo(buf []byte) error {
	r := newReader(buf)
	d.Info.EditorStep = r.u8()
	d.Info.Category = r.u8()
	d.Info.ObjectiveType = r.u8()
	d.Info.ObjectiveArg1 = r.u8()
	d.Info.ObjectiveArg2 = r.u32()
	d.Info.ObjectiveArg3 = r.u16()
	r.skip(0x3E)
	r.bytes(d.Info.Name[:])
	r.bytes(d.Info.Details[:])
	d.Info.Entry = decodeObjectEntry(r)
	r.padTo(InfoChunkSize)
	return r.err("scenario info")
}

func decodeObjectEntry(r *reader) ObjectEntry {
	var e ObjectEntry
	e.Flags = r.u32()
	r.bytes(e.Name[:])
	e.Checksum = r.u32()
	return e
}

func (d *Data) decodeObjects(buf []byte) error {
	r := newReader(buf)
	for i := range d.Objects {
		d.Objects[i] = decodeObjectEntry(r)
	}
	return r.err("object list")
}

func (d *Data) decodeGameTime(buf []byte) error {
	r := newReader(buf)
	d.ElapsedMonths = r.u16()
	d.CurrentDay = r.u16()
	d.ScenarioTicks = r.u32()
	d.RandSeed0 = r.u32()
	d.RandSeed1 = r.u32()
	return r.err("game time")
}

func (d *Data) decodeTileElements(buf []byte) error {
	r := newReader(buf)
	for i := range d.TileElements {
		d.TileElements[i] = tileElementFromRaw(r.take(TileElementSize))
	}
	return r.err("tile elements")
}

func (d *Data) decodeCore(r *reader) error {
	start := r.off
	d.NextFreeTileElementPointerIndex = r.u32()
	for i := range d.Sprites {
		r.bytes(d.Sprites[i][:])
	}
	for i := range d.SpriteListsHead {
		d.SpriteListsHead[i] = r.u16()
	}
	for i := range d.SpriteListsCount {
		d.SpriteListsCount[i] = r.u16()
	}
	d.ParkName = r.u16()
	r.skip(2)
	d.ParkNameArgs = r.u32()
	d.InitialCash = r.i32()
	d.CurrentLoan = r.i32()
	d.ParkFlags = r.u32()
	d.ParkEntranceFee = r.u16()
	r.skip(8) // first-generation entrance coordinates, not imported
	for i := range d.PeepSpawns {
		d.PeepSpawns[i].X = r.u16()
		d.PeepSpawns[i].Y = r.u16()
		d.PeepSpawns[i].Z = r.u8()
		d.PeepSpawns[i].Direction = r.u8()
	}
	d.GuestCountChangeModifier = r.u8()
	d.CurrentResearchLevel = r.u8()
	r.padTo(start + CoreChunkSize)
	return r.err("core")
}

func (d *Data) decodeInventions(r *reader) error {
	start := r.off
	for i := range d.ResearchedRideTypes {
		d.ResearchedRideTypes[i] = r.u32()
	}
	for i := range d.ResearchedRideEntries {
		d.ResearchedRideEntries[i] = r.u32()
	}
	r.skip(256) // researched track pieces, never imported
	r.padTo(start + inventionsSectionSize)
	return r.err("inventions")
}

func (d *Data) decodeGuestCounts(r *reader) error {
	d.GuestsInPark = r.u16()
	d.GuestsHeadingForPark = r.u16()
	return r.err("guest counts")
}

func (d *Data) decodeExpenditure(r *reader) error {
	for i := range d.ExpenditureTable {
		for j := range d.ExpenditureTable[i] {
			d.ExpenditureTable[i][j] = r.i32()
		}
	}
	return r.err("expenditure")
}

func (d *Data) decodeStaffColours(r *reader) error {
	d.LastGuestsInPark = r.u16()
	r.skip(3)
	d.HandymanColour = r.u8()
	d.MechanicColour = r.u8()
	d.SecurityColour = r.u8()
	return r.err("staff colours")
}

func (d *Data) decodeSceneryResearch(r *reader) error {
	start := r.off
	for i := range d.ResearchedSceneryItems {
		d.ResearchedSceneryItems[i] = r.u32()
	}
	r.bytes(d.ParkRatingHistory[:])
	r.bytes(d.GuestsInParkHistory[:])
	r.padTo(start + sceneryResearchSectionSize)
	return r.err("scenery research")
}

func (d *Data) decodeParkRating(r *reader) error {
	d.ParkRating = r.u16()
	return r.err("park rating")
}

func (d *Data) decodeResearchStatus(r *reader) error {
	start := r.off
	d.ActiveResearchTypes = r.u8()
	d.ResearchProgressStage = r.u8()
	d.LastResearchedItemSubject = r.u32()
	d.NextResearchItem = r.u32()
	d.ResearchProgress = r.u16()
	d.NextResearchCategory = r.u8()
	d.NextResearchExpectedDay = r.u8()
	d.NextResearchExpectedMonth = r.u8()
	d.GuestInitialHappiness = r.u8()
	d.ParkSize = r.u16()
	d.GuestGenerationProbability = r.u16()
	d.TotalRideValueForMoney = r.u16()
	d.MaximumLoan = r.i32()
	d.GuestInitialCash = r.u16()
	d.GuestInitialHunger = r.u8()
	d.GuestInitialThirst = r.u8()
	d.ObjectiveType = r.u8()
	d.ObjectiveYear = r.u8()
	r.skip(2)
	d.ObjectiveCurrency = r.i32()
	d.ObjectiveGuests = r.u16()
	r.bytes(d.CampaignWeeksLeft[:])
	r.bytes(d.CampaignRideIndex[:])
	r.padTo(start + ResearchStatusChunkSize)
	return r.err("research status")
}

func (d *Data) decodeFinance(r *reader) error {
	d.CurrentExpenditure = r.i32()
	d.CurrentProfit = r.i32()
	d.WeeklyProfitAverageDividend = r.i32()
	d.WeeklyProfitAverageDivisor = r.i32()
	return r.err("finance")
}

func (d *Data) decodeParkValue(r *reader) error {
	d.ParkValue = r.i32()
	return r.err("park value")
}

func (d *Data) decodeParkManagement(r *reader) error {
	start := r.off
	d.CompletedCompanyValue = r.i32()
	d.TotalAdmissions = r.u32()
	d.IncomeFromAdmissions = r.i32()
	d.CompanyValue = r.i32()
	r.bytes(d.PeepWarningThrottle[:])
	for i := range d.Awards {
		d.Awards[i].Time = r.u16()
		d.Awards[i].Type = r.u16()
	}
	d.LandPrice = r.u16()
	d.ConstructionRightsPrice = r.u16()
	r.skip(4)
	d.GameVersionNumber = r.u32()
	d.CompletedCompanyValueRecord = r.i32()
	d.LoanHash = r.u32()
	d.RideCount = r.u16()
	r.skip(2)
	d.HistoricalProfit = r.i32()
	r.skip(4)
	r.bytes(d.ScenarioCompletedName[:])
	d.Cash = r.u32()
	r.skip(4)
	d.ParkRatingCasualtyPenalty = r.u16()
	d.MapSizeUnits = r.u16()
	d.MapSizeMinus2 = r.u16()
	d.MapSize = r.u16()
	d.MapMaxXY = r.u16()
	d.SamePriceThroughout = r.u32()
	d.SuggestedMaxGuests = r.u16()
	d.ParkRatingWarningDays = r.u16()
	d.LastEntranceStyle = r.u8()
	r.skip(3)
	for i := range d.BalanceHistory {
		d.BalanceHistory[i] = r.i32()
	}
	for i := range d.WeeklyProfitHistory {
		d.WeeklyProfitHistory[i] = r.i32()
	}
	for i := range d.ParkValueHistory {
		d.ParkValueHistory[i] = r.i32()
	}
	for i := range d.ResearchItems {
		d.ResearchItems[i].RawValue = r.u32()
		d.ResearchItems[i].Category = r.u8()
	}
	d.MapBaseZ = r.u16()
	r.bytes(d.ScenarioName[:])
	r.bytes(d.ScenarioDescription[:])
	d.CurrentInterestRate = r.u8()
	r.skip(1)
	d.SamePriceThroughoutExtended = r.u32()
	for i := 0; i < MaxParkEntrances; i++ {
		d.ParkEntranceX[i] = r.u16()
	}
	for i := 0; i < MaxParkEntrances; i++ {
		d.ParkEntranceY[i] = r.u16()
	}
	for i := 0; i < MaxParkEntrances; i++ {
		d.ParkEntranceZ[i] = r.u16()
	}
	for i := 0; i < MaxParkEntrances; i++ {
		d.ParkEntranceDirection[i] = r.u8()
	}
	r.bytes(d.ScenarioFilename[:])
	for i := range d.SavedExpansionPackNames {
		r.bytes(d.SavedExpansionPackNames[i][:])
	}
	for i := range d.Banners {
		d.Banners[i].Type = r.u8()
		d.Banners[i].Flags = r.u8()
		d.Banners[i].StringID = r.u16()
		d.Banners[i].Colour = r.u8()
		d.Banners[i].TextColour = r.u8()
		d.Banners[i].X = r.u8()
		d.Banners[i].Y = r.u8()
	}
	for i := range d.CustomStrings {
		r.bytes(d.CustomStrings[i][:])
	}
	d.GameTicks1 = r.u32()
	for i := range d.Rides {
		if err := decodeRide(r, &d.Rides[i]); err != nil {
			return err
		}
	}
	d.SavedAge = r.u16()
	d.SavedViewX = r.u16()
	d.SavedViewY = r.u16()
	d.SavedViewZoom = r.u8()
	d.SavedViewRotation = r.u8()
	for i := range d.MapAnimations {
		d.MapAnimations[i].BaseZ = r.u8()
		d.MapAnimations[i].Type = r.u8()
		d.MapAnimations[i].X = r.u16()
		d.MapAnimations[i].Y = r.u16()
	}
	d.NumMapAnimations = r.u16()
	r.skip(2)
	r.bytes(d.RideRatingsCalcData[:])
	for i := range d.RideMeasurements {
		r.bytes(d.RideMeasurements[i][:])
	}
	d.NextGuestIndex = r.u32()
	d.GrassAndSceneryTilepos = r.u16()
	r.skip(2)
	for i := range d.PatrolAreas {
		for j := range d.PatrolAreas[i] {
			d.PatrolAreas[i][j] = r.u32()
		}
	}
	r.bytes(d.StaffModes[:])
	d.Climate = r.u8()
	r.skip(1)
	d.ClimateUpdateTimer = r.u16()
	d.CurrentWeather = r.u8()
	d.NextWeather = r.u8()
	d.Temperature = r.i8()
	d.NextTemperature = r.i8()
	d.CurrentWeatherEffect = r.u8()
	d.NextWeatherEffect = r.u8()
	d.CurrentWeatherGloom = r.u8()
	d.NextWeatherGloom = r.u8()
	d.CurrentRainLevel = r.u8()
	d.NextRainLevel = r.u8()
	for i := range d.NewsItems {
		d.NewsItems[i].Type = r.u8()
		d.NewsItems[i].Flags = r.u8()
		d.NewsItems[i].Assoc = r.u32()
		d.NewsItems[i].Ticks = r.u16()
		d.NewsItems[i].MonthYear = r.u16()
		d.NewsItems[i].Day = r.u8()
		r.skip(1)
		r.bytes(d.NewsItems[i].Text[:])
	}
	d.WidePathTileLoopX = r.u16()
	d.WidePathTileLoopY = r.u16()
	r.padTo(start + ParkManagementChunkSize)
	return r.err("park management")
}

func decodeRide(r *reader, ride *Ride) error {
	start := r.off
	ride.Type = r.u8()
	ride.Subtype = r.u8()
	r.skip(2)
	ride.Mode = r.u8()
	ride.ColourSchemeType = r.u8()
	for i := range ride.VehicleColours {
		ride.VehicleColours[i].Body = r.u8()
		ride.VehicleColours[i].Trim = r.u8()
	}
	ride.Status = r.u8()
	ride.Name = r.u16()
	ride.NameArguments = r.u32()
	ride.OverallView = r.u16()
	for i := range ride.StationStarts {
		ride.StationStarts[i] = r.u16()
	}
	r.bytes(ride.StationHeights[:])
	r.bytes(ride.StationLength[:])
	r.bytes(ride.StationDepart[:])
	r.bytes(ride.TrainAtStation[:])
	for i := range ride.Entrances {
		ride.Entrances[i] = r.u16()
	}
	for i := range ride.Exits {
		ride.Exits[i] = r.u16()
	}
	for i := range ride.LastPeepInQueue {
		ride.LastPeepInQueue[i] = r.u16()
	}
	for i := range ride.Length {
		ride.Length[i] = r.u32()
	}
	for i := range ride.Time {
		ride.Time[i] = r.u16()
	}
	r.bytes(ride.QueueTime[:])
	r.bytes(ride.QueueLength[:])
	for i := range ride.Vehicles {
		ride.Vehicles[i] = r.u16()
	}
	ride.DepartFlags = r.u8()
	ride.NumStations = r.u8()
	ride.NumVehicles = r.u8()
	ride.NumCarsPerTrain = r.u8()
	ride.ProposedNumVehicles = r.u8()
	ride.ProposedNumCarsPerTrain = r.u8()
	ride.MaxTrains = r.u8()
	ride.MinMaxCarsPerTrain = r.u8()
	ride.MinWaitingTime = r.u8()
	ride.MaxWaitingTime = r.u8()
	ride.OperationOption = r.u8()
	ride.BoatHireReturnDirection = r.u8()
	ride.BoatHireReturnPosition = r.u16()
	ride.MeasurementIndex = r.u8()
	ride.SpecialTrackElements = r.u8()
	r.skip(2)
	ride.MaxSpeed = r.i32()
	ride.AverageSpeed = r.i32()
	ride.CurrentTestSegment = r.u8()
	ride.AverageSpeedTestTimeout = r.u8()
	r.skip(2)
	ride.MaxPositiveVerticalG = r.i32()
	ride.MaxNegativeVerticalG = r.i32()
	ride.MaxLateralG = r.i32()
	ride.PreviousVerticalG = r.i32()
	ride.PreviousLateralG = r.i32()
	r.skip(2)
	ride.TestingFlags = r.u32()
	ride.CurTestTrackLocation = r.u16()
	ride.TurnCountDefault = r.u16()
	ride.TurnCountBanked = r.u16()
	ride.TurnCountSloped = r.u16()
	ride.Inversions = r.u8()
	ride.Drops = r.u8()
	ride.StartDropHeight = r.u8()
	ride.HighestDropHeight = r.u8()
	ride.ShelteredLength = r.i32()
	ride.Var11C = r.u16()
	ride.NumShelteredSections = r.u8()
	ride.CurTestTrackZ = r.u8()
	ride.CurNumCustomers = r.u16()
	ride.NumCustomersTimeout = r.u16()
	for i := range ride.NumCustomers {
		ride.NumCustomers[i] = r.u16()
	}
	ride.Price = r.u16()
	ride.ChairliftBullwheelLocation[0] = r.u16()
	ride.ChairliftBullwheelLocation[1] = r.u16()
	ride.ChairliftBullwheelZ[0] = r.u8()
	ride.ChairliftBullwheelZ[1] = r.u8()
	ride.Excitement = r.i16()
	ride.Intensity = r.i16()
	ride.Nausea = r.i16()
	ride.Value = r.u16()
	ride.ChairliftBullwheelRotation = r.u16()
	ride.Satisfaction = r.u8()
	ride.SatisfactionTimeOut = r.u8()
	ride.SatisfactionNext = r.u8()
	ride.WindowInvalidateFlags = r.u8()
	r.skip(2)
	ride.TotalCustomers = r.u32()
	ride.TotalProfit = r.i32()
	ride.Popularity = r.u8()
	ride.PopularityTimeOut = r.u8()
	ride.PopularityNext = r.u8()
	ride.NumRiders = r.u8()
	ride.MusicTuneID = r.u8()
	ride.SlideInUse = r.u8()
	ride.SlidePeep = r.u16()
	r.skip(14)
	ride.SlidePeepTShirtColour = r.u8()
	r.skip(7)
	ride.SpiralSlideProgress = r.u8()
	r.skip(9)
	ride.BuildDate = r.i16()
	ride.UpkeepCost = r.i16()
	ride.RaceWinner = r.u16()
	r.skip(2)
	ride.MusicPosition = r.u32()
	ride.BreakdownReasonPending = r.u8()
	ride.MechanicStatus = r.u8()
	ride.Mechanic = r.u16()
	ride.InspectionStation = r.u8()
	ride.BrokenVehicle = r.u8()
	ride.BrokenCar = r.u8()
	ride.BreakdownReason = r.u8()
	ride.PriceSecondary = r.u16()
	ride.Reliability = r.u16()
	ride.UnreliabilityFactor = r.u8()
	ride.Downtime = r.u8()
	ride.InspectionInterval = r.u8()
	ride.LastInspection = r.u8()
	r.bytes(ride.DowntimeHistory[:])
	ride.NoPrimaryItemsSold = r.u32()
	ride.NoSecondaryItemsSold = r.u32()
	ride.BreakdownSoundModifier = r.u8()
	ride.NotFixedTimeout = r.u8()
	ride.LastCrashType = r.u8()
	ride.ConnectedMessageThrottle = r.u8()
	ride.IncomePerHour = r.i32()
	ride.Profit = r.i32()
	r.bytes(ride.TrackColourMain[:])
	r.bytes(ride.TrackColourAdditional[:])
	r.bytes(ride.TrackColourSupports[:])
	ride.Music = r.u8()
	ride.EntranceStyle = r.u8()
	ride.VehicleChangeTimeout = r.u16()
	ride.NumBlockBrakes = r.u8()
	ride.LiftHillSpeed = r.u8()
	ride.GuestsFavourite = r.u16()
	ride.LifecycleFlags = r.u32()
	r.bytes(ride.VehicleColoursExtended[:])
	ride.TotalAirTime = r.u16()
	ride.CurrentTestStation = r.u8()
	ride.NumCircuits = r.u8()
	ride.CableLiftX = r.i16()
	ride.CableLiftY = r.i16()
	ride.CableLiftZ = r.u8()
	r.skip(1)
	ride.CableLift = r.u16()
	r.padTo(start + RideRecordSize)
	return r.err("ride record")
}
