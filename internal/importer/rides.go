package importer

import (
	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

func nullCoords() world.CoordsXYZD {
	return world.CoordsXYZD{X: world.CoordsNull, Y: world.CoordsNull, Z: world.CoordsNull}
}

// tileCoords converts a packed legacy tile position (x in the low byte, y in
// the high byte) into world units, with z taken from a small-height field.
func tileCoords(xy uint16, z uint8) world.CoordsXYZD {
	if xy == s6.XY8Undefined {
		return nullCoords()
	}
	return world.CoordsXYZD{
		X: int32(xy&0xFF) * 32,
		Y: int32(xy>>8) * 32,
		Z: int32(z) * 8,
	}
}

// translateRides copies every non-null ride slot field by field, then
// replaces the untrustworthy per-ride rider counters with values recomputed
// from the sprite array.
func (im *Importer) translateRides(d *s6.Data, w *world.World) {
	for i := range d.Rides {
		src := &d.Rides[i]
		if src.Type == s6.RideTypeNull {
			continue
		}
		translateRide(src, &w.Rides[i])
	}

	for i := range d.RideMeasurements {
		m := d.RideMeasurements[i]
		// The first measurement byte names the ride it belongs to; 0xFF
		// means the slot is unused.
		if m[0] == 0xFF {
			continue
		}
		w.RideMeasurements = append(w.RideMeasurements, world.Measurement{
			RideIndex: m[0],
			Raw:       m,
		})
	}

	recountRiders(d, w)
}

func translateRide(src *s6.Ride, dst *world.Ride) {
	*dst = world.Ride{
		Type:    src.Type,
		Subtype: src.Subtype,
		Mode:    src.Mode,
		Status:  src.Status,

		Name:     src.Name,
		NameArgs: src.NameArguments,

		OverallView: tileCoords(src.OverallView, 0),

		NumStations:          src.NumStations,
		NumTrains:            src.NumVehicles,
		CarsPerTrain:         src.NumCarsPerTrain,
		ProposedNumTrains:    src.ProposedNumVehicles,
		ProposedCarsPerTrain: src.ProposedNumCarsPerTrain,
		MaxTrains:            src.MaxTrains,
		MinMaxCarsPerTrain:   src.MinMaxCarsPerTrain,

		ColourSchemeType: src.ColourSchemeType,

		DepartFlags:     src.DepartFlags,
		MinWaitingTime:  src.MinWaitingTime,
		MaxWaitingTime:  src.MaxWaitingTime,
		OperationOption: src.OperationOption,
		LiftHillSpeed:   src.LiftHillSpeed,
		NumCircuits:     src.NumCircuits,
		NumBlockBrakes:  src.NumBlockBrakes,

		BoatHireReturnDirection: src.BoatHireReturnDirection,
		BoatHireReturnPosition:  tileCoords(src.BoatHireReturnPosition, 0),

		SpecialTrackElements: src.SpecialTrackElements,
		MeasurementIndex:     src.MeasurementIndex,

		MaxSpeed:                src.MaxSpeed,
		AverageSpeed:            src.AverageSpeed,
		CurrentTestSegment:      src.CurrentTestSegment,
		AverageSpeedTestTimeout: src.AverageSpeedTestTimeout,
		MaxPositiveVerticalG:    src.MaxPositiveVerticalG,
		MaxNegativeVerticalG:    src.MaxNegativeVerticalG,
		MaxLateralG:             src.MaxLateralG,
		PreviousVerticalG:       src.PreviousVerticalG,
		PreviousLateralG:        src.PreviousLateralG,
		TestingFlags:            src.TestingFlags,
		CurTestTrackLocation:    tileCoords(src.CurTestTrackLocation, src.CurTestTrackZ),
		TurnCountDefault:        src.TurnCountDefault,
		TurnCountBanked:         src.TurnCountBanked,
		TurnCountSloped:         src.TurnCountSloped,
		Inversions:              src.Inversions,
		Drops:                   src.Drops,
		StartDropHeight:         src.StartDropHeight,
		HighestDropHeight:       src.HighestDropHeight,
		ShelteredLength:         src.ShelteredLength,
		NumShelteredSections:    src.NumShelteredSections,
		TotalAirTime:            src.TotalAirTime,
		CurrentTestStation:      src.CurrentTestStation,

		Excitement: src.Excitement,
		Intensity:  src.Intensity,
		Nausea:     src.Nausea,
		Value:      src.Value,

		Price:          src.Price,
		PriceSecondary: src.PriceSecondary,

		ChairliftBullwheelRotation: src.ChairliftBullwheelRotation,

		Satisfaction:        src.Satisfaction,
		SatisfactionTimeOut: src.SatisfactionTimeOut,
		SatisfactionNext:    src.SatisfactionNext,

		CurNumCustomers:     src.CurNumCustomers,
		NumCustomersTimeout: src.NumCustomersTimeout,
		NumCustomers:        src.NumCustomers,
		TotalCustomers:      src.TotalCustomers,
		TotalProfit:         src.TotalProfit,
		Popularity:          src.Popularity,
		PopularityTimeOut:   src.PopularityTimeOut,
		PopularityNext:      src.PopularityNext,
		GuestsFavourite:     src.GuestsFavourite,

		MusicTuneID:   src.MusicTuneID,
		Music:         src.Music,
		MusicPosition: src.MusicPosition,

		SlideInUse:            src.SlideInUse,
		SlidePeep:             src.SlidePeep,
		SlidePeepTShirtColour: src.SlidePeepTShirtColour,
		SpiralSlideProgress:   src.SpiralSlideProgress,

		BuildDate:  src.BuildDate,
		UpkeepCost: src.UpkeepCost,
		RaceWinner: src.RaceWinner,

		BreakdownReasonPending:   src.BreakdownReasonPending,
		MechanicStatus:           src.MechanicStatus,
		Mechanic:                 src.Mechanic,
		InspectionStation:        src.InspectionStation,
		BrokenTrain:              src.BrokenVehicle,
		BrokenCar:                src.BrokenCar,
		BreakdownReason:          src.BreakdownReason,
		Reliability:              src.Reliability,
		UnreliabilityFactor:      src.UnreliabilityFactor,
		Downtime:                 src.Downtime,
		InspectionInterval:       src.InspectionInterval,
		LastInspection:           src.LastInspection,
		DowntimeHistory:          src.DowntimeHistory,
		BreakdownSoundModifier:   src.BreakdownSoundModifier,
		NotFixedTimeout:          src.NotFixedTimeout,
		LastCrashType:            src.LastCrashType,
		ConnectedMessageThrottle: src.ConnectedMessageThrottle,

		NoPrimaryItemsSold:   src.NoPrimaryItemsSold,
		NoSecondaryItemsSold: src.NoSecondaryItemsSold,
		IncomePerHour:        src.IncomePerHour,
		Profit:               src.Profit,

		EntranceStyle:        src.EntranceStyle,
		VehicleChangeTimeout: src.VehicleChangeTimeout,
		LifecycleFlags:       src.LifecycleFlags,

		CableLiftLoc: world.CoordsXYZD{
			X: int32(src.CableLiftX),
			Y: int32(src.CableLiftY),
			Z: int32(src.CableLiftZ) * 8,
		},
		CableLift: src.CableLift,

		WindowInvalidateFlags: src.WindowInvalidateFlags,
	}

	for i := 0; i < s6.MaxStationsPerRide; i++ {
		st := &dst.Stations[i]
		st.Start = tileCoords(src.StationStarts[i], src.StationHeights[i])
		st.Height = src.StationHeights[i]
		st.Length = src.StationLength[i]
		st.Depart = src.StationDepart[i]
		st.TrainAtStation = src.TrainAtStation[i]
		st.Entrance = tileCoords(src.Entrances[i], src.StationHeights[i])
		st.Exit = tileCoords(src.Exits[i], src.StationHeights[i])
		st.LastPeepInQueue = src.LastPeepInQueue[i]
		st.SegmentLength = src.Length[i]
		st.SegmentTime = src.Time[i]
		st.QueueTime = src.QueueTime[i]
		st.QueueLength = src.QueueLength[i]
	}
	for i := s6.MaxStationsPerRide; i < world.MaxStationsPerRide; i++ {
		dst.Stations[i] = world.UndefinedStation()
	}

	for i := 0; i < s6.MaxVehiclesPerRide; i++ {
		dst.Vehicles[i] = src.Vehicles[i]
	}
	for i := s6.MaxVehiclesPerRide; i < world.MaxTrainsPerRide; i++ {
		dst.Vehicles[i] = world.NullEntityIndex
	}

	for i := 0; i < s6.MaxCarsPerTrain; i++ {
		dst.VehicleColours[i] = world.VehicleColour{
			Body:     src.VehicleColours[i].Body,
			Trim:     src.VehicleColours[i].Trim,
			Tertiary: src.VehicleColoursExtended[i],
		}
	}

	for i := range dst.TrackColours {
		dst.TrackColours[i].Main = src.TrackColourMain[i]
		dst.TrackColours[i].Additional = src.TrackColourAdditional[i]
		dst.TrackColours[i].Supports = src.TrackColourSupports[i]
	}

	dst.ChairliftBullwheelLocation[0] = tileCoords(src.ChairliftBullwheelLocation[0], src.ChairliftBullwheelZ[0])
	dst.ChairliftBullwheelLocation[1] = tileCoords(src.ChairliftBullwheelLocation[1], src.ChairliftBullwheelZ[1])
}

// recountRiders discards the legacy per-ride rider counters, which drift
// through under- and overflow, and recomputes them from the sprite array.
// The recomputed counts are 16-bit: the legacy 8-bit counters wrap on large
// rides, which is the drift this pass exists to correct.
func recountRiders(d *s6.Data, w *world.World) {
	var counts [s6.MaxRides]uint16
	for i := range d.Sprites {
		sp := &d.Sprites[i]
		if sp.Identifier() != s6.SpriteIdentifierPeep {
			continue
		}
		state := sp.PeepState()
		if state != s6.PeepStateOnRide && state != s6.PeepStateEnteringRide {
			continue
		}
		ride := sp.PeepCurrentRide()
		if ride < s6.MaxRides {
			counts[ride]++
		}
	}
	for i := range w.Rides {
		if !w.Rides[i].IsNull() {
			w.Rides[i].NumRiders = counts[i]
		}
	}
}
