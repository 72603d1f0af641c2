package importer

import (
	"math/bits"

	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

func (im *Importer) translateScenario(d *s6.Data, w *world.World) {
	conv := im.opts.ConvertString

	w.Scenario.Category = d.Info.Category
	w.Scenario.ObjectiveType = d.ObjectiveType
	w.Scenario.ObjectiveYear = d.ObjectiveYear
	w.Scenario.ObjectiveGuests = d.ObjectiveGuests
	w.Scenario.ObjectiveCurrency = d.ObjectiveCurrency
	w.Scenario.Name = conv(d.ScenarioName[:])
	w.Scenario.Details = conv(d.ScenarioDescription[:])
	w.Scenario.FileName = d.ScenarioFilenameString()
	if im.isScenario {
		// The info block's text fields are fresher than the embedded ones
		// for scenario containers.
		if name := conv(d.Info.Name[:]); name != "" {
			w.Scenario.Name = name
		}
		if details := conv(d.Info.Details[:]); details != "" {
			w.Scenario.Details = details
		}
	}
	w.Scenario.CompletedCompanyValue = d.CompletedCompanyValue
	w.Scenario.CompletedCompanyValueRecord = d.CompletedCompanyValueRecord
	w.Scenario.CompletedBy = conv(d.ScenarioCompletedName[:])
	w.Scenario.ParkRatingWarningDays = d.ParkRatingWarningDays

	w.Date = world.Date{MonthsElapsed: d.ElapsedMonths, MonthTicks: d.CurrentDay}
	w.GameTicks = d.GameTicks1
	w.RandSeed = [2]uint32{d.RandSeed0, d.RandSeed1}
	w.SavedView = world.SavedView{
		X:        int32(int16(d.SavedViewX)),
		Y:        int32(int16(d.SavedViewY)),
		Zoom:     d.SavedViewZoom,
		Rotation: d.SavedViewRotation,
	}
	w.EntranceStyle = d.LastEntranceStyle
}

func (im *Importer) translatePark(d *s6.Data, w *world.World) {
	p := &w.Park
	p.Name = d.ParkName
	p.NameArgs = d.ParkNameArgs
	p.Flags = d.ParkFlags
	p.EntranceFee = d.ParkEntranceFee
	p.Rating = d.ParkRating
	p.Size = d.ParkSize
	p.RatingHistory = d.ParkRatingHistory
	p.GuestsInParkHistory = d.GuestsInParkHistory
	p.GuestsInPark = d.GuestsInPark
	p.GuestsHeadingForPark = d.GuestsHeadingForPark
	p.LastGuestsInPark = d.LastGuestsInPark
	p.GuestCountChangeModifier = d.GuestCountChangeModifier
	p.NextGuestIndex = d.NextGuestIndex
	p.GuestInitialHappiness = d.GuestInitialHappiness
	p.GuestInitialCash = d.GuestInitialCash
	p.GuestInitialHunger = d.GuestInitialHunger
	p.GuestInitialThirst = d.GuestInitialThirst
	p.GuestGenerationProbability = d.GuestGenerationProbability
	p.TotalAdmissions = d.TotalAdmissions
	p.IncomeFromAdmissions = d.IncomeFromAdmissions
	p.TotalRideValueForMoney = d.TotalRideValueForMoney
	p.RatingCasualtyPenalty = d.ParkRatingCasualtyPenalty
	p.SuggestedMaxGuests = d.SuggestedMaxGuests
	p.HandymanColour = d.HandymanColour
	p.MechanicColour = d.MechanicColour
	p.SecurityColour = d.SecurityColour
	p.PeepWarningThrottle = d.PeepWarningThrottle

	// The two legacy bitmaps combine into one wider same-price mask.
	p.SamePriceThroughout = uint64(d.SamePriceThroughout) |
		uint64(d.SamePriceThroughoutExtended)<<32

	p.Awards = p.Awards[:0]
	for _, a := range d.Awards {
		if a.Time != 0 {
			p.Awards = append(p.Awards, world.Award{Time: a.Time, Type: a.Type})
		}
	}

	m := &w.Map
	m.NextFreeElement = d.NextFreeTileElementPointerIndex
	m.SizeUnits = d.MapSizeUnits
	m.SizeMinus2 = d.MapSizeMinus2
	m.Size = d.MapSize
	m.MaxXY = d.MapMaxXY
	m.BaseZ = d.MapBaseZ
	m.GrassSceneryPos = d.GrassAndSceneryTilepos
	m.WidePathLoopX = d.WidePathTileLoopX
	m.WidePathLoopY = d.WidePathTileLoopY

	for i, b := range d.Banners {
		w.Banners[i] = world.Banner{
			Type:       b.Type,
			Flags:      b.Flags,
			StringID:   b.StringID,
			Colour:     b.Colour,
			TextColour: b.TextColour,
			X:          b.X,
			Y:          b.Y,
		}
	}
	for i := range d.CustomStrings {
		w.CustomStrings[i] = im.opts.ConvertString(d.CustomStrings[i][:])
	}

	for i := 0; i < int(d.NumMapAnimations) && i < len(d.MapAnimations); i++ {
		a := d.MapAnimations[i]
		w.Animations = append(w.Animations, world.MapAnimation{
			Type:  a.Type,
			X:     int32(a.X),
			Y:     int32(a.Y),
			BaseZ: a.BaseZ,
		})
	}

	w.RideRatingsCalcData = d.RideRatingsCalcData

	w.Staff.Modes = d.StaffModes
	w.Staff.PatrolAreas = d.PatrolAreas
}

func (im *Importer) translateClimate(d *s6.Data, w *world.World) {
	w.Climate = world.Climate{
		Zone:        d.Climate,
		UpdateTimer: d.ClimateUpdateTimer,
		Current: world.ClimateState{
			Weather:       d.CurrentWeather,
			Temperature:   d.Temperature,
			WeatherEffect: d.CurrentWeatherEffect,
			WeatherGloom:  d.CurrentWeatherGloom,
			RainLevel:     d.CurrentRainLevel,
		},
		Next: world.ClimateState{
			Weather:       d.NextWeather,
			Temperature:   d.NextTemperature,
			WeatherEffect: d.NextWeatherEffect,
			WeatherGloom:  d.NextWeatherGloom,
			RainLevel:     d.NextRainLevel,
		},
	}
}

func (im *Importer) translateFinance(d *s6.Data, w *world.World) {
	f := &w.Finance
	f.Cash = decryptMoney(d.Cash)
	f.CurrentLoan = d.CurrentLoan
	f.MaximumLoan = d.MaximumLoan
	f.ParkValue = d.ParkValue
	f.CompanyValue = d.CompanyValue
	f.HistoricalProfit = d.HistoricalProfit
	f.CurrentProfit = d.CurrentProfit
	f.CurrentExpenditure = d.CurrentExpenditure
	f.WeeklyProfitDividend = d.WeeklyProfitAverageDividend
	f.WeeklyProfitDivisor = d.WeeklyProfitAverageDivisor
	f.CurrentInterestRate = d.CurrentInterestRate
	f.LandPrice = d.LandPrice
	f.ConstructionRightsPrice = d.ConstructionRightsPrice
	f.ExpenditureTable = d.ExpenditureTable
	f.BalanceHistory = d.BalanceHistory
	f.WeeklyProfitHistory = d.WeeklyProfitHistory
	f.ParkValueHistory = d.ParkValueHistory
}

// decryptMoney undoes the legacy anti-tamper obfuscation on the stored cash
// field.
func decryptMoney(v uint32) int32 {
	return int32(bits.RotateLeft32(v^0xF4EC9621, 13))
}

func (im *Importer) translatePeepSpawns(d *s6.Data, w *world.World) {
	w.PeepSpawns = w.PeepSpawns[:0]
	for _, s := range d.PeepSpawns {
		if s.X == s6.PeepSpawnUndefined {
			continue
		}
		w.PeepSpawns = append(w.PeepSpawns, world.CoordsXYZD{
			X:         int32(s.X),
			Y:         int32(s.Y),
			Z:         int32(s.Z) * 16,
			Direction: s.Direction,
		})
	}
}

func (im *Importer) translateParkEntrances(d *s6.Data, w *world.World) {
	w.ParkEntrances = w.ParkEntrances[:0]
	for i := 0; i < s6.MaxParkEntrances; i++ {
		if d.ParkEntranceX[i] == s6.LocationNull {
			continue
		}
		w.ParkEntrances = append(w.ParkEntrances, world.CoordsXYZD{
			X:         int32(d.ParkEntranceX[i]),
			Y:         int32(d.ParkEntranceY[i]),
			Z:         int32(d.ParkEntranceZ[i]),
			Direction: d.ParkEntranceDirection[i],
		})
	}
}
