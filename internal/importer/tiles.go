package importer

import (
	"fmt"

	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

// Legacy ride type whose track elements store a maze layout word in place of
// the sequence fields.
const legacyRideTypeMaze = 20

// translateTiles converts every slot of the legacy tile array. Free slots
// and known-corrupt markers are preserved byte for byte; the eight payload
// kinds are rebuilt field by field. Anything else is a contract violation:
// the decoder admits only these tags in well-formed input.
func translateTiles(d *s6.Data, w *world.World) {
	for i := range d.TileElements {
		src := &d.TileElements[i]
		dst := &w.Map.Elements[i]

		if src.IsFreeSlot() {
			*dst = world.TileElement{
				Kind:       world.KindFree,
				BaseHeight: src.BaseHeight,
				Raw:        src.Raw(),
			}
			continue
		}

		*dst = world.TileElement{
			Direction:       src.Direction(),
			LastForTile:     src.Flags&0x80 != 0,
			Ghost:           src.Flags&0x10 != 0,
			OccupiedQuads:   src.Flags & 0x0F,
			BaseHeight:      src.BaseHeight,
			ClearanceHeight: src.ClearanceHeight,
		}

		switch src.ElementType() {
		case s6.ElementSurface:
			translateSurface(src, dst)
		case s6.ElementPath:
			translatePath(src, dst)
		case s6.ElementTrack:
			translateTrack(d, src, dst)
		case s6.ElementSmallScenery:
			translateSmallScenery(src, dst)
		case s6.ElementEntrance:
			translateEntrance(src, dst)
		case s6.ElementWall:
			translateWall(src, dst)
		case s6.ElementLargeScenery:
			translateLargeScenery(src, dst)
		case s6.ElementBanner:
			translateBanner(src, dst)
		case s6.ElementCorrupt, s6.ElementEightCars14, s6.ElementEightCars15:
			dst.Kind = world.KindOpaque
			dst.Raw = src.Raw()
		default:
			panic(fmt.Sprintf("importer: tile element %d has unrecognized type %#02x", i, src.ElementType()))
		}
	}
	w.Map.RebuildTilePointers()
}

func translateSurface(src *s6.TileElement, dst *world.TileElement) {
	s := src.AsSurface()
	dst.Kind = world.KindSurface
	dst.Surface = world.SurfaceData{
		Slope:                  s.Slope(),
		SurfaceStyle:           s.SurfaceStyle(),
		EdgeStyle:              s.EdgeStyle(),
		WaterHeight:            s.WaterHeight(),
		GrassLength:            s.GrassLength(),
		Ownership:              s.Ownership(),
		ParkFences:             s.ParkFences(),
		HasTrackThatNeedsWater: s.HasTrackThatNeedsWater(),
	}
}

func translatePath(src *s6.TileElement, dst *world.TileElement) {
	p := src.AsPath()
	dst.Kind = world.KindPath
	data := world.PathData{
		EntryIndex:     p.EntryIndex(),
		IsQueue:        p.IsQueue(),
		IsWide:         p.IsWide(),
		IsSloped:       p.IsSloped(),
		SlopeDirection: p.SlopeDirection(),
		Edges:          p.Edges(),
		Corners:        p.Corners(),
		Addition:       p.Addition(),
	}
	if data.IsQueue {
		data.HasQueueBanner = p.HasQueueBanner()
		data.QueueBannerDirection = p.QueueBannerDirection()
		data.RideIndex = p.RideIndex()
		data.StationIndex = p.StationIndex()
	}
	if data.Addition != 0 {
		data.AdditionIsGhost = p.AdditionIsGhost()
		data.AdditionStatus = p.AdditionStatus()
	}
	dst.Path = data
}

func translateTrack(d *s6.Data, src *s6.TileElement, dst *world.TileElement) {
	t := src.AsTrack()
	dst.Kind = world.KindTrack
	rideIndex := t.RideIndex()
	data := world.TrackData{
		TrackType:    t.TrackType(),
		RideIndex:    rideIndex,
		HasChain:     t.HasChain(),
		IsInverted:   t.IsInverted(),
		ColourScheme: t.ColourScheme(),
	}
	if int(rideIndex) < len(d.Rides) && d.Rides[rideIndex].Type == legacyRideTypeMaze {
		data.IsMaze = true
		data.MazeEntry = t.MazeEntry()
	} else {
		data.SequenceIndex = t.SequenceIndex()
		data.StationIndex = t.StationIndex()
		data.HasCableLift = t.HasCableLift()
		data.HasGreenLight = t.HasGreenLight()
		data.BrakeBoosterSpeed = t.BrakeBoosterSpeed()
		data.PhotoTimeout = t.PhotoTimeout()
		data.SeatRotation = t.SeatRotation()
	}
	dst.Track = data
}

func translateSmallScenery(src *s6.TileElement, dst *world.TileElement) {
	s := src.AsSmallScenery()
	dst.Kind = world.KindSmallScenery
	dst.SmallScenery = world.SmallSceneryData{
		EntryIndex:      s.EntryIndex(),
		Age:             s.Age(),
		Quadrant:        s.SceneryQuadrant(),
		PrimaryColour:   s.PrimaryColour(),
		SecondaryColour: s.SecondaryColour(),
		NeedsSupports:   s.NeedsSupports(),
	}
}

func translateEntrance(src *s6.TileElement, dst *world.TileElement) {
	e := src.AsEntrance()
	dst.Kind = world.KindEntrance
	dst.Entrance = world.EntranceData{
		EntranceType:  e.EntranceType(),
		RideIndex:     e.RideIndex(),
		StationIndex:  e.StationIndex(),
		SequenceIndex: e.SequenceIndex(),
		PathType:      e.PathType(),
	}
}

func translateWall(src *s6.TileElement, dst *world.TileElement) {
	wl := src.AsWall()
	dst.Kind = world.KindWall
	dst.Wall = world.WallData{
		EntryIndex:           wl.EntryIndex(),
		Slope:                wl.Slope(),
		PrimaryColour:        wl.PrimaryColour(),
		SecondaryColour:      wl.SecondaryColour(),
		TertiaryColour:       wl.TertiaryColour(),
		BannerIndex:          wl.BannerIndex(),
		AnimationFrame:       wl.AnimationFrame(),
		AnimationIsBackwards: wl.AnimationIsBackwards(),
		IsAcrossTrack:        wl.IsAcrossTrack(),
	}
}

func translateLargeScenery(src *s6.TileElement, dst *world.TileElement) {
	l := src.AsLargeScenery()
	dst.Kind = world.KindLargeScenery
	dst.LargeScenery = world.LargeSceneryData{
		EntryIndex:      l.EntryIndex(),
		SequenceIndex:   l.SequenceIndex(),
		PrimaryColour:   l.PrimaryColour(),
		SecondaryColour: l.SecondaryColour(),
		BannerIndex:     l.BannerIndex(),
	}
}

func translateBanner(src *s6.TileElement, dst *world.TileElement) {
	b := src.AsBanner()
	dst.Kind = world.KindBanner
	dst.Banner = world.BannerData{
		Index:        b.Index(),
		Position:     b.Position(),
		AllowedEdges: b.AllowedEdges(),
	}
}
