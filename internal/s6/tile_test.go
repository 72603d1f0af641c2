package s6

import "testing"

func TestTileElementTypeAndDirection(t *testing.T) {
	el := TileElement{Type: ElementTrack | 0x02, BaseHeight: 14}
	if el.ElementType() != ElementTrack {
		t.Fatalf("ElementType = %#x, want track", el.ElementType())
	}
	if el.Direction() != 2 {
		t.Fatalf("Direction = %d, want 2", el.Direction())
	}
	if el.IsFreeSlot() {
		t.Fatal("height 14 must not be a free slot")
	}
	el.BaseHeight = BaseHeightFree
	if !el.IsFreeSlot() {
		t.Fatal("height 0xFF must be a free slot")
	}
}

func TestTileElementRawRoundTrip(t *testing.T) {
	raw := []byte{0x48, 0x20, 0x0A, 0x10, 0x11, 0x22, 0x33, 0x44}
	el := tileElementFromRaw(raw)
	got := el.Raw()
	for i := range raw {
		if got[i] != raw[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], raw[i])
		}
	}
}

func TestSurfaceElementBits(t *testing.T) {
	el := TileElement{
		Type:  ElementSurface | 0x80 | 0x01, // high edge bit, high surface bit
		Props: [4]uint8{0xBF, 0x7A, 3, 0xA5},
	}
	s := el.AsSurface()
	if s.Slope() != 0x1F {
		t.Fatalf("Slope = %#x", s.Slope())
	}
	if s.SurfaceStyle() != 0x0B { // bits 5-7 of Props[1] = 3, plus high bit
		t.Fatalf("SurfaceStyle = %#x", s.SurfaceStyle())
	}
	if s.EdgeStyle() != 0x0D { // bits 5-7 of Props[0] = 5, plus high bit
		t.Fatalf("EdgeStyle = %#x", s.EdgeStyle())
	}
	if s.WaterHeight() != 0x1A {
		t.Fatalf("WaterHeight = %#x", s.WaterHeight())
	}
	if s.GrassLength() != 3 {
		t.Fatalf("GrassLength = %d", s.GrassLength())
	}
	if s.Ownership() != 0xA0 || s.ParkFences() != 0x05 {
		t.Fatalf("Ownership = %#x ParkFences = %#x", s.Ownership(), s.ParkFences())
	}
}

func TestPathElementBits(t *testing.T) {
	el := TileElement{
		Type:  ElementPath | 0x01 | 0x02 | 0x40, // queue, wide, banner direction 1
		Props: [4]uint8{0x5C | 0x08, 0x80 | 0x35, 0xC9, 7},
	}
	p := el.AsPath()
	if !p.IsQueue() || !p.IsWide() {
		t.Fatal("queue and wide flags must be set")
	}
	if p.QueueBannerDirection() != 1 {
		t.Fatalf("QueueBannerDirection = %d", p.QueueBannerDirection())
	}
	if p.EntryIndex() != 5 {
		t.Fatalf("EntryIndex = %d", p.EntryIndex())
	}
	if !p.IsSloped() || p.SlopeDirection() != 0 {
		t.Fatalf("slope bits wrong: sloped=%v dir=%d", p.IsSloped(), p.SlopeDirection())
	}
	if !p.HasQueueBanner() {
		t.Fatal("queue banner flag must be set")
	}
	if p.Addition() != 5 || p.StationIndex() != 3 || !p.AdditionIsGhost() {
		t.Fatalf("addition byte wrong: %d %d %v", p.Addition(), p.StationIndex(), p.AdditionIsGhost())
	}
	if p.Edges() != 9 || p.Corners() != 0x0C {
		t.Fatalf("Edges = %#x Corners = %#x", p.Edges(), p.Corners())
	}
	if p.RideIndex() != 7 {
		t.Fatalf("RideIndex = %d", p.RideIndex())
	}
}

func TestTrackElementBits(t *testing.T) {
	el := TileElement{
		Type:  ElementTrack | 0x80,
		Props: [4]uint8{66, 0x80 | 0x23, 0x5E, 9},
	}
	tr := el.AsTrack()
	if tr.TrackType() != 66 {
		t.Fatalf("TrackType = %d", tr.TrackType())
	}
	if tr.SequenceIndex() != 3 || tr.StationIndex() != 2 {
		t.Fatalf("sequence/station = %d/%d", tr.SequenceIndex(), tr.StationIndex())
	}
	if !tr.HasGreenLight() || !tr.HasChain() {
		t.Fatal("green light and chain flags must be set")
	}
	if tr.ColourScheme() != 2 || !tr.IsInverted() || !tr.HasCableLift() {
		t.Fatalf("colour/invert/cable bits wrong")
	}
	if tr.SeatRotation() != 5 {
		t.Fatalf("SeatRotation = %d", tr.SeatRotation())
	}
	if tr.RideIndex() != 9 {
		t.Fatalf("RideIndex = %d", tr.RideIndex())
	}
}

func TestEntranceAndWallElementBits(t *testing.T) {
	entrance := TileElement{
		Type:  ElementEntrance,
		Props: [4]uint8{1, 12, 0x32, 4},
	}
	e := entrance.AsEntrance()
	if e.EntranceType() != 1 || e.RideIndex() != 12 || e.StationIndex() != 2 || e.SequenceIndex() != 3 || e.PathType() != 4 {
		t.Fatalf("entrance bits wrong: %d %d %d %d %d",
			e.EntranceType(), e.RideIndex(), e.StationIndex(), e.SequenceIndex(), e.PathType())
	}

	wall := TileElement{
		Type:  ElementWall | 0x80,
		Props: [4]uint8{30, 0x40 | 0x11, 0xB2, 0x13},
	}
	w := wall.AsWall()
	if w.EntryIndex() != 30 || w.Slope() != 2 {
		t.Fatalf("wall entry/slope = %d/%d", w.EntryIndex(), w.Slope())
	}
	if w.PrimaryColour() != 0x11 || w.SecondaryColour() != 0x12 || w.TertiaryColour() != 0x13 {
		t.Fatalf("wall colours = %#x %#x %#x", w.PrimaryColour(), w.SecondaryColour(), w.TertiaryColour())
	}
	if w.AnimationFrame() != 5 {
		t.Fatalf("AnimationFrame = %d", w.AnimationFrame())
	}
	if w.IsAcrossTrack() || !w.AnimationIsBackwards() {
		t.Fatalf("wall flags wrong")
	}
}

func TestObjectEntryIdentifierAndEmptiness(t *testing.T) {
	var e ObjectEntry
	copy(e.Name[:], "TWIST1  ")
	if e.IsEmpty() {
		t.Fatal("named entry must not be empty")
	}
	if e.Identifier() != "TWIST1" {
		t.Fatalf("Identifier = %q", e.Identifier())
	}

	var zero ObjectEntry
	if !zero.IsEmpty() {
		t.Fatal("zeroed entry must be empty")
	}
	var ff ObjectEntry
	for i := range ff.Name {
		ff.Name[i] = 0xFF
	}
	if !ff.IsEmpty() {
		t.Fatal("0xFF-filled entry must be empty")
	}
}
