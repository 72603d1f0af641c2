package s6

// TileElement is the 8-byte legacy map record. Byte 0 packs the element
// type (bits 2-5) with the direction (bits 0-1) and two type-specific flag
// bits (6-7); bytes 4-7 are the type-specific payload. A BaseHeight of 0xFF
// marks an unused slot whose remaining bytes are unconstrained.
type TileElement struct {
	Type            uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Props           [4]uint8
}

// Element type tags (byte 0 & TypeMask). Corrupt and the two eight-cars
// corrupt markers are known corruption classes that must survive verbatim.
const (
	TypeMask = 0x3C

	ElementSurface      = 0x00
	ElementPath         = 0x04
	ElementTrack        = 0x08
	ElementSmallScenery = 0x0C
	ElementEntrance     = 0x10
	ElementWall         = 0x14
	ElementLargeScenery = 0x18
	ElementBanner       = 0x1C
	ElementCorrupt      = 0x20
	ElementEightCars14  = 0x38
	ElementEightCars15  = 0x3C
)

// BaseHeightFree marks a slot that holds no element.
const BaseHeightFree = 0xFF

func (t *TileElement) ElementType() uint8 { return t.Type & TypeMask }
func (t *TileElement) Direction() uint8   { return t.Type & 0x03 }
func (t *TileElement) IsFreeSlot() bool   { return t.BaseHeight == BaseHeightFree }

// Raw returns the element's wire bytes, used for verbatim copies of free
// slots and corrupt markers.
func (t *TileElement) Raw() [TileElementSize]byte {
	return [TileElementSize]byte{
		t.Type, t.Flags, t.BaseHeight, t.ClearanceHeight,
		t.Props[0], t.Props[1], t.Props[2], t.Props[3],
	}
}

func tileElementFromRaw(raw []byte) TileElement {
	return TileElement{
		Type: raw[0], Flags: raw[1], BaseHeight: raw[2], ClearanceHeight: raw[3],
		Props: [4]uint8{raw[4], raw[5], raw[6], raw[7]},
	}
}

// Surface payload:
//
//	props[0] slope:   bits 0-4 slope, bits 5-7 edge style low bits
//	props[1] terrain: bits 0-4 water height, bits 5-7 surface style low bits
//	props[2]          grass length
//	props[3]          bits 4-7 ownership, bits 0-3 park fences
//	type bit 0 extends the surface style, bit 7 the edge style; type bit 6
//	flags track that needs water.
type SurfaceElement struct{ *TileElement }

func (t *TileElement) AsSurface() SurfaceElement { return SurfaceElement{t} }

func (s SurfaceElement) Slope() uint8                 { return s.Props[0] & 0x1F }
func (s SurfaceElement) SurfaceStyle() uint8          { return (s.Props[1]>>5)&0x07 | (s.Type&0x01)<<3 }
func (s SurfaceElement) EdgeStyle() uint8             { return (s.Props[0]>>5)&0x07 | (s.Type&0x80)>>4 }
func (s SurfaceElement) WaterHeight() uint8           { return s.Props[1] & 0x1F }
func (s SurfaceElement) GrassLength() uint8           { return s.Props[2] }
func (s SurfaceElement) Ownership() uint8             { return s.Props[3] & 0xF0 }
func (s SurfaceElement) ParkFences() uint8            { return s.Props[3] & 0x0F }
func (s SurfaceElement) HasTrackThatNeedsWater() bool { return s.Type&0x40 != 0 }

// Path payload:
//
//	type: bit 0 queue, bit 1 wide, bits 6-7 queue banner direction
//	props[0]: bits 4-7 entry index, bit 3 queue banner present, bit 2
//	          sloped, bits 0-1 slope direction
//	props[1]: bits 0-3 addition (0 = none), bits 4-6 station index, bit 7
//	          addition is ghost
//	props[2]: bits 0-3 edges, bits 4-7 corners
//	props[3]: ride index for queues, addition status otherwise (shared)
type PathElement struct{ *TileElement }

func (t *TileElement) AsPath() PathElement { return PathElement{t} }

func (p PathElement) EntryIndex() uint8           { return p.Props[0] >> 4 }
func (p PathElement) QueueBannerDirection() uint8 { return p.Type >> 6 }
func (p PathElement) IsSloped() bool              { return p.Props[0]&0x04 != 0 }
func (p PathElement) SlopeDirection() uint8       { return p.Props[0] & 0x03 }
func (p PathElement) IsQueue() bool               { return p.Type&0x01 != 0 }
func (p PathElement) IsWide() bool                { return p.Type&0x02 != 0 }
func (p PathElement) HasQueueBanner() bool        { return p.Props[0]&0x08 != 0 }
func (p PathElement) Addition() uint8             { return p.Props[1] & 0x0F }
func (p PathElement) StationIndex() uint8         { return (p.Props[1] >> 4) & 0x07 }
func (p PathElement) AdditionIsGhost() bool       { return p.Props[1]&0x80 != 0 }
func (p PathElement) Edges() uint8                { return p.Props[2] & 0x0F }
func (p PathElement) Corners() uint8              { return p.Props[2] >> 4 }
func (p PathElement) RideIndex() uint8            { return p.Props[3] }
func (p PathElement) AdditionStatus() uint8       { return p.Props[3] }

// Track payload:
//
//	type bit 7: chain lift
//	props[0]: track piece type
//	props[1]: bits 0-3 sequence index; bits 4-6 station index; bits 4-7
//	          double as the halved brake/booster speed and the photo
//	          timeout; bit 7 green light (shared ranges, meaning depends
//	          on the track piece)
//	props[2]: bits 0-1 colour scheme, bit 2 inverted, bit 3 cable lift,
//	          bits 4-7 seat rotation; props[1..2] double as the 16-bit
//	          maze entry for maze rides
//	props[3]: ride index
type TrackElement struct{ *TileElement }

func (t *TileElement) AsTrack() TrackElement { return TrackElement{t} }

func (t TrackElement) TrackType() uint8         { return t.Props[0] }
func (t TrackElement) SequenceIndex() uint8     { return t.Props[1] & 0x0F }
func (t TrackElement) StationIndex() uint8      { return (t.Props[1] >> 4) & 0x07 }
func (t TrackElement) BrakeBoosterSpeed() uint8 { return (t.Props[1] >> 4) << 1 }
func (t TrackElement) PhotoTimeout() uint8      { return t.Props[1] >> 4 }
func (t TrackElement) HasGreenLight() bool      { return t.Props[1]&0x80 != 0 }
func (t TrackElement) ColourScheme() uint8      { return t.Props[2] & 0x03 }
func (t TrackElement) IsInverted() bool         { return t.Props[2]&0x04 != 0 }
func (t TrackElement) HasCableLift() bool       { return t.Props[2]&0x08 != 0 }
func (t TrackElement) SeatRotation() uint8      { return t.Props[2] >> 4 }
func (t TrackElement) MazeEntry() uint16        { return uint16(t.Props[1]) | uint16(t.Props[2])<<8 }
func (t TrackElement) RideIndex() uint8         { return t.Props[3] }
func (t TrackElement) HasChain() bool           { return t.Type&0x80 != 0 }

// Small scenery payload:
//
//	type bits 6-7: quadrant
//	props[0]: entry index
//	props[1]: age
//	props[2]: bits 0-4 primary colour, bit 5 needs supports
//	props[3]: bits 0-4 secondary colour
type SmallSceneryElement struct{ *TileElement }

func (t *TileElement) AsSmallScenery() SmallSceneryElement { return SmallSceneryElement{t} }

func (s SmallSceneryElement) EntryIndex() uint8      { return s.Props[0] }
func (s SmallSceneryElement) Age() uint8             { return s.Props[1] }
func (s SmallSceneryElement) SceneryQuadrant() uint8 { return s.Type >> 6 }
func (s SmallSceneryElement) PrimaryColour() uint8   { return s.Props[2] & 0x1F }
func (s SmallSceneryElement) SecondaryColour() uint8 { return s.Props[3] & 0x1F }
func (s SmallSceneryElement) NeedsSupports() bool    { return s.Props[2]&0x20 != 0 }

// Entrance payload:
//
//	props[0]: entrance type (0 ride entrance, 1 ride exit, 2 park entrance)
//	props[1]: ride index
//	props[2]: bits 0-3 station index, bits 4-7 sequence index
//	props[3]: path type
type EntranceElement struct{ *TileElement }

func (t *TileElement) AsEntrance() EntranceElement { return EntranceElement{t} }

func (e EntranceElement) EntranceType() uint8  { return e.Props[0] }
func (e EntranceElement) RideIndex() uint8     { return e.Props[1] }
func (e EntranceElement) StationIndex() uint8  { return e.Props[2] & 0x0F }
func (e EntranceElement) SequenceIndex() uint8 { return e.Props[2] >> 4 }
func (e EntranceElement) PathType() uint8      { return e.Props[3] }

// Wall payload:
//
//	type bits 6-7: slope
//	props[0]: entry index
//	props[1]: bits 0-4 primary colour, bit 5 across track, bit 6 animation
//	          runs backwards
//	props[2]: bits 0-4 secondary colour, bits 5-7 animation frame
//	props[3]: banner index; its low five bits double as the tertiary colour
type WallElement struct{ *TileElement }

func (t *TileElement) AsWall() WallElement { return WallElement{t} }

func (w WallElement) EntryIndex() uint8          { return w.Props[0] }
func (w WallElement) Slope() uint8               { return w.Type >> 6 }
func (w WallElement) PrimaryColour() uint8       { return w.Props[1] & 0x1F }
func (w WallElement) SecondaryColour() uint8     { return w.Props[2] & 0x1F }
func (w WallElement) TertiaryColour() uint8      { return w.Props[3] & 0x1F }
func (w WallElement) AnimationFrame() uint8      { return w.Props[2] >> 5 }
func (w WallElement) BannerIndex() uint8         { return w.Props[3] }
func (w WallElement) IsAcrossTrack() bool        { return w.Props[1]&0x20 != 0 }
func (w WallElement) AnimationIsBackwards() bool { return w.Props[1]&0x40 != 0 }

// Large scenery payload:
//
//	props[0] + props[1] bits 0-1: entry index (10 bits)
//	props[1] bits 2-7: sequence index
//	props[2]: bits 0-4 primary colour; props[3]: bits 0-4 secondary colour
//	banner index (8 bits) spread over type bits 6-7 and the two colour
//	bytes' high bits
type LargeSceneryElement struct{ *TileElement }

func (t *TileElement) AsLargeScenery() LargeSceneryElement { return LargeSceneryElement{t} }

func (l LargeSceneryElement) EntryIndex() uint16 {
	return uint16(l.Props[0]) | uint16(l.Props[1]&0x03)<<8
}
func (l LargeSceneryElement) SequenceIndex() uint8   { return l.Props[1] >> 2 }
func (l LargeSceneryElement) PrimaryColour() uint8   { return l.Props[2] & 0x1F }
func (l LargeSceneryElement) SecondaryColour() uint8 { return l.Props[3] & 0x1F }
func (l LargeSceneryElement) BannerIndex() uint8 {
	return (l.Type>>6)<<6 | (l.Props[2]>>5)<<3 | l.Props[3]>>5
}

// Banner payload:
//
//	props[0]: banner table index
//	props[1]: position
//	props[2]: bits 0-3 allowed edges
type BannerElement struct{ *TileElement }

func (t *TileElement) AsBanner() BannerElement { return BannerElement{t} }

func (b BannerElement) Index() uint8        { return b.Props[0] }
func (b BannerElement) Position() uint8     { return b.Props[1] }
func (b BannerElement) AllowedEdges() uint8 { return b.Props[2] & 0x0F }
