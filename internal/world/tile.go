package world

// ElementKind discriminates the payload carried by a tile element.
type ElementKind uint8

const (
	KindFree ElementKind = iota
	KindSurface
	KindPath
	KindTrack
	KindSmallScenery
	KindEntrance
	KindWall
	KindLargeScenery
	KindBanner
	KindOpaque // unrecognized legacy payload preserved byte for byte
)

// Map dimensions. The element array is a flat pool; tiles chain through it
// until an element with LastForTile set.
const (
	MapSize        = 256
	MaxMapElements = 0x30000
)

// TileElement is one decoded map element. Exactly one payload field is
// meaningful, selected by Kind; free and opaque slots keep the legacy record
// in Raw so a future writer can round-trip them.
type TileElement struct {
	Kind            ElementKind
	Direction       uint8
	LastForTile     bool
	Ghost           bool
	OccupiedQuads   uint8
	BaseHeight      uint8
	ClearanceHeight uint8

	Raw [8]byte

	Surface      SurfaceData
	Path         PathData
	Track        TrackData
	SmallScenery SmallSceneryData
	Entrance     EntranceData
	Wall         WallData
	LargeScenery LargeSceneryData
	Banner       BannerData
}

type SurfaceData struct {
	Slope                  uint8
	SurfaceStyle           uint8
	EdgeStyle              uint8
	WaterHeight            uint8
	GrassLength            uint8
	Ownership              uint8
	ParkFences             uint8
	HasTrackThatNeedsWater bool
}

type PathData struct {
	EntryIndex           uint8
	IsQueue              bool
	IsWide               bool
	IsSloped             bool
	SlopeDirection       uint8
	HasQueueBanner       bool
	QueueBannerDirection uint8
	Edges                uint8
	Corners              uint8
	Addition             uint8
	AdditionIsGhost      bool
	AdditionStatus       uint8
	RideIndex            uint8
	StationIndex         uint8
}

type TrackData struct {
	TrackType         uint8
	SequenceIndex     uint8
	RideIndex         uint8
	StationIndex      uint8
	ColourScheme      uint8
	HasChain          bool
	HasCableLift      bool
	IsInverted        bool
	HasGreenLight     bool
	BrakeBoosterSpeed uint8
	PhotoTimeout      uint8
	SeatRotation      uint8
	MazeEntry         uint16
	IsMaze            bool
}

type SmallSceneryData struct {
	EntryIndex      uint8
	Age             uint8
	Quadrant        uint8
	PrimaryColour   uint8
	SecondaryColour uint8
	NeedsSupports   bool
}

type EntranceData struct {
	EntranceType  uint8
	RideIndex     uint8
	StationIndex  uint8
	SequenceIndex uint8
	PathType      uint8
}

type WallData struct {
	EntryIndex           uint8
	Slope                uint8
	PrimaryColour        uint8
	SecondaryColour      uint8
	TertiaryColour       uint8
	BannerIndex          uint8
	AnimationFrame       uint8
	AnimationIsBackwards bool
	IsAcrossTrack        bool
}

type LargeSceneryData struct {
	EntryIndex      uint16
	SequenceIndex   uint8
	PrimaryColour   uint8
	SecondaryColour uint8
	BannerIndex     uint8
}

type BannerData struct {
	Index        uint8
	Position     uint8
	AllowedEdges uint8
}

// Map is the element pool plus the allocation cursor into it. Elements are
// grouped by tile in row-major order (x fastest); TilePointers indexes the
// first element of each tile.
type Map struct {
	Elements        [MaxMapElements]TileElement
	TilePointers    [MapSize * MapSize]int32
	NextFreeElement uint32
	SizeUnits       uint16
	SizeMinus2      uint16
	Size            uint16
	MaxXY           uint16
	BaseZ           uint16
	GrassSceneryPos uint16
	WidePathLoopX   uint16
	WidePathLoopY   uint16
}

// Clear frees every slot in the element pool.
func (m *Map) Clear() {
	for i := range m.Elements {
		m.Elements[i] = TileElement{Kind: KindFree, BaseHeight: 0xFF}
	}
	for i := range m.TilePointers {
		m.TilePointers[i] = -1
	}
	m.NextFreeElement = 0
	m.SizeUnits = 0
	m.SizeMinus2 = 0
	m.Size = 0
	m.MaxXY = 0
	m.BaseZ = 0
	m.GrassSceneryPos = 0
	m.WidePathLoopX = 0
	m.WidePathLoopY = 0
}

// RebuildTilePointers rechains the tile pointer table by walking the pool:
// each tile's elements run to the one with LastForTile set, and the next
// tile begins immediately after.
func (m *Map) RebuildTilePointers() {
	for i := range m.TilePointers {
		m.TilePointers[i] = -1
	}
	idx := 0
	for tile := 0; tile < len(m.TilePointers) && idx < len(m.Elements); tile++ {
		m.TilePointers[tile] = int32(idx)
		for idx < len(m.Elements) && !m.Elements[idx].LastForTile {
			idx++
		}
		idx++
	}
}

// SurfaceAt returns the surface element of tile (x, y), or nil when the
// tile has none.
func (m *Map) SurfaceAt(x, y int) *TileElement {
	if x < 0 || x >= MapSize || y < 0 || y >= MapSize {
		return nil
	}
	idx := m.TilePointers[x+y*MapSize]
	if idx < 0 {
		return nil
	}
	for i := int(idx); i < len(m.Elements); i++ {
		el := &m.Elements[i]
		if el.Kind == KindSurface {
			return el
		}
		if el.LastForTile {
			break
		}
	}
	return nil
}
