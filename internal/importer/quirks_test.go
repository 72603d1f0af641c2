package importer

import (
	"testing"

	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

func TestEuropeanCulturalFestivalLandGrant(t *testing.T) {
	d := &s6.Data{}
	copy(d.ScenarioFilename[:], "Europe - European Cultural Festival.SC6\x00")

	// One surface element per tile, so tile (x, y) maps to pool slot
	// x + y*256.
	for i := range d.TileElements {
		d.TileElements[i] = s6.TileElement{
			Type:       s6.ElementSurface,
			Flags:      0x80, // last element of its tile
			BaseHeight: 14,
		}
	}

	w := world.New()
	translateTiles(d, w)

	target := w.Map.SurfaceAt(67, 94)
	if target == nil {
		t.Fatal("tile (67,94) must have a surface element")
	}
	if target.Surface.Ownership&ownershipOwned != 0 {
		t.Fatal("tile must start unowned")
	}

	applyWorldQuirks(d, w)

	if target.Surface.Ownership&ownershipOwned == 0 {
		t.Fatal("quirk must grant ownership of tile (67,94)")
	}
	if other := w.Map.SurfaceAt(67, 95); other.Surface.Ownership&ownershipOwned != 0 {
		t.Fatal("unlisted tiles must stay unowned")
	}
}

func TestQuirkTableMatchesExactFilenameOnly(t *testing.T) {
	d := &s6.Data{}
	copy(d.ScenarioFilename[:], "amity airfield.sc6\x00") // wrong case
	d.PeepSpawns[0] = s6.PeepSpawn{X: 100, Y: 50, Z: 2, Direction: 1}

	applyStagingQuirks(d)

	if d.PeepSpawns[0].Y != 50 {
		t.Fatal("quirk matching must be exact, not case-folded")
	}
}
