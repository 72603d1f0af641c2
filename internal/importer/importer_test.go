package importer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

// Byte offsets used to plant values into synthetic chunk bodies. These are
// positions within the chunk, matching the legacy wire layout.
const (
	coreOffPeepSpawns       = 2560058
	mgmtOffScenarioFilename = 4534
)

func rawChunk(body []byte) []byte {
	out := make([]byte, 5+len(body))
	out[0] = 0
	binary.LittleEndian.PutUint32(out[1:5], uint32(len(body)))
	copy(out[5:], body)
	return out
}

func buildScenarioStream(plant func(bodies map[string][]byte)) []byte {
	bodies := map[string][]byte{
		"header":   make([]byte, s6.HeaderChunkSize),
		"info":     make([]byte, s6.InfoChunkSize),
		"objects":  make([]byte, s6.ObjectsChunkSize),
		"gametime": make([]byte, s6.GameTimeChunkSize),
		"tiles":    make([]byte, s6.TileElementsChunkSize),
		"core":     make([]byte, s6.CoreChunkSize),
		"guests":   make([]byte, s6.GuestCountsChunkSize),
		"staff":    make([]byte, s6.StaffColoursChunkSize),
		"rating":   make([]byte, s6.ParkRatingChunkSize),
		"research": make([]byte, s6.ResearchStatusChunkSize),
		"finance":  make([]byte, s6.FinanceChunkSize),
		"value":    make([]byte, s6.ParkValueChunkSize),
		"mgmt":     make([]byte, s6.ParkManagementChunkSize),
	}
	bodies["header"][0] = s6.TypeScenario
	if plant != nil {
		plant(bodies)
	}
	var buf bytes.Buffer
	for _, name := range []string{
		"header", "info", "objects", "gametime", "tiles",
		"core", "guests", "staff", "rating", "research", "finance", "value", "mgmt",
	} {
		buf.Write(rawChunk(bodies[name]))
	}
	// Whole-stream additive checksum trailer.
	var sum uint32
	for _, b := range buf.Bytes() {
		sum += uint32(b)
	}
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], sum)
	buf.Write(trailer[:])
	return buf.Bytes()
}

func writeScenarioFile(t *testing.T, name string, plant func(bodies map[string][]byte)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buildScenarioStream(plant), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func plantSpawn(core []byte, slot int, x, y uint16, z, dir uint8) {
	off := coreOffPeepSpawns + slot*6
	binary.LittleEndian.PutUint16(core[off:], x)
	binary.LittleEndian.PutUint16(core[off+2:], y)
	core[off+4] = z
	core[off+5] = dir
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	im := New(Options{})
	_, err := im.Load("park.dat")
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("err = %v, want ErrInvalidExtension", err)
	}
	if im.State() != StateUnopened {
		t.Fatal("failed extension check must not advance the state machine")
	}
}

func TestLoadChecksumEnforcement(t *testing.T) {
	path := writeScenarioFile(t, "park.SC6", nil)

	// Corrupt one payload byte without updating the trailer.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[100]++
	bad := filepath.Join(t.TempDir(), "bad.SC6")
	if err := os.WriteFile(bad, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(Options{}).Load(bad); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
	if _, err := New(Options{AllowIncorrectChecksum: true}).Load(bad); err != nil {
		t.Fatalf("override must skip the check, got %v", err)
	}
}

func TestLoadWrongContainerKind(t *testing.T) {
	path := writeScenarioFile(t, "park.SC6", func(b map[string][]byte) {
		b["header"][0] = s6.TypeSavedGame
	})
	_, err := New(Options{}).Load(path)
	if !errors.Is(err, s6.ErrWrongContainerKind) {
		t.Fatalf("err = %v, want ErrWrongContainerKind", err)
	}
}

func TestLoadReportsRequiredObjects(t *testing.T) {
	path := writeScenarioFile(t, "park.sc6", func(b map[string][]byte) {
		// First object slot: flags + 8-byte name + checksum.
		binary.LittleEndian.PutUint32(b["objects"][0:], 0x81)
		copy(b["objects"][4:12], "TWIST1  ")
	})
	im := New(Options{})
	required, err := im.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(required) != 1 {
		t.Fatalf("required = %d entries, want 1", len(required))
	}
	if required[0].Identifier() != "TWIST1" {
		t.Fatalf("Identifier = %q", required[0].Identifier())
	}
	if im.State() != StateObjectsKnown {
		t.Fatalf("state = %v, want ObjectsKnown", im.State())
	}
}

func TestImportRequiresLoad(t *testing.T) {
	im := New(Options{})
	if _, err := im.Import(world.New()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
}

func TestLoadTwiceFails(t *testing.T) {
	path := writeScenarioFile(t, "park.SC6", nil)
	im := New(Options{})
	if _, err := im.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := im.Load(path); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("err = %v, want ErrAlreadyLoaded", err)
	}
}

func TestImportAmityAirfieldSpawnQuirk(t *testing.T) {
	path := writeScenarioFile(t, "anything.SC6", func(b map[string][]byte) {
		copy(b["mgmt"][mgmtOffScenarioFilename:], "Amity Airfield.SC6\x00")
		plantSpawn(b["core"], 0, 100, 50, 2, 1)
		plantSpawn(b["core"], 1, 0xFFFF, 0, 0, 0)
	})
	im := New(Options{})
	if _, err := im.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := world.New()
	if _, err := im.Import(w); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if im.State() != StatePatched {
		t.Fatalf("state = %v, want Patched", im.State())
	}
	if len(w.PeepSpawns) != 1 {
		t.Fatalf("spawns = %d, want 1", len(w.PeepSpawns))
	}
	got := w.PeepSpawns[0]
	if got.X != 100 || got.Y != 1296 || got.Z != 32 || got.Direction != 1 {
		t.Fatalf("spawn = %+v, want {100 1296 32 1}", got)
	}
}

func TestImportRioCarnivalSpawnQuirk(t *testing.T) {
	for _, filename := range []string{
		"WW South America - Rio Carnival.SC6",
		"South America - Rio Carnival.SC6",
	} {
		path := writeScenarioFile(t, "rio.SC6", func(b map[string][]byte) {
			copy(b["mgmt"][mgmtOffScenarioFilename:], filename+"\x00")
			plantSpawn(b["core"], 0, 500, 500, 1, 0) // broken, replaced by quirk
			plantSpawn(b["core"], 1, 600, 600, 1, 0) // cleared by quirk
		})
		im := New(Options{})
		if _, err := im.Load(path); err != nil {
			t.Fatalf("%s: Load: %v", filename, err)
		}
		w := world.New()
		if _, err := im.Import(w); err != nil {
			t.Fatalf("%s: Import: %v", filename, err)
		}
		if len(w.PeepSpawns) != 1 {
			t.Fatalf("%s: spawns = %d, want 1", filename, len(w.PeepSpawns))
		}
		got := w.PeepSpawns[0]
		if got.X != 2160 || got.Y != 3167 || got.Z != 96 || got.Direction != 1 {
			t.Fatalf("%s: spawn = %+v", filename, got)
		}
	}
}

func TestImportSpawnsWithoutQuirkPassThrough(t *testing.T) {
	path := writeScenarioFile(t, "plain.SC6", func(b map[string][]byte) {
		plantSpawn(b["core"], 0, 100, 50, 2, 1)
		plantSpawn(b["core"], 1, 0xFFFF, 0, 0, 0)
	})
	im := New(Options{})
	if _, err := im.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := world.New()
	if _, err := im.Import(w); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(w.PeepSpawns) != 1 {
		t.Fatalf("spawns = %d, want 1", len(w.PeepSpawns))
	}
	if got := w.PeepSpawns[0]; got.Y != 50 {
		t.Fatalf("spawn Y = %d, want 50 (no quirk should fire)", got.Y)
	}
}
