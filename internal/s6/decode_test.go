package s6

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func rawChunk(body []byte) []byte {
	out := make([]byte, 5+len(body))
	out[0] = 0 // no encoding
	binary.LittleEndian.PutUint32(out[1:5], uint32(len(body)))
	copy(out[5:], body)
	return out
}

var scenarioChunkOrder = []string{
	"header", "info", "objects", "gametime", "tiles",
	"core", "guests", "staff", "rating", "research", "finance", "value", "mgmt",
}

// buildScenario assembles a minimal all-zero scenario stream, letting the
// caller plant bytes into individual chunk bodies before encoding.
func buildScenario(t *testing.T, plant func(bodies map[string][]byte)) []byte {
	t.Helper()
	bodies := map[string][]byte{
		"header":   make([]byte, HeaderChunkSize),
		"info":     make([]byte, InfoChunkSize),
		"objects":  make([]byte, ObjectsChunkSize),
		"gametime": make([]byte, GameTimeChunkSize),
		"tiles":    make([]byte, TileElementsChunkSize),
		"core":     make([]byte, CoreChunkSize),
		"guests":   make([]byte, GuestCountsChunkSize),
		"staff":    make([]byte, StaffColoursChunkSize),
		"rating":   make([]byte, ParkRatingChunkSize),
		"research": make([]byte, ResearchStatusChunkSize),
		"finance":  make([]byte, FinanceChunkSize),
		"value":    make([]byte, ParkValueChunkSize),
		"mgmt":     make([]byte, ParkManagementChunkSize),
	}
	bodies["header"][0] = TypeScenario
	if plant != nil {
		plant(bodies)
	}
	var buf bytes.Buffer
	for _, name := range scenarioChunkOrder {
		buf.Write(rawChunk(bodies[name]))
	}
	return buf.Bytes()
}

func TestDecodeScenarioPlantedFields(t *testing.T) {
	stream := buildScenario(t, func(b map[string][]byte) {
		binary.LittleEndian.PutUint16(b["gametime"][0:], 37) // elapsed months
		binary.LittleEndian.PutUint32(b["core"][0:], 260)    // next free tile element
		binary.LittleEndian.PutUint16(b["guests"][0:], 1234)
		binary.LittleEndian.PutUint16(b["rating"][0:], 999)
		binary.LittleEndian.PutUint32(b["value"][0:], 0xFFFFFFB3) // -77
		binary.LittleEndian.PutUint32(b["mgmt"][0:], 5000)        // completed company value
	})

	d, err := Decode(bytes.NewReader(stream), true, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.ElapsedMonths != 37 {
		t.Fatalf("ElapsedMonths = %d, want 37", d.ElapsedMonths)
	}
	if d.NextFreeTileElementPointerIndex != 260 {
		t.Fatalf("NextFreeTileElementPointerIndex = %d, want 260", d.NextFreeTileElementPointerIndex)
	}
	if d.GuestsInPark != 1234 {
		t.Fatalf("GuestsInPark = %d, want 1234", d.GuestsInPark)
	}
	if d.ParkRating != 999 {
		t.Fatalf("ParkRating = %d, want 999", d.ParkRating)
	}
	if d.ParkValue != -77 {
		t.Fatalf("ParkValue = %d, want -77", d.ParkValue)
	}
	if d.CompletedCompanyValue != 5000 {
		t.Fatalf("CompletedCompanyValue = %d, want 5000", d.CompletedCompanyValue)
	}
}

func TestDecodeSavedGamePlantedFields(t *testing.T) {
	header := make([]byte, HeaderChunkSize)
	header[0] = TypeSavedGame
	objects := make([]byte, ObjectsChunkSize)
	gameTime := make([]byte, GameTimeChunkSize)
	tiles := make([]byte, TileElementsChunkSize)
	state := make([]byte, SavedGameStateChunkSize)

	// SV6-only sections follow the core block inside the single state chunk.
	binary.LittleEndian.PutUint32(state[CoreChunkSize:], 0xDEADBEEF) // ride type bitset word 0
	expOff := CoreChunkSize + inventionsSectionSize + GuestCountsChunkSize
	binary.LittleEndian.PutUint32(state[expOff:], 0xFFFFFFFF) // expenditure[0][0] = -1

	var buf bytes.Buffer
	buf.Write(rawChunk(header))
	buf.Write(rawChunk(objects))
	buf.Write(rawChunk(gameTime))
	buf.Write(rawChunk(tiles))
	buf.Write(rawChunk(state))

	d, err := Decode(bytes.NewReader(buf.Bytes()), false, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.ResearchedRideTypes[0] != 0xDEADBEEF {
		t.Fatalf("ResearchedRideTypes[0] = %#x, want 0xdeadbeef", d.ResearchedRideTypes[0])
	}
	if d.ExpenditureTable[0][0] != -1 {
		t.Fatalf("ExpenditureTable[0][0] = %d, want -1", d.ExpenditureTable[0][0])
	}
}

func TestDecodeWrongContainerKind(t *testing.T) {
	stream := buildScenario(t, func(b map[string][]byte) {
		b["header"][0] = TypeSavedGame
	})
	_, err := Decode(bytes.NewReader(stream), true, nil)
	if !errors.Is(err, ErrWrongContainerKind) {
		t.Fatalf("err = %v, want ErrWrongContainerKind", err)
	}
}

func TestDecodeRejectsCorruptedProducerFlag(t *testing.T) {
	stream := buildScenario(t, func(b map[string][]byte) {
		b["header"][1] = ClassicFlagCorrupted
	})
	_, err := Decode(bytes.NewReader(stream), true, nil)
	var flagErr *UnsupportedFlagError
	if !errors.As(err, &flagErr) {
		t.Fatalf("err = %v, want UnsupportedFlagError", err)
	}
	if flagErr.Flag != ClassicFlagCorrupted {
		t.Fatalf("Flag = %#x, want %#x", flagErr.Flag, ClassicFlagCorrupted)
	}
}

type captureSink struct {
	entries []ObjectEntry
	blobs   [][]byte
}

func (s *captureSink) ExportPackedObject(entry ObjectEntry, data []byte) error {
	s.entries = append(s.entries, entry)
	s.blobs = append(s.blobs, data)
	return nil
}

func TestDecodePackedObjectsStreamToSink(t *testing.T) {
	stream := buildScenario(t, func(b map[string][]byte) {
		binary.LittleEndian.PutUint16(b["header"][2:], 1)
	})

	// The packed object sits between the info and object-list chunks: a raw
	// 16-byte entry followed by one data chunk.
	var entry [ObjectEntrySize]byte
	binary.LittleEndian.PutUint32(entry[0:], 0x00000081)
	copy(entry[4:12], "WOODRC1 ")
	blob := rawChunk([]byte{0xAA, 0xBB, 0xCC})

	headerEnd := 5 + HeaderChunkSize + 5 + InfoChunkSize
	var buf bytes.Buffer
	buf.Write(stream[:headerEnd])
	buf.Write(entry[:])
	buf.Write(blob)
	buf.Write(stream[headerEnd:])

	sink := &captureSink{}
	if _, err := Decode(bytes.NewReader(buf.Bytes()), true, sink); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("exported %d objects, want 1", len(sink.entries))
	}
	if got := sink.entries[0].Identifier(); got != "WOODRC1" {
		t.Fatalf("Identifier = %q, want WOODRC1", got)
	}
	if !bytes.Equal(sink.blobs[0], []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("blob = %x", sink.blobs[0])
	}
}

func TestDecodeRideRecordStride(t *testing.T) {
	buf := make([]byte, 2*RideRecordSize)
	buf[0] = 12 // first ride type
	buf[4] = 3  // first ride mode
	buf[RideRecordSize] = 34
	r := newReader(buf)
	var first, second Ride
	if err := decodeRide(r, &first); err != nil {
		t.Fatalf("decodeRide: %v", err)
	}
	if err := decodeRide(r, &second); err != nil {
		t.Fatalf("decodeRide: %v", err)
	}
	if first.Type != 12 || first.Mode != 3 {
		t.Fatalf("first = {Type:%d Mode:%d}, want {12 3}", first.Type, first.Mode)
	}
	if second.Type != 34 {
		t.Fatalf("second.Type = %d, want 34", second.Type)
	}
	if r.remaining() != 0 {
		t.Fatalf("remaining = %d after two records", r.remaining())
	}
}

func TestReaderOverrunIsSticky(t *testing.T) {
	r := newReader([]byte{1, 2})
	_ = r.u32()
	if err := r.err("test"); err == nil {
		t.Fatal("expected overrun error")
	}
	_ = r.u8()
	if err := r.err("test"); err == nil {
		t.Fatal("overrun flag must stay set")
	}
}
