package objects

import (
	"bytes"
	"path/filepath"
	"testing"

	"parklegacy.dev/internal/s6"
)

func entry(name string) s6.ObjectEntry {
	var e s6.ObjectEntry
	copy(e.Name[:], name)
	e.Flags = 0x81
	e.Checksum = 42
	return e
}

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "objects.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestRecordAndMissing(t *testing.T) {
	ix := openTestIndex(t)

	known := entry("TWIST1  ")

	// A fresh index holds nothing; resolution must run against the state
	// before the file's own entries are recorded, or it can never fail.
	missing, err := ix.Missing([]s6.ObjectEntry{known})
	if err != nil {
		t.Fatalf("Missing: %v", err)
	}
	if len(missing) != 1 {
		t.Fatalf("missing on empty index = %v, want the entry back", missing)
	}

	if err := ix.Record("park.SC6", []s6.ObjectEntry{known}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	ok, err := ix.Has("TWIST1")
	if err != nil || !ok {
		t.Fatalf("Has = %v, %v; want true", ok, err)
	}

	missing, err = ix.Missing([]s6.ObjectEntry{known, entry("WOODRC1 ")})
	if err != nil {
		t.Fatalf("Missing: %v", err)
	}
	if len(missing) != 1 || missing[0].Identifier() != "WOODRC1" {
		t.Fatalf("missing = %v", missing)
	}
}

func TestPackedObjectRoundTrip(t *testing.T) {
	ix := openTestIndex(t)

	blob := []byte{0xAA, 0xBB, 0xCC}
	if err := ix.ExportPackedObject(entry("WOODRC1 "), blob); err != nil {
		t.Fatalf("ExportPackedObject: %v", err)
	}

	got, err := ix.PackedObject("WOODRC1")
	if err != nil {
		t.Fatalf("PackedObject: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("blob = %x, want %x", got, blob)
	}

	// Packed blobs count as known objects.
	ok, err := ix.Has("WOODRC1")
	if err != nil || !ok {
		t.Fatalf("Has = %v, %v; want true", ok, err)
	}
}

func TestPackedObjectUpsertKeepsNewest(t *testing.T) {
	ix := openTestIndex(t)
	e := entry("WOODRC1 ")
	if err := ix.ExportPackedObject(e, []byte{1}); err != nil {
		t.Fatal(err)
	}
	if err := ix.ExportPackedObject(e, []byte{2, 3}); err != nil {
		t.Fatal(err)
	}
	got, err := ix.PackedObject("WOODRC1")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 3}) {
		t.Fatalf("blob = %x, want newest copy", got)
	}
}
