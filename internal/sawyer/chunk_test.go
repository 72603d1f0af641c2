package sawyer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func chunkBytes(encoding byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(encoding)
	var lenb [4]byte
	binary.LittleEndian.PutUint32(lenb[:], uint32(len(payload)))
	buf.Write(lenb[:])
	buf.Write(payload)
	return buf.Bytes()
}

func TestReadChunk_None(t *testing.T) {
	want := []byte{1, 2, 3, 4, 5}
	cr := NewChunkReader(bytes.NewReader(chunkBytes(EncodingNone, want)))
	got := make([]byte, len(want))
	if err := cr.ReadChunk(got); err != nil {
		t.Fatalf("ReadChunk: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestReadChunk_RLE(t *testing.T) {
	// Code 2 = three literals, code -4 (0xFC) = five repeats of the next byte.
	encoded := []byte{2, 'a', 'b', 'c', 0xFC, 'z'}
	want := []byte("abczzzzz")
	cr := NewChunkReader(bytes.NewReader(chunkBytes(EncodingRLE, encoded)))
	got := make([]byte, len(want))
	if err := cr.ReadChunk(got); err != nil {
		t.Fatalf("ReadChunk: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReadChunk_LengthMismatch(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader(chunkBytes(EncodingNone, []byte{1, 2, 3})))
	err := cr.ReadChunk(make([]byte, 4))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestReadChunk_Sequential(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(chunkBytes(EncodingNone, []byte{1, 2}))
	stream.Write(chunkBytes(EncodingNone, []byte{3, 4, 5}))
	cr := NewChunkReader(&stream)

	first := make([]byte, 2)
	if err := cr.ReadChunk(first); err != nil {
		t.Fatalf("first chunk: %v", err)
	}
	second := make([]byte, 3)
	if err := cr.ReadChunk(second); err != nil {
		t.Fatalf("second chunk: %v", err)
	}
	if !bytes.Equal(second, []byte{3, 4, 5}) {
		t.Fatalf("second chunk = %v", second)
	}
}

func TestDecodeRepeat(t *testing.T) {
	// Two literals then a copy of length 2 from offset -2 (code (30<<3)|1).
	src := []byte{0xFF, 'x', 0xFF, 'y', 30<<3 | 1}
	got, err := decodeRepeat(src)
	if err != nil {
		t.Fatalf("decodeRepeat: %v", err)
	}
	if string(got) != "xyxy" {
		t.Fatalf("got %q want %q", got, "xyxy")
	}
}

func TestDecodeRotate_RoundTrip(t *testing.T) {
	plain := []byte{0x12, 0x34, 0x56, 0x78, 0x9A}
	// Encode with the forward rotation, then make sure decode reverses it.
	encoded := make([]byte, len(plain))
	code := uint(1)
	for i, b := range plain {
		encoded[i] = b<<code | b>>(8-code)
		code = (code + 2) & 7
	}
	got := decodeRotate(encoded)
	if !bytes.Equal(got, plain) {
		t.Fatalf("got %v want %v", got, plain)
	}
}

func TestValidateChecksum(t *testing.T) {
	body := []byte{10, 20, 30, 40}
	var sum uint32
	for _, b := range body {
		sum += uint32(b)
	}
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], sum)

	ok, err := ValidateChecksum(bytes.NewReader(append(append([]byte{}, body...), trailer[:]...)))
	if err != nil {
		t.Fatalf("ValidateChecksum: %v", err)
	}
	if !ok {
		t.Fatal("expected checksum to validate")
	}

	corrupted := append(append([]byte{}, body...), trailer[:]...)
	corrupted[0]++
	ok, err = ValidateChecksum(bytes.NewReader(corrupted))
	if err != nil {
		t.Fatalf("ValidateChecksum: %v", err)
	}
	if ok {
		t.Fatal("expected corrupted stream to fail validation")
	}
}

func TestValidateChecksum_RestoresPosition(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], 1+2+3+4)
	copy(data[4:], trailer[:])

	r := bytes.NewReader(data)
	if _, err := ValidateChecksum(r); err != nil {
		t.Fatalf("ValidateChecksum: %v", err)
	}
	var b [1]byte
	if _, err := r.Read(b[:]); err != nil {
		t.Fatalf("read after validate: %v", err)
	}
	if b[0] != 1 {
		t.Fatalf("position not restored, read %d", b[0])
	}
}
