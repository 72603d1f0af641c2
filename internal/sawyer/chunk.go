// Package sawyer reads the Sawyer-coded chunk streams used by the legacy
// RCT2 save containers. A chunk is a 5-byte header (encoding byte plus a
// little-endian uint32 encoded length) followed by the encoded payload.
package sawyer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Chunk payload encodings, as stamped by the legacy producers.
const (
	EncodingNone      = 0
	EncodingRLE       = 1
	EncodingRLERepeat = 2
	EncodingRotate    = 3
)

// ErrFormat marks structurally invalid container data: a bad chunk header,
// a decoded payload whose size does not match the caller's expectation, or
// truncated encoded data.
var ErrFormat = errors.New("sawyer: invalid chunk data")

const chunkHeaderSize = 5

// Maximum sane decoded size for a single chunk. The largest table in the
// legacy layout is just over 3 MiB; anything bigger is a corrupt header.
const maxChunkSize = 16 * 1024 * 1024

// ChunkReader consumes a sequence of chunks from a byte stream. It is
// strictly sequential: every ReadChunk advances past exactly one chunk.
type ChunkReader struct {
	r io.Reader
}

func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{r: r}
}

// ReadChunk reads the next chunk, decodes it and copies it into dst. The
// decoded payload must be exactly len(dst) bytes, otherwise the chunk is
// rejected and the import cannot proceed.
func (cr *ChunkReader) ReadChunk(dst []byte) error {
	data, err := cr.next(len(dst))
	if err != nil {
		return err
	}
	if len(data) != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes, expected %d", ErrFormat, len(data), len(dst))
	}
	copy(dst, data)
	return nil
}

// ReadChunkAny reads and decodes the next chunk without a size expectation.
// Used for packed-asset blobs whose size is declared by the chunk itself.
func (cr *ChunkReader) ReadChunkAny() ([]byte, error) {
	return cr.next(0)
}

func (cr *ChunkReader) next(sizeHint int) ([]byte, error) {
	var hdr [chunkHeaderSize]byte
	if _, err := io.ReadFull(cr.r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: chunk header: %v", ErrFormat, err)
	}
	encoding := hdr[0]
	encodedLen := binary.LittleEndian.Uint32(hdr[1:])
	if encodedLen > maxChunkSize {
		return nil, fmt.Errorf("%w: encoded length %d out of range", ErrFormat, encodedLen)
	}
	encoded := make([]byte, encodedLen)
	if _, err := io.ReadFull(cr.r, encoded); err != nil {
		return nil, fmt.Errorf("%w: chunk body: %v", ErrFormat, err)
	}

	switch encoding {
	case EncodingNone:
		return encoded, nil
	case EncodingRLE:
		return decodeRLE(encoded, sizeHint)
	case EncodingRLERepeat:
		rle, err := decodeRLE(encoded, sizeHint)
		if err != nil {
			return nil, err
		}
		return decodeRepeat(rle)
	case EncodingRotate:
		return decodeRotate(encoded), nil
	default:
		return nil, fmt.Errorf("%w: unknown chunk encoding 0x%02x", ErrFormat, encoding)
	}
}

// decodeRLE expands the legacy run-length coding: a non-negative code byte n
// is followed by n+1 literal bytes; a negative code byte n is followed by one
// byte repeated 1-n times.
func decodeRLE(src []byte, sizeHint int) ([]byte, error) {
	out := make([]byte, 0, max(sizeHint, len(src)))
	for i := 0; i < len(src); {
		code := int8(src[i])
		i++
		if code >= 0 {
			n := int(code) + 1
			if i+n > len(src) {
				return nil, fmt.Errorf("%w: RLE literal run past end of chunk", ErrFormat)
			}
			out = append(out, src[i:i+n]...)
			i += n
		} else {
			if i >= len(src) {
				return nil, fmt.Errorf("%w: RLE repeat run past end of chunk", ErrFormat)
			}
			n := 1 - int(code)
			for j := 0; j < n; j++ {
				out = append(out, src[i])
			}
			i++
		}
		if len(out) > maxChunkSize {
			return nil, fmt.Errorf("%w: RLE output exceeds %d bytes", ErrFormat, maxChunkSize)
		}
	}
	return out, nil
}

// decodeRepeat expands the second-stage copy coding layered under RLE: 0xFF
// is followed by one literal byte; any other code copies (code&7)+1 bytes
// from offset (code>>3)-32 relative to the current output position.
func decodeRepeat(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)
	for i := 0; i < len(src); {
		code := src[i]
		i++
		if code == 0xFF {
			if i >= len(src) {
				return nil, fmt.Errorf("%w: repeat literal past end of chunk", ErrFormat)
			}
			out = append(out, src[i])
			i++
			continue
		}
		n := int(code&7) + 1
		off := len(out) + int(code>>3) - 32
		if off < 0 || off+n > len(out) {
			return nil, fmt.Errorf("%w: repeat copy offset out of range", ErrFormat)
		}
		for j := 0; j < n; j++ {
			out = append(out, out[off+j])
		}
	}
	return out, nil
}

// decodeRotate reverses the rolling bit rotation: byte k was rotated left by
// a code that starts at 1 and advances by 2 (mod 8) per byte.
func decodeRotate(src []byte) []byte {
	out := make([]byte, len(src))
	code := uint(1)
	for i, b := range src {
		out[i] = b>>code | b<<(8-code)
		code = (code + 2) & 7
	}
	return out
}
