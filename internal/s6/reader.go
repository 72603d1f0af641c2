package s6

import (
	"encoding/binary"
	"fmt"

	"parklegacy.dev/internal/sawyer"
)

// reader walks a fully-decoded chunk buffer. Reads past the end set a
// sticky overrun flag instead of failing per call; callers check err() once
// per section. All multi-byte fields are little-endian.
type reader struct {
	b       []byte
	off     int
	overrun bool
}

func newReader(b []byte) *reader { return &reader{b: b} }

func (r *reader) take(n int) []byte {
	if r.off+n > len(r.b) {
		r.overrun = true
		return make([]byte, n)
	}
	v := r.b[r.off : r.off+n]
	r.off += n
	return v
}

func (r *reader) u8() uint8   { return r.take(1)[0] }
func (r *reader) i8() int8    { return int8(r.u8()) }
func (r *reader) u16() uint16 { return binary.LittleEndian.Uint16(r.take(2)) }
func (r *reader) u32() uint32 { return binary.LittleEndian.Uint32(r.take(4)) }
func (r *reader) i16() int16  { return int16(r.u16()) }
func (r *reader) i32() int32  { return int32(r.u32()) }

func (r *reader) bytes(dst []byte) { copy(dst, r.take(len(dst))) }

func (r *reader) skip(n int) {
	if n < 0 || r.off+n > len(r.b) {
		r.overrun = true
		return
	}
	r.off += n
}

// padTo skips forward to an absolute offset, consuming a reserved region.
func (r *reader) padTo(off int) { r.skip(off - r.off) }

func (r *reader) remaining() int { return len(r.b) - r.off }

func (r *reader) err(section string) error {
	if r.overrun {
		return fmt.Errorf("%w: %s section overruns its table", sawyer.ErrFormat, section)
	}
	return nil
}
