package sawyer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ValidateChecksum computes the additive checksum over every byte of the
// stream except the trailing 4-byte checksum itself and compares it to the
// trailer. The read position is restored afterwards so chunk reading can
// start from where the caller left off.
//
// Legacy saved-game producers did not reliably stamp this value, so callers
// only invoke this for scenario containers.
func ValidateChecksum(rs io.ReadSeeker) (bool, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return false, err
	}
	if size-start < 4 {
		return false, fmt.Errorf("%w: stream too small for checksum trailer", ErrFormat)
	}
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return false, err
	}

	var sum uint32
	remaining := size - start - 4
	buf := make([]byte, 64*1024)
	for remaining > 0 {
		n := int64(len(buf))
		if n > remaining {
			n = remaining
		}
		if _, err := io.ReadFull(rs, buf[:n]); err != nil {
			return false, err
		}
		for _, b := range buf[:n] {
			sum += uint32(b)
		}
		remaining -= n
	}

	var trailer [4]byte
	if _, err := io.ReadFull(rs, trailer[:]); err != nil {
		return false, err
	}
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return false, err
	}
	return sum == binary.LittleEndian.Uint32(trailer[:]), nil
}
