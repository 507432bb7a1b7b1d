package genfs

import (
	"fmt"

	"github.com/pi-pi3/genfs/fserr"
)

// Whence identifies the reference point of a seek target.
type Whence uint8

const (
	// WhenceStart measures the offset from the start of the stream.
	WhenceStart Whence = iota
	// WhenceEnd measures the offset from the size of the stream.
	WhenceEnd
	// WhenceCurrent measures the offset from the current position.
	WhenceCurrent
)

// String returns a string representation of the Whence.
func (w Whence) String() string {
	switch w {
	case WhenceStart:
		return "start"
	case WhenceEnd:
		return "end"
	case WhenceCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// SeekFrom describes a seek target consumed by File.Seek.
//
// SeekFrom is a closed, comparable value with exactly three forms, built
// with Start, End, or Current. Separating the target from the operation
// lets every backend interpret one canonical seek semantics; rejection of
// positions below zero is delegated to Seek (or to Resolve).
type SeekFrom struct {
	whence Whence
	start  uint64 // offset when whence == WhenceStart
	offset int64  // offset when whence == WhenceEnd or WhenceCurrent
}

// Start returns a seek target at the provided number of bytes from the
// start of the stream.
func Start(offset uint64) SeekFrom {
	return SeekFrom{whence: WhenceStart, start: offset}
}

// End returns a seek target at the size of the stream plus the specified
// number of bytes.
//
// It is possible to seek beyond the end of a stream, but it is an error to
// seek before byte 0.
func End(offset int64) SeekFrom {
	return SeekFrom{whence: WhenceEnd, offset: offset}
}

// Current returns a seek target at the current position plus the specified
// number of bytes.
//
// It is possible to seek beyond the end of a stream, but it is an error to
// seek before byte 0.
func Current(offset int64) SeekFrom {
	return SeekFrom{whence: WhenceCurrent, offset: offset}
}

// Whence returns the reference point of the target.
func (s SeekFrom) Whence() Whence {
	return s.whence
}

// Offset returns the relative offset of an End or Current target.
// For a Start target it returns 0; use StartOffset instead.
func (s SeekFrom) Offset() int64 {
	return s.offset
}

// StartOffset returns the absolute offset of a Start target.
// For End and Current targets it returns 0; use Offset instead.
func (s SeekFrom) StartOffset() uint64 {
	return s.start
}

// String returns a string representation of the target.
func (s SeekFrom) String() string {
	if s.whence == WhenceStart {
		return fmt.Sprintf("%s%+d", s.whence, s.start)
	}
	return fmt.Sprintf("%s%+d", s.whence, s.offset)
}

// Resolve computes the absolute position this target describes, given the
// current position and the stream size in bytes.
//
// Backends share this arithmetic so that every implementation agrees on the
// two error cases the contract fixes: a resulting position below zero and a
// resulting position that overflows uint64. Both fail with an
// InvalidInput-class error and Resolve never returns a negative position.
// Positions beyond the end of the stream are legal; their meaning is
// backend-defined.
func (s SeekFrom) Resolve(current, size uint64) (uint64, error) {
	var base uint64
	switch s.whence {
	case WhenceStart:
		return s.start, nil
	case WhenceEnd:
		base = size
	case WhenceCurrent:
		base = current
	default:
		return 0, fserr.Newf(fserr.KindInvalidInput, "invalid seek whence %d", uint8(s.whence))
	}

	if s.offset >= 0 {
		pos := base + uint64(s.offset)
		if pos < base {
			return 0, fserr.Newf(fserr.KindInvalidInput, "seek from %s by %d overflows", s.whence, s.offset)
		}
		return pos, nil
	}

	// Negate without overflowing on the smallest int64.
	magnitude := uint64(-(s.offset + 1)) + 1
	if magnitude > base {
		return 0, fserr.Newf(fserr.KindInvalidInput, "seek from %s by %d is before the start of the stream", s.whence, s.offset)
	}
	return base - magnitude, nil
}
