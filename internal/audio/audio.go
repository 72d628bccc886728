// Package audio inspects WAV headers of submitted synthesis files.
package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ErrUnreadable marks files whose WAV header cannot be decoded. A zero
// sample rate or zero bit depth is treated as a decoding failure, never
// used as a divisor.
var ErrUnreadable = errors.New("cannot read audio file")

// ErrEmpty marks files with a valid header but zero audio frames.
var ErrEmpty = errors.New("audio file is empty")

// Check opens the file at path and verifies it is a readable, non-empty WAV.
// Duration is derived from the PCM frame count and the frame rate. The
// returned error wraps ErrUnreadable or ErrEmpty.
func Check(path string) error {
	f, err := os.Open(path) // #nosec G304 -- path is inside the submission under test
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnreadable, path)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if decoder.Err() != nil ||
		decoder.NumChans == 0 || decoder.SampleRate == 0 || decoder.BitDepth == 0 {
		return fmt.Errorf("%w: %s", ErrUnreadable, path)
	}

	if err := decoder.FwdToPCM(); err != nil {
		return fmt.Errorf("%w: %s", ErrUnreadable, path)
	}
	// sub-byte sample encodings (bit depth 1-7) cannot be frame-counted
	bytesPerFrame := int64(decoder.NumChans) * int64(decoder.BitDepth) / 8
	if bytesPerFrame <= 0 {
		return fmt.Errorf("%w: %s", ErrUnreadable, path)
	}
	if frames := decoder.PCMLen() / bytesPerFrame; frames <= 0 {
		return fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return nil
}
