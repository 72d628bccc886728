package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavData builds a minimal PCM16 mono 16kHz WAV with the given sample count.
func wavData(samples int) []byte {
	return wavDataDepth(samples*2, 16)
}

// wavDataDepth builds a mono 16kHz WAV header with an arbitrary bit depth
// over dataLen bytes of silence.
func wavDataDepth(dataLen int, bitDepth uint16) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))       // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))       // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16000))   // sample rate
	_ = binary.Write(&buf, binary.LittleEndian, uint32(32000))   // avg bytes per second
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))       // block align
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitDepth))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}

func writeWav(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestCheckValid(t *testing.T) {
	path := writeWav(t, wavData(1600))
	assert.NoError(t, Check(path))
}

func TestCheckEmpty(t *testing.T) {
	path := writeWav(t, wavData(0))
	err := Check(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Contains(t, err.Error(), path)
}

func TestCheckUnreadable(t *testing.T) {
	path := writeWav(t, []byte("this is not audio at all, not even close"))
	err := Check(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.Contains(t, err.Error(), path)
}

func TestCheckMissingFile(t *testing.T) {
	err := Check(filepath.Join(t.TempDir(), "gone.wav"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestCheckSubByteBitDepth(t *testing.T) {
	path := writeWav(t, wavDataDepth(64, 4))
	err := Check(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.Contains(t, err.Error(), path)
}

func TestCheckTruncatedHeader(t *testing.T) {
	path := writeWav(t, wavData(1600)[:20])
	assert.ErrorIs(t, Check(path), ErrUnreadable)
}
