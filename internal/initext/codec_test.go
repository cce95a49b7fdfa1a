package initext

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf16le(s string, bom bool) []byte {
	var buf bytes.Buffer
	if bom {
		buf.Write([]byte{0xFF, 0xFE})
	}
	for _, u := range utf16.Encode([]rune(s)) {
		binary.Write(&buf, binary.LittleEndian, u)
	}
	return buf.Bytes()
}

func TestDecodePlainUTF8(t *testing.T) {
	out, err := Decode(bytes.NewReader([]byte("[App *]\nDefault=False\n")))
	require.NoError(t, err)
	assert.Equal(t, "[App *]\nDefault=False\n", string(out))
}

func TestDecodeUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[App *]")...)
	out, err := Decode(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "[App *]", string(out))
}

func TestDecodeUTF16LE(t *testing.T) {
	out, err := Decode(bytes.NewReader(utf16le("[Café *]\r\n", true)))
	require.NoError(t, err)
	assert.Equal(t, "[Café *]\r\n", string(out))
}

func TestDecodeWindows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as a bare UTF-8 byte.
	in := []byte{'[', 'C', 'a', 'f', 0xE9, ']'}
	out, err := Decode(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "[Café]", string(out))
}
