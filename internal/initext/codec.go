package initext

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte-order marks recognized on input.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode reads the whole input and returns it as UTF-8.
//
// Published winapp2.ini files appear in the wild as UTF-8 (with or
// without a BOM), UTF-16LE (Windows Notepad default for "Unicode"), and
// legacy Windows-1252. The encoding is sniffed from the BOM; BOM-less
// input that is not valid UTF-8 is decoded as Windows-1252.
func Decode(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		return buf[len(bomUTF8):], nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, buf)
		if err != nil {
			return nil, fmt.Errorf("decoding UTF-16LE ruleset: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, buf)
		if err != nil {
			return nil, fmt.Errorf("decoding UTF-16BE ruleset: %w", err)
		}
		return out, nil
	}

	if utf8.Valid(buf) {
		return buf, nil
	}

	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), buf)
	if err != nil {
		return nil, fmt.Errorf("decoding Windows-1252 ruleset: %w", err)
	}
	return out, nil
}
