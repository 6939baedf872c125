package ltspice

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText wraps r with a UTF-16 decoder when the stream starts with a
// byte order mark. LTspice saves schematic and symbol files as UTF-16LE on
// recent versions and plain ASCII on older ones; both pass through here.
func DecodeText(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, err := br.Peek(2)
	if err != nil || len(bom) < 2 {
		return br
	}
	switch {
	case bom[0] == 0xFF && bom[1] == 0xFE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec)
	case bom[0] == 0xFE && bom[1] == 0xFF:
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec)
	}
	return br
}
