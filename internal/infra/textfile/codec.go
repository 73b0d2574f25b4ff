package textfile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aalvaropc/envlines/internal/domain"
)

const bom = "\ufeff"

// Codec decodes raw file bytes into text for one named encoding.
type Codec struct {
	Name string
	enc  encoding.Encoding
}

// Lookup resolves an encoding label ("utf-8", "latin1", "utf-16le", ...)
// using the WHATWG label registry.
func Lookup(label string) (Codec, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		l = domain.DefaultEncoding
	}

	enc, err := htmlindex.Get(l)
	if err != nil {
		return Codec{}, fmt.Errorf("unknown encoding %q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = l
	}

	return Codec{Name: name, enc: enc}, nil
}

// Decode converts b to text. UTF-8 input is validated strictly instead of
// having bad sequences replaced. A leading byte order mark is dropped.
func (c Codec) Decode(b []byte) (string, error) {
	if c.Name == "utf-8" {
		if off := invalidUTF8Offset(b); off >= 0 {
			return "", fmt.Errorf("%w: invalid utf-8 sequence at byte %d", domain.ErrDecoding, off)
		}
		// UTF8BOM drops exactly one leading mark.
		return c.decodeWith(unicode.UTF8BOM, b)
	}

	text, err := c.decodeWith(c.enc, b)
	if err != nil {
		return "", err
	}
	// The registry's UTF-16 decoders ignore the mark and pass it through.
	return strings.TrimPrefix(text, bom), nil
}

func (c Codec) decodeWith(enc encoding.Encoding, b []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrDecoding, c.Name, err)
	}
	return string(out), nil
}

func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
