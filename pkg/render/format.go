// Package render turns parsed entries into the aligned text blocks or the
// table that incidr prints.
package render

import (
	"fmt"
	"strings"

	"github.com/jpts/incidr/pkg/ipv4"
)

// Format is one representation of a 32-bit value. Formats always render in
// declaration order.
type Format int

const (
	Quad Format = iota
	Binary
	Hex
	Decimal
	numFormats
)

const fieldSep = " <=> "

var formatNames = [numFormats]string{"quad", "binary", "hexadecimal", "decimal"}

func (f Format) String() string {
	if f < 0 || f >= numFormats {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts the long names used by the flags.
func ParseFormat(s string) (Format, error) {
	for f := Quad; f < numFormats; f++ {
		if strings.EqualFold(s, formatNames[f]) {
			return f, nil
		}
	}
	if strings.EqualFold(s, "hex") {
		return Hex, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// Format renders v in this representation.
func (f Format) Format(v uint32) string {
	o := ipv4.Octets(v)
	switch f {
	case Quad:
		return fmt.Sprintf("%3d.%3d.%3d.%3d", o[0], o[1], o[2], o[3])
	case Binary:
		return fmt.Sprintf("%08b %08b %08b %08b", o[0], o[1], o[2], o[3])
	case Hex:
		return fmt.Sprintf("%08x", v)
	case Decimal:
		return fmt.Sprintf("%010d", v)
	}
	return ""
}

// Formats is the set of representations to display.
type Formats uint8

// AllFormats is used when nothing was selected.
const AllFormats = Formats(1<<numFormats - 1)

func NewFormats(fs ...Format) Formats {
	var set Formats
	for _, f := range fs {
		set = set.With(f)
	}
	return set
}

func (s Formats) With(f Format) Formats { return s | 1<<f }

func (s Formats) Has(f Format) bool { return s&(1<<f) != 0 }

// Active lists the selected formats in display order; an empty set means all.
func (s Formats) Active() []Format {
	if s == 0 {
		s = AllFormats
	}
	var out []Format
	for f := Quad; f < numFormats; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Fields renders v once per active format, joined with the column separator.
func (s Formats) Fields(v uint32) string {
	active := s.Active()
	parts := make([]string, 0, len(active))
	for _, f := range active {
		parts = append(parts, f.Format(v))
	}
	return strings.Join(parts, fieldSep)
}
