package render

import (
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jpts/incidr/pkg/ipv4"
)

// Row markers. The raw value row uses blankMarker whenever any marker is
// shown in the block so every field column lines up.
const (
	blankMarker   = "   "
	maskMarker    = " & "
	networkMarker = " = "
	rangeMarker   = " ~ "
	reverseMarker = " @ "
)

type Options struct {
	Formats Formats
	Summary bool
	Reverse bool
}

// Text writes one header, underline and row block per entry, in order.
func Text(w io.Writer, entries []ipv4.Entry, opts Options) error {
	var b strings.Builder
	for _, e := range entries {
		if err := writeBlock(&b, e, opts); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, e ipv4.Entry, opts Options) error {
	header := e.Token.Text + " :"
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("=", len(e.Token.Text)) + "\n")

	marked := len(e.Masks) > 0 || opts.Reverse || opts.Summary
	line := func(marker, body string) {
		if marked {
			b.WriteString(marker)
		}
		b.WriteString(body + "\n")
	}

	line(blankMarker, opts.Formats.Fields(e.Token.Value))

	if opts.Reverse {
		name, err := ReverseName(e.Token.Value)
		if err != nil {
			return err
		}
		line(reverseMarker, name)
	}

	for _, m := range e.Masks {
		log.Debug().Msgf("%s: applying /%d", e.Token, m.PrefixLen)
		line(maskMarker, opts.Formats.Fields(m.Netmask))
		line(networkMarker, opts.Formats.Fields(m.Network))

		if opts.Summary {
			r, err := Summarize(m)
			if err != nil {
				return err
			}
			line(rangeMarker, r.String())
		}
	}

	b.WriteString("\n")
	return nil
}
