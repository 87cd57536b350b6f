package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jpts/incidr/pkg/ipv4"
)

var tableHeaders = [numFormats]string{"Quad", "Binary", "Hex", "Decimal"}

// Table renders all entries as a single table, one line per value.
func Table(w io.Writer, entries []ipv4.Entry, fs Formats) {
	active := fs.Active()

	header := []string{"Input", "Row"}
	for _, f := range active {
		header = append(header, tableHeaders[f])
	}

	var output [][]string
	for _, e := range entries {
		output = append(output, tableLine(e.Token.Text, "addr", e.Token.Value, active))
		for _, m := range e.Masks {
			output = append(output,
				tableLine(e.Token.Text, fmt.Sprintf("mask /%d", m.PrefixLen), m.Netmask, active),
				tableLine(e.Token.Text, fmt.Sprintf("network /%d", m.PrefixLen), m.Network, active),
			)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	table.AppendBulk(output)
	table.Render()
}

func tableLine(input, row string, v uint32, active []Format) []string {
	line := []string{input, row}
	for _, f := range active {
		line = append(line, f.Format(v))
	}
	return line
}
