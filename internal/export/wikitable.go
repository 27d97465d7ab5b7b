// Package export converts tabular query results into wiki table markup,
// handy for pasting a result grid into a wiki page.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FromCSV reads a table from CSV input. The first record is the header row;
// every data row must have the same number of fields (enforced by the CSV
// reader).
func FromCSV(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("empty input: need at least a header row")
	}
	return Table{Headers: records[0], Rows: records[1:]}, nil
}

// Wiki renders the table in wiki syntax: headers delimited by double pipes,
// data cells by single pipes.
//
//	||h1||h2||h3||
//	|d11|d12|d13|
func (t Table) Wiki() string {
	var b strings.Builder

	b.WriteString("||")
	for _, h := range t.Headers {
		b.WriteString(h)
		b.WriteString("||")
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteString(cell)
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	return b.String()
}
