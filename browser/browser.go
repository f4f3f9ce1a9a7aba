package browser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/dataset"
)

// PageSize is the amount of rows displayed at once
const PageSize = 5

const endOfData = "There are no more rows to display"

// Page contains the rows [Start, Start+PageSize) of a Dataset, as text.
// Missing values are shown as NaN.
type Page struct {
	Start  int
	Header []string
	Rows   [][]string
}

func (p Page) IsEmpty() bool {
	return len(p.Rows) == 0
}

// GetData returns the page of ds that begins at start. Pages past the end of
// the dataset are empty.
func GetData(ds *dataset.Dataset, start int) Page {
	page := Page{
		Start:  start,
		Header: ds.Frame.Names(),
	}

	end := min(start+PageSize, ds.Nrow())
	for rowIdx := max(start, 0); rowIdx < end; rowIdx++ {
		row := make([]string, len(page.Header))
		for colIdx := range page.Header {
			row[colIdx] = ds.Frame.Elem(rowIdx, colIdx).String()
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

// Print writes the page as a table, each row preceded by its position in the dataset
func (p Page) Print(w io.Writer) error {
	if p.IsEmpty() {
		_, err := fmt.Fprintln(w, endOfData)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(p.Header, "\t"))
	for idx, row := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(p.Start+idx), strings.Join(row, "\t"))
	}
	return tw.Flush()
}
