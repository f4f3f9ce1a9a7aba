package reporter

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequency"
	"bikeshare/utils"
)

const noDataMessage = "\nThere is no data for %s in this DataFrame/Filter\n"

// printer writes the report and keeps the first write error
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Write(data []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(data)
	p.err = err
	return n, err
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p, format, args...)
}

func (p *printer) println(args ...interface{}) {
	fmt.Fprintln(p, args...)
}

func (p *printer) noData(subject string) {
	p.printf(noDataMessage, subject)
}

// counts prints one line per counted value, sorted by value
func (p *printer) counts(frequencies *frequency.Frequencies) {
	tw := tabwriter.NewWriter(p, 0, 0, 4, ' ', 0)
	for _, counter := range frequencies.Sorted() {
		fmt.Fprintf(tw, "%s\t%d\n", counter.Value, counter.GetCounter())
	}
	_ = tw.Flush()
}

// finish prints the section separator and logs the time taken by reporterType
func (p *printer) finish(reporterType string, startTime time.Time) error {
	p.println(utils.Separator)
	log.Debugf("[reporter: %s][status: OK] report took %s", reporterType, time.Since(startTime))
	return p.err
}

// countValues counts the non-missing values of column
func countValues(column series.Series) *frequency.Frequencies {
	return frequency.Count(column.Records(), column.IsNaN())
}

// modeOf returns the most frequent non-missing value of column
func modeOf(column series.Series) (string, bool) {
	return countValues(column).Mode()
}

func intModeOf(column series.Series) (int, bool) {
	mode, ok := modeOf(column)
	if !ok {
		return 0, false
	}

	value, err := strconv.Atoi(mode)
	if err != nil {
		return 0, false
	}
	return value, true
}

// weekdayName returns the name of a day of week counted from Monday=0
func weekdayName(dayOfWeek int) string {
	return time.Weekday((dayOfWeek + 1) % 7).String()
}
