package reporter

import (
	"io"
	"math"
	"time"

	"github.com/go-gota/gota/series"

	"bikeshare/dataset"
)

type UserStatsReporter struct{}

func NewUserStatsReporter() *UserStatsReporter {
	return &UserStatsReporter{}
}

func (r *UserStatsReporter) GetType() string {
	return UserStatsType
}

// Report displays statistics on bikeshare users
func (r *UserStatsReporter) Report(ds *dataset.Dataset, w io.Writer) error {
	startTime := time.Now()
	p := newPrinter(w)

	p.println("Calculating User Stats...")
	p.println("\nWhat are the counts of user types and gender?")

	userTypes := countValues(ds.Frame.Col(ds.Columns.UserType))
	if userTypes.Len() == 0 {
		p.noData("user type")
	} else {
		p.println("Counts of user types:")
		p.counts(userTypes)
	}

	genders := countValues(ds.Frame.Col(ds.Columns.Gender))
	if genders.Len() == 0 {
		p.noData("gender")
	} else {
		p.println("\nCounts of gender:")
		p.counts(genders)
	}

	p.println("\nWhat are the oldest, youngest, most common and median year of birth?")

	birthYears := ds.Frame.Col(ds.Columns.BirthYear)
	knownBirthYears := nonMissingFloats(birthYears)
	mostCommon, ok := intModeOf(birthYears)
	if len(knownBirthYears) == 0 || !ok {
		p.noData("birth year")
		return p.finish(r.GetType(), startTime)
	}

	years := series.Floats(knownBirthYears)
	p.printf("\nOldest: %d Youngest: %d Most Common: %d Median: %d\n",
		int(years.Min()),
		int(years.Max()),
		mostCommon,
		int(years.Median()), // the median of an even amount of years is truncated
	)

	return p.finish(r.GetType(), startTime)
}

func nonMissingFloats(column series.Series) []float64 {
	var values []float64
	for _, value := range column.Float() {
		if !math.IsNaN(value) {
			values = append(values, value)
		}
	}
	return values
}
