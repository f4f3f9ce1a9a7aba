package filter

const (
	// AllMonths is the month value that means "no month filter"
	AllMonths = 99
	// AllDays is the day value that means "no day filter"
	AllDays = 99

	firstMonth    = 1
	lastMonth     = 6
	firstDay      = 0
	lastWeekday   = 5 // Saturday
	lastDayOfWeek = 6 // Sunday
)

// Selection struct that contains the filters chosen by the user
// + CityFile: name of the city file to load
// + Month: month to filter by (1-6), or AllMonths
// + Day: day of week to filter by (0=Monday..6=Sunday), or AllDays
type Selection struct {
	CityFile string
	Month    int
	Day      int
}

func NewSelection(cityFile string, month int, day int) Selection {
	return Selection{
		CityFile: cityFile,
		Month:    month,
		Day:      day,
	}
}

// Unfiltered returns a Selection for cityFile without month and day filters
func Unfiltered(cityFile string) Selection {
	return NewSelection(cityFile, AllMonths, AllDays)
}

// HasMonthFilter returns true if Month is one of the months with data (January to June)
func (s Selection) HasMonthFilter() bool {
	return firstMonth <= s.Month && s.Month <= lastMonth
}

// HasDayFilter returns true if Day selects a single day of week.
// Sunday is only matched when includeSunday is set, otherwise selecting
// Sunday behaves like AllDays.
func (s Selection) HasDayFilter(includeSunday bool) bool {
	upper := lastWeekday
	if includeSunday {
		upper = lastDayOfWeek
	}
	return firstDay <= s.Day && s.Day <= upper
}
