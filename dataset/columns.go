package dataset

const (
	// Columns derived from the start time when the data is loaded
	MonthColumn     = "month"
	DayOfWeekColumn = "day_of_week"
	HourColumn      = "hour"
)

// Columns contains the name of each column to analyze in the city files
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	TripDuration string `yaml:"trip_duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// DefaultColumns returns the column names used by the bikeshare city files
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		TripDuration: "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// required returns the columns that every city file must have
func (c Columns) required() []string {
	return []string{c.StartTime, c.StartStation, c.EndStation, c.TripDuration, c.UserType}
}
