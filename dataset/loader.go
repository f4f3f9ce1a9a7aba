package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	loaderType      = "dataset-loader"
	startTimeLayout = "2006-01-02 15:04:05"
	csvExtension    = ".csv"
	xlsxExtension   = ".xlsx"
	missingValue    = "NaN"
)

// nanValues are the cells that are loaded as missing values
var nanValues = []string{"", "NA", "NaN", "<nil>"}

// LoaderConfig contains the parameters of the Loader
// + DataDir: directory with the city files
// + Columns: names of the columns of the city files
// + Stations: city file -> station coordinates file. Cities without entry have no coordinates
// + DayFilterIncludesSunday: if false a Sunday day filter keeps every row
type LoaderConfig struct {
	DataDir                 string
	Columns                 Columns
	Stations                map[string]string
	DayFilterIncludesSunday bool
}

type Loader struct {
	config LoaderConfig
}

func NewLoader(loaderConfig LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// LoadData loads the city file of the selection and filters it by month and day if applicable.
// The flow of this function is:
// 1. Read the city file
// 2. Add gender and birth year columns if the city doesn't have them
// 3. Coerce birth year to a nullable integer
// 4. Derive month, day of week and hour from the start time
// 5. Apply month and day filters
func (l *Loader) LoadData(selection filter.Selection) (*Dataset, error) {
	startTime := time.Now()
	cityPath := l.getCityPath(selection.CityFile)

	df, err := l.readSource(cityPath)
	if err != nil {
		log.Error(l.getLogMessage("LoadData", fmt.Sprintf("error reading %s", cityPath), err))
		return nil, err
	}

	missing := utils.MissingStrings(l.config.Columns.required(), df.Names())
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingColumn, cityPath, strings.Join(missing, ", "))
	}

	df = l.normalizeDemographics(df)
	df = l.coerceBirthYear(df)
	if df.Err != nil {
		return nil, fmt.Errorf("error normalizing %s: %w", cityPath, df.Err)
	}

	df, err = l.deriveTimeColumns(df)
	if err != nil {
		log.Error(l.getLogMessage("LoadData", "error deriving time columns", err))
		return nil, err
	}

	df = l.applyFilters(df, selection)
	if df.Err != nil {
		return nil, fmt.Errorf("error building dataset from %s: %w", cityPath, df.Err)
	}

	stations, err := l.loadStations(selection.CityFile)
	if err != nil {
		return nil, err
	}

	log.Debug(l.getLogMessage("LoadData", fmt.Sprintf("%d rows loaded from %s in %s", df.Nrow(), cityPath, time.Since(startTime)), nil))

	return &Dataset{
		Frame:     df,
		Columns:   l.config.Columns,
		Selection: selection,
		Stations:  stations,
	}, nil
}

func (l *Loader) getCityPath(cityFile string) string {
	return filepath.Join(l.config.DataDir, cityFile)
}

// readSource reads a .csv or .xlsx city file into a DataFrame
func (l *Loader) readSource(cityPath string) (dataframe.DataFrame, error) {
	var df dataframe.DataFrame

	switch strings.ToLower(filepath.Ext(cityPath)) {
	case csvExtension:
		file, err := os.Open(cityPath)
		if err != nil {
			return df, fmt.Errorf("%w: %w", ErrReadingSource, err)
		}
		defer file.Close()
		df = dataframe.ReadCSV(file, l.loadOptions()...)
	case xlsxExtension:
		records, err := readXLSX(cityPath)
		if err != nil {
			return df, err
		}
		df = dataframe.LoadRecords(records, l.loadOptions()...)
	default:
		return df, fmt.Errorf("%w: %s", ErrUnsupportedFormat, cityPath)
	}

	if df.Err != nil {
		return df, fmt.Errorf("%w: %s: %w", ErrReadingSource, cityPath, df.Err)
	}
	return df, nil
}

func (l *Loader) loadOptions() []dataframe.LoadOption {
	columns := l.config.Columns
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
		dataframe.WithTypes(map[string]series.Type{
			columns.StartTime:    series.String,
			columns.StartStation: series.String,
			columns.EndStation:   series.String,
			columns.TripDuration: series.Float,
			columns.UserType:     series.String,
			columns.Gender:       series.String,
			columns.BirthYear:    series.Float,
		}),
	}
}

// normalizeDemographics adds gender and birth year as missing-valued columns when
// the city file lacks either of them. Both are replaced so they are equally unusable.
func (l *Loader) normalizeDemographics(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	if utils.ContainsString(l.config.Columns.Gender, names) && utils.ContainsString(l.config.Columns.BirthYear, names) {
		return df
	}

	log.Debug(l.getLogMessage("normalizeDemographics", "gender or birth year not found, adding empty columns", nil))
	nrows := df.Nrow()
	return df.
		Mutate(missingSeries(series.String, l.config.Columns.Gender, nrows)).
		Mutate(missingSeries(series.Float, l.config.Columns.BirthYear, nrows))
}

// coerceBirthYear converts birth year to an integer column keeping missing values
func (l *Loader) coerceBirthYear(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Err != nil {
		return df
	}

	birthYears := df.Col(l.config.Columns.BirthYear)
	values := make([]string, birthYears.Len())
	for idx := range values {
		element := birthYears.Elem(idx)
		if element.IsNA() {
			values[idx] = missingValue
			continue
		}
		values[idx] = strconv.Itoa(int(element.Float()))
	}

	return df.Mutate(series.New(values, series.Int, l.config.Columns.BirthYear))
}

// deriveTimeColumns adds month (1-12), day of week (0=Monday..6=Sunday) and hour (0-23) columns
func (l *Loader) deriveTimeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	startTimes := df.Col(l.config.Columns.StartTime)
	nrows := startTimes.Len()

	months := make([]int, nrows)
	daysOfWeek := make([]int, nrows)
	hours := make([]int, nrows)
	for idx := 0; idx < nrows; idx++ {
		rawStartTime := startTimes.Elem(idx).String()
		startTime, err := time.Parse(startTimeLayout, rawStartTime)
		if err != nil {
			return df, fmt.Errorf("%w: row %d: %q", ErrInvalidStartTime, idx, rawStartTime)
		}
		months[idx] = int(startTime.Month())
		daysOfWeek[idx] = weekdayIndex(startTime.Weekday())
		hours[idx] = startTime.Hour()
	}

	df = df.
		Mutate(series.New(months, series.Int, MonthColumn)).
		Mutate(series.New(daysOfWeek, series.Int, DayOfWeekColumn)).
		Mutate(series.New(hours, series.Int, HourColumn))
	return df, df.Err
}

func (l *Loader) applyFilters(df dataframe.DataFrame, selection filter.Selection) dataframe.DataFrame {
	if selection.HasMonthFilter() {
		df = df.Filter(dataframe.F{Colname: MonthColumn, Comparator: series.Eq, Comparando: selection.Month})
	}

	if selection.HasDayFilter(l.config.DayFilterIncludesSunday) {
		df = df.Filter(dataframe.F{Colname: DayOfWeekColumn, Comparator: series.Eq, Comparando: selection.Day})
	}

	return df
}

// weekdayIndex returns the day of week counting from Monday=0
func weekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

func missingSeries(seriesType series.Type, name string, length int) series.Series {
	values := make([]string, length)
	for idx := range values {
		values[idx] = missingValue
	}
	return series.New(values, seriesType, name)
}
