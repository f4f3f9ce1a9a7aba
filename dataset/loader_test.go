package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bikeshare/dataset/datasettest"
	"bikeshare/domain/entities/filter"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	return NewLoader(LoaderConfig{
		DataDir: datasettest.DataDir(t),
		Columns: DefaultColumns(),
		Stations: map[string]string{
			"chicago.csv": "chicago_stations.csv",
		},
	})
}

func intColumn(t *testing.T, ds *Dataset, name string) []int {
	t.Helper()
	values, err := ds.Frame.Col(name).Int()
	require.NoError(t, err)
	return values
}

func TestLoadData_WithoutFilters(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.LoadData(filter.Unfiltered("chicago.csv"))
	require.NoError(t, err)

	assert.Equal(t, 12, ds.Nrow())
	assert.False(t, ds.IsEmpty())
	assert.Equal(t, []int{1, 1, 1, 3, 3, 3, 3, 6, 6, 6, 3, 1}, intColumn(t, ds, MonthColumn))
	assert.Equal(t, []int{6, 0, 0, 4, 4, 6, 0, 0, 4, 5, 4, 4}, intColumn(t, ds, DayOfWeekColumn))
	assert.Equal(t, []int{9, 8, 17, 8, 8, 12, 8, 18, 7, 10, 8, 16}, intColumn(t, ds, HourColumn))
}

func TestLoadData_MonthFilter(t *testing.T) {
	loader := newTestLoader(t)

	for _, month := range []int{1, 3, 6} {
		ds, err := loader.LoadData(filter.NewSelection("chicago.csv", month, filter.AllDays))
		require.NoError(t, err)
		require.False(t, ds.IsEmpty())

		for _, derivedMonth := range intColumn(t, ds, MonthColumn) {
			assert.Equal(t, month, derivedMonth)
		}
	}

	ds, err := loader.LoadData(filter.NewSelection("chicago.csv", 2, filter.AllDays))
	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())
}

func TestLoadData_DayFilter(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.LoadData(filter.NewSelection("chicago.csv", filter.AllMonths, 4))
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Nrow())
	for _, day := range intColumn(t, ds, DayOfWeekColumn) {
		assert.Equal(t, 4, day)
	}

	ds, err = loader.LoadData(filter.NewSelection("chicago.csv", 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Nrow())
	assert.Equal(t, []float64{300, 420, 350}, ds.Frame.Col(ds.Columns.TripDuration).Float())
}

func TestLoadData_SundayFilterKeepsEveryRow(t *testing.T) {
	loader := newTestLoader(t)

	sunday, err := loader.LoadData(filter.NewSelection("chicago.csv", filter.AllMonths, 6))
	require.NoError(t, err)
	unfiltered, err := loader.LoadData(filter.Unfiltered("chicago.csv"))
	require.NoError(t, err)

	assert.Equal(t, unfiltered.Frame.Records(), sunday.Frame.Records())
}

func TestLoadData_SundayFilterWhenIncluded(t *testing.T) {
	loader := NewLoader(LoaderConfig{
		DataDir:                 datasettest.DataDir(t),
		Columns:                 DefaultColumns(),
		DayFilterIncludesSunday: true,
	})

	ds, err := loader.LoadData(filter.NewSelection("chicago.csv", filter.AllMonths, 6))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6}, intColumn(t, ds, DayOfWeekColumn))
}

func TestLoadData_BirthYearIsNullableInteger(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.LoadData(filter.Unfiltered("chicago.csv"))
	require.NoError(t, err)

	birthYears := ds.Frame.Col(ds.Columns.BirthYear)
	assert.Equal(t, "1989", birthYears.Elem(0).String())
	assert.True(t, birthYears.Elem(2).IsNA())
	assert.True(t, ds.Frame.Col(ds.Columns.Gender).Elem(2).IsNA())
}

func TestLoadData_AddsMissingDemographicColumns(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.LoadData(filter.Unfiltered("washington.csv"))
	require.NoError(t, err)
	require.Equal(t, 3, ds.Nrow())

	assert.Contains(t, ds.Frame.Names(), ds.Columns.Gender)
	assert.Contains(t, ds.Frame.Names(), ds.Columns.BirthYear)
	for _, missing := range ds.Frame.Col(ds.Columns.Gender).IsNaN() {
		assert.True(t, missing)
	}
	for _, missing := range ds.Frame.Col(ds.Columns.BirthYear).IsNaN() {
		assert.True(t, missing)
	}
	assert.Nil(t, ds.Stations)
}

func TestLoadData_GenderWithoutBirthYearIsReplaced(t *testing.T) {
	dir := t.TempDir()
	datasettest.WriteFile(t, dir, "denver.csv", `,Start Time,Trip Duration,Start Station,End Station,User Type,Gender
0,2017-01-02 08:00:00,60,A St,B St,Subscriber,Male
1,2017-01-03 09:00:00,90,B St,A St,Customer,Female
`)
	loader := NewLoader(LoaderConfig{DataDir: dir, Columns: DefaultColumns()})

	ds, err := loader.LoadData(filter.Unfiltered("denver.csv"))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Nrow())

	assert.Equal(t, []bool{true, true}, ds.Frame.Col(ds.Columns.Gender).IsNaN())
	assert.Equal(t, []bool{true, true}, ds.Frame.Col(ds.Columns.BirthYear).IsNaN())
}

func TestLoadData_Stations(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.LoadData(filter.Unfiltered("chicago.csv"))
	require.NoError(t, err)

	require.True(t, ds.HasStations())
	assert.Len(t, ds.Stations, 3)
	assert.Equal(t, 41.8881, ds.Stations["Clark St"].Latitude)
}

func TestLoadData_XLSX(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"", "Start Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{0, "2017-05-01 10:00:00", 120, "A St", "B St", "Subscriber"},
		{1, "2017-05-02 11:00:00", 240, "B St", "A St", "Customer"},
	}
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, "boston.xlsx")))

	loader := NewLoader(LoaderConfig{DataDir: dir, Columns: DefaultColumns()})
	ds, err := loader.LoadData(filter.NewSelection("boston.xlsx", 5, 1))
	require.NoError(t, err)

	require.Equal(t, 1, ds.Nrow())
	assert.Equal(t, "B St", ds.Frame.Col("Start Station").Elem(0).String())
	assert.Equal(t, 240.0, ds.Frame.Col("Trip Duration").Elem(0).Float())
}

func TestLoadData_Errors(t *testing.T) {
	dir := t.TempDir()
	datasettest.WriteFile(t, dir, "no_user_type.csv", "Start Time,Trip Duration,Start Station,End Station\n2017-01-01 00:00:00,1,A,B\n")
	datasettest.WriteFile(t, dir, "bad_time.csv", "Start Time,Trip Duration,Start Station,End Station,User Type\nyesterday,1,A,B,Customer\n")
	datasettest.WriteFile(t, dir, "city.json", "{}")
	loader := NewLoader(LoaderConfig{DataDir: dir, Columns: DefaultColumns()})

	_, err := loader.LoadData(filter.Unfiltered("missing.csv"))
	assert.ErrorIs(t, err, ErrReadingSource)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.LoadData(filter.Unfiltered("no_user_type.csv"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = loader.LoadData(filter.Unfiltered("bad_time.csv"))
	assert.ErrorIs(t, err, ErrInvalidStartTime)

	_, err = loader.LoadData(filter.Unfiltered("city.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
