package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/filter"
)

var testCities = NewEnumeration(map[string]string{
	"chicago":       "chicago.csv",
	"New York City": "new_york_city.csv",
	"new york":      "new_york_city.csv",
	"newyork":       "new_york_city.csv",
	"washington":    "washington.csv",
})

func newTestCollector(answers string) (*Collector, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewCollector(strings.NewReader(answers), out), out
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestGetInput_RetriesUntilValid(t *testing.T) {
	collector, out := newTestCollector("maybe\n\nYES\n")

	value, err := GetInput(collector, "Continue?", YesNo)
	require.NoError(t, err)
	assert.True(t, value)

	assert.Equal(t, 3, strings.Count(out.String(), "Continue?"))
	assert.Equal(t, 2, strings.Count(out.String(), "Let's try again"))
	assert.Contains(t, out.String(), "Great! the chosen entry is: yes")
}

func TestGetInput_LastLineWithoutLineBreak(t *testing.T) {
	collector, _ := newTestCollector("n")

	value, err := GetInput(collector, "Continue?", YesNo)
	require.NoError(t, err)
	assert.False(t, value)
}

func TestGetInput_Aborted(t *testing.T) {
	collector, out := newTestCollector("what\n")

	_, err := GetInput(collector, "Continue?", YesNo)
	require.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Seems like there is an issue with your input")

	collector = NewCollector(failingReader{}, &bytes.Buffer{})
	_, err = GetInput(collector, "Month?", Months)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestEnumeration_Lookup(t *testing.T) {
	value, ok := testCities.Lookup("  NeW YoRk CiTy ")
	require.True(t, ok)
	assert.Equal(t, "new_york_city.csv", value)

	_, ok = testCities.Lookup("boston")
	assert.False(t, ok)

	for _, spelling := range []string{"new york city", "new york", "newyork"} {
		value, ok := testCities.Lookup(spelling)
		require.True(t, ok)
		assert.Equal(t, "new_york_city.csv", value)
	}
}

func TestGetFilters_WithoutFilter(t *testing.T) {
	collector, out := newTestCollector("chicago\nno\n")

	selection, err := GetFilters(collector, testCities)
	require.NoError(t, err)

	assert.Equal(t, filter.NewSelection("chicago.csv", filter.AllMonths, filter.AllDays), selection)
	assert.NotContains(t, out.String(), "specific month")
	assert.NotContains(t, out.String(), "week day")
}

func TestGetFilters_WithFilter(t *testing.T) {
	collector, _ := newTestCollector("NeW YoRk\nyes\nmarch\nfriday\n")

	selection, err := GetFilters(collector, testCities)
	require.NoError(t, err)

	assert.Equal(t, filter.NewSelection("new_york_city.csv", 3, 4), selection)
}

func TestGetFilters_AllMonthsAndDays(t *testing.T) {
	collector, _ := newTestCollector("washington\ny\na\nALL\n")

	selection, err := GetFilters(collector, testCities)
	require.NoError(t, err)

	assert.Equal(t, filter.Unfiltered("washington.csv"), selection)
}

func TestGetFilters_Aborted(t *testing.T) {
	collector, _ := newTestCollector("chicago\nyes\nmarch\n")

	_, err := GetFilters(collector, testCities)
	assert.ErrorIs(t, err, ErrAborted)
}
