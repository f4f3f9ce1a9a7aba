package input

import (
	"strings"

	"bikeshare/domain/entities/filter"
)

// Enumeration maps every accepted answer, in lower case, to its value
type Enumeration[T any] map[string]T

// NewEnumeration returns an Enumeration with the keys of values in lower case
func NewEnumeration[T any](values map[string]T) Enumeration[T] {
	enumeration := make(Enumeration[T], len(values))
	for key, value := range values {
		enumeration[normalize(key)] = value
	}
	return enumeration
}

// Lookup returns the value of answer, ignoring case and surrounding spaces
func (e Enumeration[T]) Lookup(answer string) (T, bool) {
	value, ok := e[normalize(answer)]
	return value, ok
}

var (
	Months = Enumeration[int]{
		"january":  1,
		"february": 2,
		"march":    3,
		"april":    4,
		"may":      5,
		"june":     6,
		"all":      filter.AllMonths,
		"a":        filter.AllMonths,
	}

	Days = Enumeration[int]{
		"monday":    0,
		"tuesday":   1,
		"wednesday": 2,
		"thursday":  3,
		"friday":    4,
		"saturday":  5,
		"sunday":    6,
		"all":       filter.AllDays,
		"a":         filter.AllDays,
	}

	YesNo = Enumeration[bool]{
		"no":  false,
		"yes": true,
		"y":   true,
		"n":   false,
	}
)

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
