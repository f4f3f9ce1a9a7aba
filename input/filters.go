package input

import (
	"fmt"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	greeting     = "Hello! Let's explore some US bikeshare data!"
	cityPrompt   = "Would you like to see data for Chicago, New York, Washington?"
	filterPrompt = "Would you like to filter the data set? ([Y]es/[N]o)?"
	monthPrompt  = "Would you like to see data for a specific month (january to june) or [a]ll data?"
	dayPrompt    = "Would you like to see data for a week day(monday to sunday) or [a]ll data?"
)

// GetFilters asks the user to specify a city, and optionally a month and a day of week.
// cities maps the accepted city names to their city files.
func GetFilters(c *Collector, cities Enumeration[string]) (filter.Selection, error) {
	fmt.Fprintln(c.out, greeting)

	cityFile, err := GetInput(c, cityPrompt, cities)
	if err != nil {
		return filter.Selection{}, err
	}

	applyFilters, err := GetInput(c, filterPrompt, YesNo)
	if err != nil {
		return filter.Selection{}, err
	}

	if !applyFilters {
		fmt.Fprintln(c.out, utils.Separator)
		return filter.Unfiltered(cityFile), nil
	}

	month, err := GetInput(c, monthPrompt, Months)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := GetInput(c, dayPrompt, Days)
	if err != nil {
		return filter.Selection{}, err
	}

	fmt.Fprintln(c.out, utils.Separator)
	return filter.NewSelection(cityFile, month, day), nil
}
