package tripduration

import (
	"fmt"
	"math"
)

const (
	secondsPerDay    = 24 * 60 * 60
	secondsPerHour   = 60 * 60
	secondsPerMinute = 60
)

// Breakdown is an amount of seconds expressed in days, hours, minutes and seconds
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// NewBreakdown splits seconds with successive floor divisions and remainders.
// Fractions of a second are dropped.
func NewBreakdown(seconds float64) Breakdown {
	days := math.Floor(seconds / secondsPerDay)
	seconds = math.Mod(seconds, secondsPerDay)
	hours := math.Floor(seconds / secondsPerHour)
	seconds = math.Mod(seconds, secondsPerHour)
	minutes := math.Floor(seconds / secondsPerMinute)
	seconds = math.Mod(seconds, secondsPerMinute)

	return Breakdown{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// String returns the breakdown with every field right-justified to 5 characters
func (b Breakdown) String() string {
	return fmt.Sprintf("%5d days %5d hours %5d minutes %5d seconds", b.Days, b.Hours, b.Minutes, b.Seconds)
}
