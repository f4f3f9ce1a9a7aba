package utils

import "strings"

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// MissingStrings returns the elements of targetStrings that are not in sliceOfStrings
func MissingStrings(targetStrings []string, sliceOfStrings []string) []string {
	var missing []string
	for _, target := range targetStrings {
		if !ContainsString(target, sliceOfStrings) {
			missing = append(missing, target)
		}
	}
	return missing
}

// Separator is printed between the sections of the console output
var Separator = strings.Repeat("-", 40)
