package utils

import (
	"math"
	"strconv"
	"strings"
)

// SpaceDelimitedStringToFloatSlice is a helper method to split up space-delimited fields in a string and converts them
// to floats. Fields which fail to parse become NaN so that callers can reject them with a finiteness check.
func SpaceDelimitedStringToFloatSlice(s string) []float64 {
	var converted []float64
	slice := strings.Fields(s)
	for _, value := range slice {
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			value = math.NaN()
		}
		converted = append(converted, value)
	}
	return converted
}

// FloatSliceToSpaceDelimitedString formats floats with the shortest representation that parses back to the same value.
func FloatSliceToSpaceDelimitedString(values ...float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}
