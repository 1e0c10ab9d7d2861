// Copyright 2025 James D Elliot
// Licensed under the Apache License, Version 2.0
// Originally from: https://github.com/authelia/authelia
// See APACHE-LICENSE.txt for full license text

package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IsStringInSlice checks if a single string is in a slice of strings.
func IsStringInSlice(needle string, haystack []string) (inSlice bool) {
	for _, b := range haystack {
		if b == needle {
			return true
		}
	}

	return false
}

// ParseDurationString parses a duration in the standard Go format extended with
// d, w, M and y units. A bare integer is a number of seconds.
func ParseDurationString(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("could not parse an empty string as a duration")
	}

	if reOnlyNumeric.MatchString(input) {
		seconds, err := strconv.Atoi(input)
		if err != nil {
			return 0, fmt.Errorf("could not parse '%s' as a duration: %w", input, err)
		}

		return time.Duration(seconds) * time.Second, nil
	}

	matches := reDurationStandard.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("could not parse '%s' as a duration", input)
	}

	var (
		out      time.Duration
		consumed int
	)

	for _, match := range matches {
		consumed += len(match[0])

		d, err := durationFromMatch(match[1], match[2])
		if err != nil {
			return 0, fmt.Errorf("could not parse the units portion of '%s' in duration string '%s': %w", match[0], input, err)
		}

		out += d
	}

	if consumed != len(input) {
		return 0, fmt.Errorf("could not parse '%s' as a duration: unexpected characters", input)
	}

	return out, nil
}

func durationFromMatch(value, unit string) (time.Duration, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	switch unit {
	case DurationUnitDays:
		return Day * time.Duration(v), nil
	case DurationUnitWeeks:
		return Week * time.Duration(v), nil
	case DurationUnitMonths:
		return Month * time.Duration(v), nil
	case DurationUnitYears:
		return Year * time.Duration(v), nil
	}

	if !IsStringInSlice(unit, standardDurationUnits) {
		return 0, fmt.Errorf("the unit '%s' is not valid", unit)
	}

	return time.ParseDuration(value + unit)
}
