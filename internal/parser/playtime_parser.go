package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// unitsPattern matches play time written with hour/minute units: 2h30m, 2h, 45m
var unitsPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParsePlaytime turns user-entered play time into hours and minutes.
// Accepted forms: "2h30m", "2h", "45m", "1:30", or plain minutes like "90".
func ParsePlaytime(input string) (int, int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, 0, fmt.Errorf("no time given")
	}

	// hh:mm form
	if strings.Contains(input, ":") {
		parts := strings.SplitN(input, ":", 2)
		hours, err1 := strconv.Atoi(parts[0])
		minutes, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || hours < 0 || minutes < 0 || minutes > 59 {
			return 0, 0, fmt.Errorf("invalid time '%s', expected hh:mm", input)
		}
		return hours, minutes, nil
	}

	// Unit form, requires at least one unit present
	if strings.ContainsAny(input, "hm") {
		match := unitsPattern.FindStringSubmatch(input)
		if match == nil {
			return 0, 0, fmt.Errorf("invalid time '%s', expected forms like 2h30m, 2h or 45m", input)
		}
		hours, _ := strconv.Atoi(match[1])
		minutes, _ := strconv.Atoi(match[2])
		return hours, minutes, nil
	}

	// Bare number means minutes
	minutes, err := strconv.Atoi(input)
	if err != nil || minutes < 0 {
		return 0, 0, fmt.Errorf("invalid time '%s', expected forms like 2h30m, 1:30 or plain minutes", input)
	}
	return minutes / 60, minutes % 60, nil
}
