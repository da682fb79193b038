// Package schedule generates the bookable slot grid for one doctor-day.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSlotDuration is returned when the slot duration is zero or
// negative. A zero step would loop forever, so it is rejected up front as a
// doctor configuration error.
var ErrInvalidSlotDuration = errors.New("slot duration must be greater than zero")

// Grid returns the ordered sequence of bookable "HH:MM" time points for one
// day: start, start+step, ... while the point is <= end (end included when it
// lands exactly on the grid). A start after end yields an empty grid.
func Grid(start, end string, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	startMin, err := parseMinutes(start)
	if err != nil {
		return nil, err
	}
	endMin, err := parseMinutes(end)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for cur := startMin; cur <= endMin; cur += stepMinutes {
		slots = append(slots, formatMinutes(cur))
	}
	return slots, nil
}

// Contains reports whether t is one of the grid points.
func Contains(grid []string, t string) bool {
	for _, slot := range grid {
		if slot == t {
			return true
		}
	}
	return false
}

// Subtract returns the grid points not present in taken, preserving grid
// order. Grid points are already unique so no deduplication is needed.
func Subtract(grid []string, taken map[string]bool) []string {
	free := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free
}

func parseMinutes(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", t)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	return hour*60 + minute, nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
