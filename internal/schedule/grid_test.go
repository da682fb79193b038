package schedule

import (
	"errors"
	"testing"
)

func TestGridBoundaries(t *testing.T) {
	slots, err := Grid("09:00", "12:00", 10)
	if err != nil {
		t.Fatalf("Grid error: %v", err)
	}
	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "12:00" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGridStrictlyIncreasing(t *testing.T) {
	slots, err := Grid("08:30", "17:45", 25)
	if err != nil {
		t.Fatalf("Grid error: %v", err)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("grid not strictly increasing at %d: %v", i, slots)
		}
	}
}

func TestGridUnevenStep(t *testing.T) {
	// 20-minute steps from 10:00 never land on 13:00; last point stays below end.
	slots, err := Grid("10:00", "12:50", 20)
	if err != nil {
		t.Fatalf("Grid error: %v", err)
	}
	if slots[len(slots)-1] != "12:40" {
		t.Fatalf("expected last slot 12:40, got %s", slots[len(slots)-1])
	}
}

func TestGridStartAfterEnd(t *testing.T) {
	slots, err := Grid("14:00", "09:00", 15)
	if err != nil {
		t.Fatalf("Grid error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty grid, got %v", slots)
	}
}

func TestGridZeroStep(t *testing.T) {
	if _, err := Grid("09:00", "12:00", 0); !errors.Is(err, ErrInvalidSlotDuration) {
		t.Fatalf("expected ErrInvalidSlotDuration, got %v", err)
	}
	if _, err := Grid("09:00", "12:00", -5); !errors.Is(err, ErrInvalidSlotDuration) {
		t.Fatalf("expected ErrInvalidSlotDuration, got %v", err)
	}
}

func TestGridBadTimeFormat(t *testing.T) {
	for _, in := range []string{"9am", "25:00", "09:60", "0900", ""} {
		if _, err := Grid(in, "12:00", 10); err == nil {
			t.Fatalf("expected error for start %q", in)
		}
	}
}

func TestContains(t *testing.T) {
	slots, err := Grid("09:00", "12:00", 10)
	if err != nil {
		t.Fatalf("Grid error: %v", err)
	}
	if !Contains(slots, "09:10") {
		t.Fatal("expected 09:10 on grid")
	}
	if Contains(slots, "12:05") {
		t.Fatal("12:05 must not be on grid")
	}
}

func TestSubtract(t *testing.T) {
	slots := []string{"09:00", "09:10", "09:20"}
	free := Subtract(slots, map[string]bool{"09:10": true})
	if len(free) != 2 {
		t.Fatalf("expected 2 free slots, got %d", len(free))
	}
	if free[0] != "09:00" || free[1] != "09:20" {
		t.Fatalf("unexpected free slots: %v", free)
	}
}
