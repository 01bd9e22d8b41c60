package report

import "testing"

func TestDetectHeaderRow_ChildNameMarkerWins(t *testing.T) {
	grid := RawGrid{
		{"Report 10415", "", ""},
		{"Participant PID", "First", "Last"},
		{"25-26 Authorization: Regarding my child", "Center", "Date"},
	}
	if got := DetectHeaderRow(grid); got != 2 {
		t.Fatalf("expected row 2, got %d", got)
	}
}

func TestDetectHeaderRow_PIDMarker(t *testing.T) {
	grid := RawGrid{
		{"Generated 08/15/2025"},
		{""},
		{"Participant PID", "Participant First Name", "Participant Last Name"},
		{"1001", "Maria", "Gomez"},
	}
	if got := DetectHeaderRow(grid); got != 2 {
		t.Fatalf("expected row 2, got %d", got)
	}
}

func TestDetectHeaderRow_PIDMatchIsCaseInsensitive(t *testing.T) {
	grid := RawGrid{
		{"metadata"},
		{"  PARTICIPANT PID  ", "Center Name"},
	}
	if got := DetectHeaderRow(grid); got != 1 {
		t.Fatalf("expected row 1, got %d", got)
	}
}

func TestDetectHeaderRow_DensestFallback(t *testing.T) {
	grid := RawGrid{
		{"title", ""},
		{"a", "b", "c", ""},
		{"a", "b", "c", "d"},
		{"x"},
	}
	if got := DetectHeaderRow(grid); got != 2 {
		t.Fatalf("expected row 2, got %d", got)
	}
}

func TestDetectHeaderRow_DensityTieResolvesToFirst(t *testing.T) {
	grid := RawGrid{
		{"a", "b"},
		{"c", "d"},
	}
	if got := DetectHeaderRow(grid); got != 0 {
		t.Fatalf("expected row 0, got %d", got)
	}
}

func TestDetectHeaderRow_SingleRow(t *testing.T) {
	grid := RawGrid{{""}}
	if got := DetectHeaderRow(grid); got != 0 {
		t.Fatalf("expected row 0, got %d", got)
	}
}
