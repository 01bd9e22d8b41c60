package report

import (
	"regexp"
	"strings"
)

// Export variants disagree on where the header row sits: some lead with
// report metadata rows, some with a combined authorization column. The
// detector checks known first-column markers before falling back to the
// densest row.
var (
	childNameMarker = regexp.MustCompile(`(?i)authorization:\s*regarding my child`)
	pidMarker       = regexp.MustCompile(`(?i)participant pid`)
)

// DetectHeaderRow returns the zero-based index of the row holding the
// column labels. It never fails on a grid with at least one row; ties in
// the density fallback resolve to the lowest index.
func DetectHeaderRow(grid RawGrid) int {
	if idx, ok := firstColumnMatch(grid, childNameMarker); ok {
		return idx
	}
	if idx, ok := firstColumnMatch(grid, pidMarker); ok {
		return idx
	}
	return densestRow(grid)
}

func firstColumnMatch(grid RawGrid, pattern *regexp.Regexp) (int, bool) {
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		if pattern.MatchString(strings.TrimSpace(row[0])) {
			return i, true
		}
	}
	return 0, false
}

func densestRow(grid RawGrid) int {
	best := 0
	bestCount := -1
	for i, row := range grid {
		count := 0
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				count++
			}
		}
		if count > bestCount {
			best = i
			bestCount = count
		}
	}
	return best
}
