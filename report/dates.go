package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const dateOutputLayout = "01/02/2006"

// dateLayouts are tried in order; four-digit years before two-digit so
// "09/03/2025" never half-parses as a short year.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
	"01-02-2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"20060102",
}

// NormalizeDate parses a cell value as a calendar date and renders it as
// MM/DD/YYYY. Unparseable or empty input degrades to an empty string;
// this transform never fails. Numeric values are treated as Excel serial
// dates, which is how unformatted date cells surface from the container.
func NormalizeDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateOutputLayout)
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(dateOutputLayout)
		}
	}
	return ""
}
