package report

import "strings"

// BuildRecords turns a raw grid plus a detected header index into the
// projected record set: canonicalize labels, drop blank rows, derive
// First/Last Name from a combined Child Name where needed, project onto
// the preferred column order, and normalize the authorization date.
func BuildRecords(grid RawGrid, headerIdx int, preferred []string) RecordSet {
	if headerIdx < 0 || headerIdx >= len(grid) {
		return RecordSet{}
	}
	if len(preferred) == 0 {
		preferred = DefaultColumns
	}

	labels := CanonicalLabels(grid[headerIdx])

	records := make([]Record, 0, len(grid)-headerIdx-1)
	for _, row := range grid[headerIdx+1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(Record, len(labels))
		for j, label := range labels {
			if label == "" {
				continue
			}
			// duplicate labels: first occurrence wins
			if _, seen := rec[label]; seen {
				continue
			}
			value := ""
			if j < len(row) {
				value = row[j]
			}
			rec[label] = value
		}
		records = append(records, rec)
	}

	split := false
	for _, rec := range records {
		full, ok := rec[FieldChildName]
		if !ok {
			continue
		}
		// existing name fields are authoritative; never overwrite them
		if _, has := rec[FieldFirstName]; has {
			continue
		}
		if _, has := rec[FieldLastName]; has {
			continue
		}
		first, last := SplitName(full)
		rec[FieldFirstName] = first
		rec[FieldLastName] = last
		split = true
	}

	present := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if label != "" {
			present[label] = struct{}{}
		}
	}
	if split {
		present[FieldFirstName] = struct{}{}
		present[FieldLastName] = struct{}{}
	}

	columns := make([]string, 0, len(preferred))
	for _, name := range preferred {
		if _, ok := present[name]; ok {
			columns = append(columns, name)
		}
	}

	projected := make([]Record, len(records))
	for i, rec := range records {
		out := make(Record, len(columns))
		for _, name := range columns {
			out[name] = rec[name]
		}
		if _, ok := out[FieldAuthorizationDate]; ok {
			out[FieldAuthorizationDate] = NormalizeDate(out[FieldAuthorizationDate])
		}
		projected[i] = out
	}

	return RecordSet{Columns: columns, Records: projected}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
