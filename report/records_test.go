package report

import "testing"

func TestBuildRecords_ProjectsPreferredOrder(t *testing.T) {
	grid := RawGrid{
		{"Report", ""},
		{"Generated", ""},
		{"Participant PID", "Participant First Name", "Participant Last Name", "Center Name", "25-26 Authorization: Date"},
		{"1001", "Maria Elena", "Gomez", "North", "2025-09-03"},
		{"1002", "Ana", "Cruz", "South", ""},
		{"", "", "", "", ""},
		{"1003", "Luis", "Perez", "East", "09/03/2025"},
	}

	rs := BuildRecords(grid, 2, nil)

	wantColumns := []string{FieldPID, FieldFirstName, FieldLastName, FieldCenter, FieldAuthorizationDate}
	if len(rs.Columns) != len(wantColumns) {
		t.Fatalf("columns = %v, want %v", rs.Columns, wantColumns)
	}
	for i, name := range wantColumns {
		if rs.Columns[i] != name {
			t.Fatalf("columns = %v, want %v", rs.Columns, wantColumns)
		}
	}
	if len(rs.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(rs.Records))
	}
	if rs.Records[0][FieldAuthorizationDate] != "09/03/2025" {
		t.Fatalf("date not normalized: %q", rs.Records[0][FieldAuthorizationDate])
	}
	if rs.Records[1][FieldAuthorizationDate] != "" {
		t.Fatalf("blank date should stay empty, got %q", rs.Records[1][FieldAuthorizationDate])
	}
	if rs.Records[2][FieldPID] != "1003" {
		t.Fatalf("row order not preserved: %v", rs.Records[2])
	}
}

func TestBuildRecords_SplitsChildName(t *testing.T) {
	grid := RawGrid{
		{"25-26 Authorization: Regarding my child", "Center Name", "25-26 Authorization: Date"},
		{"Maria Elena Gomez", "North", "2025-09-03"},
		{"Cruz", "South", ""},
	}

	rs := BuildRecords(grid, 0, nil)

	if rs.Records[0][FieldFirstName] != "Maria Elena" || rs.Records[0][FieldLastName] != "Gomez" {
		t.Fatalf("split failed: %v", rs.Records[0])
	}
	if rs.Records[1][FieldFirstName] != "Cruz" || rs.Records[1][FieldLastName] != "" {
		t.Fatalf("single token split failed: %v", rs.Records[1])
	}
	// Child Name is not in the default projection
	for _, name := range rs.Columns {
		if name == FieldChildName {
			t.Fatalf("Child Name should drop at projection, columns = %v", rs.Columns)
		}
	}
}

func TestBuildRecords_DoesNotOverwriteExistingNames(t *testing.T) {
	grid := RawGrid{
		{"25-26 Authorization: Regarding my child", "Participant First Name", "Participant Last Name"},
		{"Maria Elena Gomez", "Maria", "Elena Gomez"},
	}

	rs := BuildRecords(grid, 0, nil)

	if rs.Records[0][FieldFirstName] != "Maria" {
		t.Fatalf("existing first name overwritten: %q", rs.Records[0][FieldFirstName])
	}
	if rs.Records[0][FieldLastName] != "Elena Gomez" {
		t.Fatalf("existing last name overwritten: %q", rs.Records[0][FieldLastName])
	}
}

func TestBuildRecords_NeverIntroducesAbsentColumns(t *testing.T) {
	grid := RawGrid{
		{"Participant PID", "Center Name"},
		{"1001", "North"},
	}

	rs := BuildRecords(grid, 0, nil)

	want := []string{FieldPID, FieldCenter}
	if len(rs.Columns) != len(want) || rs.Columns[0] != want[0] || rs.Columns[1] != want[1] {
		t.Fatalf("columns = %v, want %v", rs.Columns, want)
	}
}

func TestBuildRecords_RaggedRowsCarryEveryColumn(t *testing.T) {
	grid := RawGrid{
		{"Participant PID", "Center Name", "25-26 Authorization: Date"},
		{"1001"},
	}

	rs := BuildRecords(grid, 0, nil)

	if len(rs.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rs.Records))
	}
	for _, name := range rs.Columns {
		if _, ok := rs.Records[0][name]; !ok {
			t.Fatalf("record missing column %q", name)
		}
	}
}

func TestBuildRecords_UnknownColumnsDropAtProjection(t *testing.T) {
	grid := RawGrid{
		{"Participant PID", "Enrollment Status"},
		{"1001", "Active"},
	}

	rs := BuildRecords(grid, 0, nil)

	if len(rs.Columns) != 1 || rs.Columns[0] != FieldPID {
		t.Fatalf("columns = %v, want [PID]", rs.Columns)
	}
	if _, ok := rs.Records[0]["Enrollment Status"]; ok {
		t.Fatalf("unknown column survived projection: %v", rs.Records[0])
	}
}

func TestBuildRecords_HeaderOutOfRange(t *testing.T) {
	rs := BuildRecords(RawGrid{}, 0, nil)
	if len(rs.Columns) != 0 || len(rs.Records) != 0 {
		t.Fatalf("expected empty record set, got %v", rs)
	}
}
