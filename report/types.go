package report

// Canonical field names. Every recognized source column is normalized into
// one of these before projection.
const (
	FieldPID                  = "PID"
	FieldFirstName            = "First Name"
	FieldLastName             = "Last Name"
	FieldCenter               = "Center"
	FieldClass                = "Class"
	FieldAuthorizationDate    = "Authorization Date"
	FieldDisabilityIdentified = "Disability Identified"
	FieldPrimaryDisability    = "Primary Disability"
	FieldChildName            = "Child Name"
)

// DefaultColumns is the preferred output column order. Columns missing from
// the input are omitted; the relative order of the rest never changes.
var DefaultColumns = []string{
	FieldPID,
	FieldFirstName,
	FieldLastName,
	FieldCenter,
	FieldClass,
	FieldAuthorizationDate,
	FieldDisabilityIdentified,
	FieldPrimaryDisability,
}

// WorkbookContentType identifies the produced artifact as a modern
// spreadsheet format.
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RawGrid is the untyped cell grid read from the uploaded workbook's first
// sheet. No header row is assumed. It is never mutated.
type RawGrid [][]string

// Record maps canonical field names to scalar values.
type Record map[string]string

// RecordSet is the projected row set that drives rendering. Every record
// carries every column in Columns; absent values are empty strings.
type RecordSet struct {
	Columns []string
	Records []Record
}

// Result is a completed formatting run.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
	Columns     []string
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
