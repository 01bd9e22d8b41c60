package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadGrid buffers the first sheet of an uploaded workbook into a RawGrid.
// The uploaded file is read once; a single sheet is assumed and any others
// are ignored.
func ReadGrid(r io.Reader) (RawGrid, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewError(KindUnreadable, "unable to open workbook", err)
	}
	defer func() {
		_ = file.Close()
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewError(KindUnreadable, "workbook has no sheets", nil)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, NewError(KindUnreadable, "unable to read sheet", err)
	}
	return RawGrid(rows), nil
}
