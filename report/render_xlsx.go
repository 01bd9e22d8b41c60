package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	missingDateMarker = "✗"

	colorWhite   = "FFFFFF"
	colorBlack   = "000000"
	colorWarning = "C00000"
	colorSuccess = "008000"

	borderThin   = 1
	borderMedium = 2

	titleFontSize = 14
	logoCellScale = 0.35
)

// RenderMeta carries presentation inputs that are not part of the row data.
type RenderMeta struct {
	Title    string
	Subtitle string
	Logo     Logo
	HasLogo  bool
}

// RenderWorkbook renders a projected record set into a styled workbook and
// returns it as an in-memory byte sequence. The layout is a single linear
// pipeline: title block, header row, banded data rows with date
// highlighting, borders, freeze panes, autofilter, column autosizing, and
// a best-effort logo.
func RenderWorkbook(rs RecordSet, variant Variant, meta RenderMeta) ([]byte, error) {
	variant = variant.withDefaults()

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheet := variant.SheetName
	if def := file.GetSheetName(0); def != sheet {
		_ = file.SetSheetName(def, sheet)
	}

	b := &workbookBuilder{
		file:    file,
		sheet:   sheet,
		variant: variant,
		styles:  make(map[styleKey]int),
	}

	headerRow := variant.headerRow()
	firstDataRow := headerRow + 1
	lastRow := headerRow + len(rs.Records)

	if err := b.writeTitleBlock(meta, headerRow, len(rs.Columns)); err != nil {
		return nil, err
	}
	if len(rs.Columns) > 0 {
		if err := b.writeHeader(headerRow, lastRow, rs.Columns); err != nil {
			return nil, err
		}
		if err := b.writeRows(firstDataRow, lastRow, rs); err != nil {
			return nil, err
		}
		if err := b.freezeAndFilter(headerRow, firstDataRow, lastRow, len(rs.Columns)); err != nil {
			return nil, err
		}
		if err := b.autosize(rs); err != nil {
			return nil, err
		}
	}
	b.addLogo(meta)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type workbookBuilder struct {
	file    *excelize.File
	sheet   string
	variant Variant
	styles  map[styleKey]int
}

type cellRole int

const (
	roleData cellRole = iota
	roleHeader
	roleDateOK
	roleDateMissing
	roleTitle
	roleSubtitle
)

// styleKey identifies a distinct cell style: its role, banding state, and
// the border weight on each edge (0 none, 1 thin, 2 medium).
type styleKey struct {
	role                     cellRole
	band                     bool
	left, right, top, bottom int
}

func (b *workbookBuilder) style(key styleKey) (int, error) {
	if id, ok := b.styles[key]; ok {
		return id, nil
	}

	s := &excelize.Style{}
	if key.left > 0 || key.right > 0 || key.top > 0 || key.bottom > 0 {
		s.Border = []excelize.Border{
			{Type: "left", Color: colorBlack, Style: key.left},
			{Type: "right", Color: colorBlack, Style: key.right},
			{Type: "top", Color: colorBlack, Style: key.top},
			{Type: "bottom", Color: colorBlack, Style: key.bottom},
		}
	}

	band := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{b.variant.BandColor}}

	switch key.role {
	case roleHeader:
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{b.variant.AccentColor}}
		s.Font = &excelize.Font{Bold: true, Color: colorWhite}
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	case roleDateOK:
		s.Font = &excelize.Font{Color: colorSuccess}
		if key.band {
			s.Fill = band
		}
	case roleDateMissing:
		s.Font = &excelize.Font{Bold: true, Color: colorWarning}
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
		if key.band {
			s.Fill = band
		}
	case roleTitle:
		s.Font = &excelize.Font{Bold: true, Size: titleFontSize}
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	case roleSubtitle:
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	default:
		if key.band {
			s.Fill = band
		}
	}

	id, err := b.file.NewStyle(s)
	if err != nil {
		return 0, err
	}
	b.styles[key] = id
	return id, nil
}

func (b *workbookBuilder) writeTitleBlock(meta RenderMeta, headerRow, totalCols int) error {
	if b.variant.TitleRows == 0 {
		return nil
	}
	if totalCols < 1 {
		totalCols = 1
	}

	titleRow := headerRow - b.variant.TitleRows
	if err := b.writeMergedRow(titleRow, totalCols, meta.Title, roleTitle); err != nil {
		return err
	}
	if b.variant.TitleRows >= 2 {
		if err := b.writeMergedRow(titleRow+1, totalCols, meta.Subtitle, roleSubtitle); err != nil {
			return err
		}
	}
	return nil
}

func (b *workbookBuilder) writeMergedRow(row, totalCols int, value string, role cellRole) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(totalCols, row)
	if err != nil {
		return err
	}
	if totalCols > 1 {
		if err := b.file.MergeCell(b.sheet, first, last); err != nil {
			return err
		}
	}
	if err := b.file.SetCellValue(b.sheet, first, value); err != nil {
		return err
	}
	styleID, err := b.style(styleKey{role: role})
	if err != nil {
		return err
	}
	return b.file.SetCellStyle(b.sheet, first, last, styleID)
}

func (b *workbookBuilder) writeHeader(headerRow, lastRow int, columns []string) error {
	for j, name := range columns {
		cell, err := excelize.CoordinatesToCellName(j+1, headerRow)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, name); err != nil {
			return err
		}

		key := styleKey{
			role:   roleHeader,
			left:   edgeWeight(j == 0),
			right:  edgeWeight(j == len(columns)-1),
			top:    borderMedium,
			bottom: borderThin,
		}
		// header is also the table's last row when there is no data
		if lastRow == headerRow {
			key.bottom = borderMedium
		}
		styleID, err := b.style(key)
		if err != nil {
			return err
		}
		if err := b.file.SetCellStyle(b.sheet, cell, cell, styleID); err != nil {
			return err
		}
	}
	return nil
}

func (b *workbookBuilder) writeRows(firstDataRow, lastRow int, rs RecordSet) error {
	for i, rec := range rs.Records {
		row := firstDataRow + i
		band := i%2 == 1
		for j, name := range rs.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}

			value := rec[name]
			role := roleData
			if name == FieldAuthorizationDate {
				if value == "" {
					role = roleDateMissing
					value = missingDateMarker
				} else {
					role = roleDateOK
				}
			}
			if err := b.file.SetCellValue(b.sheet, cell, value); err != nil {
				return err
			}

			key := styleKey{
				role:   role,
				band:   band,
				left:   edgeWeight(j == 0),
				right:  edgeWeight(j == len(rs.Columns)-1),
				top:    borderThin,
				bottom: borderThin,
			}
			if row == lastRow {
				key.bottom = borderMedium
			}
			styleID, err := b.style(key)
			if err != nil {
				return err
			}
			if err := b.file.SetCellStyle(b.sheet, cell, cell, styleID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *workbookBuilder) freezeAndFilter(headerRow, firstDataRow, lastRow, totalCols int) error {
	topLeft, err := excelize.CoordinatesToCellName(1, firstDataRow)
	if err != nil {
		return err
	}
	if err := b.file.SetPanes(b.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      firstDataRow - 1,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(totalCols)
	if err != nil {
		return err
	}
	// the filter range must start exactly at the header row, not the
	// title block, or the sort controls attach to the wrong row
	rangeRef := fmt.Sprintf("A%d:%s%d", headerRow, lastCol, lastRow)
	return b.file.AutoFilter(b.sheet, rangeRef, nil)
}

func (b *workbookBuilder) autosize(rs RecordSet) error {
	for j, name := range rs.Columns {
		maxLen := len([]rune(name))
		for _, rec := range rs.Records {
			value := rec[name]
			if name == FieldAuthorizationDate && value == "" {
				value = missingDateMarker
			}
			if n := len([]rune(value)); n > maxLen {
				maxLen = n
			}
		}
		width := float64(maxLen) + b.variant.WidthPadding
		if width > b.variant.WidthCap {
			width = b.variant.WidthCap
		}
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := b.file.SetColWidth(b.sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// addLogo anchors the logo at the top-left cell. Best-effort: a missing or
// broken image never fails the render.
func (b *workbookBuilder) addLogo(meta RenderMeta) {
	if !b.variant.LogoEnabled || !meta.HasLogo || len(meta.Logo.Data) == 0 {
		return
	}
	_ = b.file.AddPictureFromBytes(b.sheet, "A1", &excelize.Picture{
		Extension: meta.Logo.Extension,
		File:      meta.Logo.Data,
		Format: &excelize.GraphicOptions{
			ScaleX: logoCellScale,
			ScaleY: logoCellScale,
		},
	})
}

func edgeWeight(outer bool) int {
	if outer {
		return borderMedium
	}
	return borderThin
}
