package report

import (
	"fmt"
	"sync"
)

// Variant parameterizes one export flavor. The formatting pipeline is the
// same for every variant; only presentation and acceptance rules differ.
type Variant struct {
	// Name identifies the variant, conventionally the numeric form code of
	// the source export.
	Name string
	// RequiredToken must appear in the uploaded filename or the run is
	// rejected before parsing. Empty disables the check.
	RequiredToken string
	SheetName     string
	Title         string
	// TitleFormat, when set, overrides Title in rendered output with a fmt
	// format string receiving the generation timestamp. One-row variants
	// use this to carry the timestamp in their only title row.
	TitleFormat string
	// SubtitleFormat is a fmt format string receiving the generation
	// timestamp. Rendered only when TitleRows >= 2.
	SubtitleFormat string
	// TimestampLayout formats the generation timestamp fed to TitleFormat
	// and SubtitleFormat.
	TimestampLayout string
	// AccentColor fills the header row (RGB hex, no leading #).
	AccentColor string
	// BandColor tints every other data row.
	BandColor string
	// TitleRows is the number of title block rows above the header (0-2).
	TitleRows int
	// LogoEnabled reserves a spacer row above the title block and anchors
	// the logo image, when one is available, at the top-left cell.
	LogoEnabled      bool
	PreferredColumns []string
	FilenamePrefix   string
	// WidthPadding and WidthCap control column autosizing: longest
	// rendered value plus padding, capped.
	WidthPadding float64
	WidthCap     float64
}

const (
	defaultSheetName       = "Authorizations"
	defaultBandColor       = "D9D9D9"
	defaultWidthPadding    = 3
	defaultWidthCap        = 48
	defaultTimestampLayout = "01/02/06 03:04 PM CT"
)

func (v Variant) withDefaults() Variant {
	if v.SheetName == "" {
		v.SheetName = defaultSheetName
	}
	if v.BandColor == "" {
		v.BandColor = defaultBandColor
	}
	if len(v.PreferredColumns) == 0 {
		v.PreferredColumns = DefaultColumns
	}
	if v.FilenamePrefix == "" {
		v.FilenamePrefix = "Report"
	}
	if v.WidthPadding <= 0 {
		v.WidthPadding = defaultWidthPadding
	}
	if v.WidthCap <= 0 {
		v.WidthCap = defaultWidthCap
	}
	if v.TimestampLayout == "" {
		v.TimestampLayout = defaultTimestampLayout
	}
	if v.TitleRows < 0 {
		v.TitleRows = 0
	}
	if v.TitleRows > 2 {
		v.TitleRows = 2
	}
	return v
}

// headerRow returns the 1-indexed sheet row holding the column labels.
func (v Variant) headerRow() int {
	row := v.TitleRows + 1
	if v.LogoEnabled {
		row++
	}
	return row
}

// VariantRegistry stores report variants.
type VariantRegistry struct {
	mu       sync.RWMutex
	variants map[string]Variant
	order    []string
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{variants: make(map[string]Variant)}
}

// DefaultVariantRegistry returns a registry preloaded with the built-in
// variants.
func DefaultVariantRegistry() *VariantRegistry {
	r := NewVariantRegistry()
	for _, v := range BuiltinVariants() {
		if err := r.Register(v); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a variant.
func (r *VariantRegistry) Register(v Variant) error {
	if v.Name == "" {
		return NewError(KindValidation, "variant name is required", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.variants[v.Name]; exists {
		return NewError(KindValidation, fmt.Sprintf("variant %q already registered", v.Name), nil)
	}
	r.variants[v.Name] = v
	r.order = append(r.order, v.Name)
	return nil
}

// Resolve returns the named variant with defaults applied.
func (r *VariantRegistry) Resolve(name string) (Variant, error) {
	r.mu.RLock()
	v, ok := r.variants[name]
	r.mu.RUnlock()
	if !ok {
		return Variant{}, NewError(KindNotFound, fmt.Sprintf("variant %q not found", name), nil)
	}
	return v.withDefaults(), nil
}

// List returns registered variants in registration order.
func (r *VariantRegistry) List() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Variant, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.variants[name].withDefaults())
	}
	return out
}

// BuiltinVariants returns the variants shipped with the formatter.
func BuiltinVariants() []Variant {
	return []Variant{
		{
			Name:           "10415",
			RequiredToken:  "10415",
			Title:          "Hidalgo County Head Start Program",
			SubtitleFormat: "Disability Authorizations — 2025–2026 as of (%s)",
			AccentColor:    "1F4E78",
			TitleRows:      2,
			LogoEnabled:    true,
			FilenamePrefix: "HCHSP_DisabilityAuthorizations",
			WidthPadding:   3,
			WidthCap:       48,
		},
		{
			Name:            "10432",
			RequiredToken:   "10432",
			Title:           "Hidalgo County Head Start — Disability Authorizations",
			TitleFormat:     "25-26 Authorizations — Exported %s",
			TimestampLayout: "01/02/2006 03:04 PM",
			AccentColor:     "4472C4",
			TitleRows:       1,
			PreferredColumns: []string{
				FieldPID,
				FieldFirstName,
				FieldLastName,
				FieldCenter,
				FieldClass,
				FieldAuthorizationDate,
			},
			FilenamePrefix: "HCHSP_DisabilityAuthorizations",
			WidthPadding:   2,
			WidthCap:       45,
		},
	}
}
