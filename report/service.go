package report

import (
	"context"
	"fmt"
	"io"
	"time"
)

// reportTimezone is the regional timezone used for the title block
// timestamp and the download filename.
const reportTimezone = "America/Chicago"

// ServiceConfig configures a Service. Zero values fall back to the
// built-in variants, a no-op logger, no logo, and the wall clock.
type ServiceConfig struct {
	Variants *VariantRegistry
	Logger   Logger
	Logo     LogoSource
	// Now supplies the generation timestamp; tests inject a fixed clock.
	Now      func() time.Time
	Location *time.Location
}

// Service runs the full formatting pipeline: one upload in, one styled
// workbook out. Each run is independent and stateless.
type Service struct {
	variants *VariantRegistry
	logger   Logger
	logo     LogoSource
	now      func() time.Time
	location *time.Location
}

// NewService creates a Service.
func NewService(cfg ServiceConfig) *Service {
	variants := cfg.Variants
	if variants == nil {
		variants = DefaultVariantRegistry()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	logo := cfg.Logo
	if logo == nil {
		logo = NopLogoSource{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	location := cfg.Location
	if location == nil {
		location = defaultLocation()
	}
	return &Service{
		variants: variants,
		logger:   logger,
		logo:     logo,
		now:      now,
		location: location,
	}
}

// Variants exposes the registry backing this service.
func (s *Service) Variants() *VariantRegistry {
	return s.variants
}

// Process runs the pipeline for one uploaded export: validate the
// filename, buffer the raw grid, detect and normalize the header, reshape
// the records, and render the styled workbook. Only the filename check is
// a hard stop; everything after it degrades instead of failing.
func (s *Service) Process(ctx context.Context, variantName, filename string, upload io.Reader) (Result, error) {
	variant, err := s.variants.Resolve(variantName)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateUploadName(filename, variant); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	grid, err := ReadGrid(upload)
	if err != nil {
		return Result{}, err
	}

	var rs RecordSet
	if len(grid) > 0 {
		headerIdx := DetectHeaderRow(grid)
		rs = BuildRecords(grid, headerIdx, variant.PreferredColumns)
		s.logger.Debugf("header row %d, %d records, columns %v", headerIdx, len(rs.Records), rs.Columns)
	}

	now := s.now().In(s.location)
	stamp := now.Format(variant.TimestampLayout)
	meta := RenderMeta{Title: variant.Title}
	if variant.TitleFormat != "" {
		meta.Title = fmt.Sprintf(variant.TitleFormat, stamp)
	}
	if variant.SubtitleFormat != "" {
		meta.Subtitle = fmt.Sprintf(variant.SubtitleFormat, stamp)
	}
	if variant.LogoEnabled {
		meta.Logo, meta.HasLogo = s.logo.Logo()
	}

	data, err := RenderWorkbook(rs, variant, meta)
	if err != nil {
		return Result{}, NewError(KindInternal, "workbook render failed", err)
	}

	name, err := renderFilename(variant, now)
	if err != nil {
		return Result{}, NewError(KindInternal, "filename render failed", err)
	}

	s.logger.Infof("report generated variant=%s rows=%d bytes=%d", variant.Name, len(rs.Records), len(data))

	return Result{
		Filename:    name,
		ContentType: WorkbookContentType,
		Data:        data,
		Rows:        len(rs.Records),
		Columns:     rs.Columns,
	}, nil
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(reportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
