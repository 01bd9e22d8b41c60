package reportapi

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hchsp/go-authreport/report"
)

// DefaultMaxUploadBytes bounds uploaded exports; the pipeline buffers the
// whole file in memory.
const DefaultMaxUploadBytes int64 = 16 * 1024 * 1024

// Config configures the shared report API controller.
type Config struct {
	Service        *report.Service
	BasePath       string
	Logger         report.Logger
	IDGenerator    func() string
	MaxUploadBytes int64
}

// Controller exposes report API handlers for multiple transports. Routes:
//
//	GET  {base}            list available variants
//	POST {base}/{variant}  format an uploaded export, respond with the artifact
type Controller struct {
	service        *report.Service
	basePath       string
	logger         report.Logger
	idGenerator    func() string
	maxUploadBytes int64
}

// NewController creates a shared report API controller.
func NewController(cfg Config) *Controller {
	basePath := strings.TrimRight(cfg.BasePath, "/")
	if basePath == "" {
		basePath = "/reports"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = report.NopLogger{}
	}
	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = uuid.NewString
	}
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &Controller{
		service:        cfg.Service,
		basePath:       basePath,
		logger:         logger,
		idGenerator:    idGenerator,
		maxUploadBytes: maxUpload,
	}
}

// BasePath returns the configured base path.
func (c *Controller) BasePath() string {
	if c == nil {
		return ""
	}
	return c.basePath
}

// Serve routes report endpoints using the shared controller.
func (c *Controller) Serve(req Request, res Response) {
	if res == nil {
		return
	}
	if c == nil || req == nil {
		WriteError(res, report.NewError(report.KindInternal, "handler is nil", nil))
		return
	}
	if !strings.HasPrefix(req.Path(), c.basePath) {
		writeNotFound(res)
		return
	}

	pathSuffix := strings.Trim(strings.TrimPrefix(req.Path(), c.basePath), "/")
	parts := []string{}
	if pathSuffix != "" {
		parts = strings.Split(pathSuffix, "/")
	}

	switch req.Method() {
	case http.MethodGet:
		if len(parts) != 0 {
			writeNotFound(res)
			return
		}
		c.handleList(res)
	case http.MethodPost:
		if len(parts) != 1 {
			writeNotFound(res)
			return
		}
		c.handleGenerate(req, res, parts[0])
	default:
		res.SetHeader("Allow", "GET,POST")
		res.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *Controller) handleList(res Response) {
	if c.service == nil {
		WriteError(res, report.NewError(report.KindInternal, "report service not configured", nil))
		return
	}
	variants := c.service.Variants().List()
	payload := VariantsResponse{Variants: make([]VariantSummary, 0, len(variants))}
	for _, v := range variants {
		payload.Variants = append(payload.Variants, VariantSummary{
			Name:          v.Name,
			Title:         v.Title,
			RequiredToken: v.RequiredToken,
			Columns:       v.PreferredColumns,
		})
	}
	writeJSON(res, http.StatusOK, payload)
}

func (c *Controller) handleGenerate(req Request, res Response, variantName string) {
	if c.service == nil {
		WriteError(res, report.NewError(report.KindInternal, "report service not configured", nil))
		return
	}

	upload, err := decodeUpload(req, c.maxUploadBytes)
	if err != nil {
		WriteError(res, err)
		return
	}

	result, err := c.service.Process(req.Context(), variantName, upload.Filename, bytes.NewReader(upload.Data))
	if err != nil {
		c.logger.Errorf("report run failed variant=%s file=%s: %v", variantName, upload.Filename, err)
		WriteError(res, err)
		return
	}

	reportID := c.idGenerator()
	setDownloadHeaders(res, reportID, sanitizeFilename(result.Filename), result.ContentType)
	res.SetHeader("X-Report-Rows", strconv.Itoa(result.Rows))
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(result.Data); err != nil {
		c.logger.Errorf("artifact write failed: %v", err)
	}
}
