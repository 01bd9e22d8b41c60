package reporthttp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hchsp/go-authreport/adapters/reportapi"
	"github.com/hchsp/go-authreport/report"
)

func testService(t *testing.T) *report.Service {
	t.Helper()
	return report.NewService(report.ServiceConfig{
		Now:      func() time.Time { return time.Date(2025, 9, 3, 14, 30, 5, 0, time.UTC) },
		Location: time.UTC,
	})
}

func testUpload(t *testing.T) []byte {
	t.Helper()
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()
	sheet := file.GetSheetName(0)
	rows := [][]any{
		{"Participant PID", "Participant First Name", "Participant Last Name", "Center Name", "25-26 Authorization: Date"},
		{"1001", "Maria", "Gomez", "North", "2025-09-03"},
		{"1002", "Ana", "Cruz", "South", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestHandler_GenerateReport(t *testing.T) {
	handler := NewHandler(Config{
		Service:     testService(t),
		IDGenerator: func() string { return "fixed-id" },
	})

	body, contentType := multipartBody(t, "10415_export.xlsx", testUpload(t))
	req := httptest.NewRequest(http.MethodPost, "/reports/10415", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != report.WorkbookContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", got)
	}
	if got := rec.Header().Get("X-Report-Id"); got != "fixed-id" {
		t.Fatalf("unexpected report id %q", got)
	}
	if got := rec.Header().Get("X-Report-Rows"); got != "2" {
		t.Fatalf("expected 2 rows, got %q", got)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("artifact is not a workbook: %v", err)
	}
	defer func() {
		_ = wb.Close()
	}()
	if wb.GetSheetName(0) != "Authorizations" {
		t.Fatalf("unexpected sheet name %q", wb.GetSheetName(0))
	}
}

func TestHandler_RejectsWrongFilename(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})

	body, contentType := multipartBody(t, "other_export.xlsx", testUpload(t))
	req := httptest.NewRequest(http.MethodPost, "/reports/10415", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var payload reportapi.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error.Code != "rejected_input" {
		t.Fatalf("unexpected error code %q", payload.Error.Code)
	}
	if !strings.Contains(payload.Error.Message, "10415") {
		t.Fatalf("message should name the token: %q", payload.Error.Message)
	}
}

func TestHandler_MissingFilePart(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("note", "no file here"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/reports/10415", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListVariants(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload reportapi.VariantsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode variants: %v", err)
	}
	if len(payload.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(payload.Variants))
	}
	if payload.Variants[0].Name != "10415" {
		t.Fatalf("unexpected first variant %q", payload.Variants[0].Name)
	}
}

func TestHandler_UnknownVariant(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})

	body, contentType := multipartBody(t, "10999_export.xlsx", testUpload(t))
	req := httptest.NewRequest(http.MethodPost, "/reports/10999", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})

	req := httptest.NewRequest(http.MethodDelete, "/reports", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != "GET,POST" {
		t.Fatalf("unexpected Allow header %q", got)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	handler := NewHandler(Config{Service: testService(t)})
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
