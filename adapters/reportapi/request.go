package reportapi

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/hchsp/go-authreport/report"
)

// Request provides minimal request access for transport adapters.
type Request interface {
	Context() context.Context
	Method() string
	Path() string
	Header(name string) string
	Body() io.ReadCloser
}

// uploadFieldName is the multipart form field carrying the export file.
const uploadFieldName = "file"

// Upload is a decoded multipart file upload.
type Upload struct {
	Filename string
	Data     []byte
}

// decodeUpload extracts the uploaded export from a multipart form body.
// The transport only has to expose the raw body and headers; parsing
// happens here so every adapter shares the same rules.
func decodeUpload(req Request, maxBytes int64) (Upload, error) {
	body := req.Body()
	if body == nil {
		return Upload{}, report.NewError(report.KindValidation, "request body is required", nil)
	}
	defer func() {
		_ = body.Close()
	}()

	mediaType, params, err := mime.ParseMediaType(req.Header("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return Upload{}, report.NewError(report.KindValidation, "multipart form upload is required", err)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return Upload{}, report.NewError(report.KindValidation, "multipart boundary is required", nil)
	}

	reader := multipart.NewReader(io.LimitReader(body, maxBytes+1), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Upload{}, report.NewError(report.KindValidation, "malformed multipart body", err)
		}
		if part.FormName() != uploadFieldName {
			_ = part.Close()
			continue
		}
		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return Upload{}, report.NewError(report.KindValidation, "unable to read upload", err)
		}
		if int64(len(data)) > maxBytes {
			return Upload{}, report.NewError(report.KindValidation, "upload exceeds size limit", nil)
		}
		return Upload{Filename: part.FileName(), Data: data}, nil
	}
	return Upload{}, report.NewError(report.KindValidation, "form field \"file\" is required", nil)
}
