package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

const defaultFilenameTemplate = "{{.Prefix}}_{{.Timestamp}}"

type filenameData struct {
	Prefix    string
	Variant   string
	Timestamp string
	Date      string
}

// renderFilename builds the download filename for a run. The timestamp
// component keeps repeated runs unique.
func renderFilename(v Variant, now time.Time) (string, error) {
	data := filenameData{
		Prefix:    v.FilenamePrefix,
		Variant:   v.Name,
		Timestamp: now.Format("20060102_150405"),
		Date:      now.Format("20060102"),
	}

	tmpl, err := template.New("filename").Parse(defaultFilenameTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	result := strings.TrimSpace(buf.String())
	if result == "" {
		return "", fmt.Errorf("empty filename")
	}
	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}
	return result, nil
}
