package report

import (
	"os"
	"path/filepath"
	"strings"
)

// Logo is an optional image resource embedded into rendered workbooks.
type Logo struct {
	Data      []byte
	Extension string
}

// LogoSource supplies the optional logo. Absence and load failure are
// indistinguishable to callers: both report no logo, never an error.
type LogoSource interface {
	Logo() (Logo, bool)
}

// NopLogoSource never provides a logo.
type NopLogoSource struct{}

func (NopLogoSource) Logo() (Logo, bool) {
	return Logo{}, false
}

// FileLogoSource reads the logo from local storage on each call.
type FileLogoSource struct {
	Path string
}

func (s FileLogoSource) Logo() (Logo, bool) {
	if s.Path == "" {
		return Logo{}, false
	}
	data, err := os.ReadFile(s.Path)
	if err != nil || len(data) == 0 {
		return Logo{}, false
	}
	ext := strings.ToLower(filepath.Ext(s.Path))
	if ext == "" {
		ext = ".png"
	}
	return Logo{Data: data, Extension: ext}, true
}
