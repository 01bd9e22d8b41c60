package report

import (
	"fmt"
	"strings"
)

// ValidateUploadName enforces the variant's required filename token. The
// check runs before any parsing; failure is the pipeline's only hard stop
// and produces no artifact.
func ValidateUploadName(filename string, v Variant) error {
	if v.RequiredToken == "" {
		return nil
	}
	if strings.TrimSpace(filename) == "" {
		return NewError(KindRejected, fmt.Sprintf("filename is required and must include %q", v.RequiredToken), nil)
	}
	if !strings.Contains(filename, v.RequiredToken) {
		return NewError(KindRejected, fmt.Sprintf("filename must include %q", v.RequiredToken), nil)
	}
	return nil
}
