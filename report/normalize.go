package report

import (
	"regexp"
	"strings"
)

type labelRule struct {
	pattern *regexp.Regexp
	field   string
}

// labelRules map raw export labels to canonical field names. Evaluated in
// order: more specific patterns sit above the generic ones they overlap
// with. Unmatched labels pass through trimmed.
var labelRules = []labelRule{
	{regexp.MustCompile(`(?i)authorization:\s*regarding my child`), FieldChildName},
	{regexp.MustCompile(`(?i)authorization.*date`), FieldAuthorizationDate},
	{regexp.MustCompile(`(?i)IEP/IFSP\s*Dis:Identified`), FieldDisabilityIdentified},
	{regexp.MustCompile(`(?i)primary\s*disability`), FieldPrimaryDisability},
	{regexp.MustCompile(`(?i)\bcenter name\b|\bcenter\b`), FieldCenter},
	{regexp.MustCompile(`(?i)\bclass name\b|\bclass\b`), FieldClass},
	{regexp.MustCompile(`(?i)\bparticipant pid\b|\bpid\b`), FieldPID},
	{regexp.MustCompile(`(?i)\bfirst name\b`), FieldFirstName},
	{regexp.MustCompile(`(?i)\blast name\b`), FieldLastName},
}

// CanonicalLabel maps a raw column label to its canonical field name. Pure
// and idempotent: canonical names map to themselves.
func CanonicalLabel(label string) string {
	s := strings.TrimSpace(label)
	for _, rule := range labelRules {
		if rule.pattern.MatchString(s) {
			return rule.field
		}
	}
	return s
}

// CanonicalLabels maps a header row in place order, preserving unknown
// labels. Dropping happens later, during projection.
func CanonicalLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = CanonicalLabel(label)
	}
	return out
}

// SplitName splits a combined full name into first and last parts using a
// last-token-is-surname heuristic. Multi-word surnames and suffixes are
// known to split wrong; the behavior is kept for output compatibility.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}
