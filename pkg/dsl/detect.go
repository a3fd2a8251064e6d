package dsl

import (
	"regexp"
	"strings"

	"github.com/archpad/archpad/pkg/codec"
)

// Format identifies which interchange form a piece of pasted text is in.
type Format string

const (
	// FormatStructured is the codec's plain structured (JSON) form.
	FormatStructured Format = "structured"
	// FormatDSL is the nested-group diagram language.
	FormatDSL Format = "dsl"
	// FormatUnknown is anything else.
	FormatUnknown Format = "unknown"
)

var labelIconRe = regexp.MustCompile(`\[\s*label:.*icon:`)

// Detect classifies pasted text. Detection is heuristic and best-effort:
// it never fails, and ambiguous or malformed text classifies as unknown.
//
// The structured branch requires a recognizable envelope marker (format
// version or a collection), so arbitrary JSON does not shadow the DSL
// heuristics.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FormatUnknown
	}

	if codec.ParseStructured([]byte(trimmed)) != nil {
		return FormatStructured
	}

	if looksLikeDSL(trimmed) {
		return FormatDSL
	}
	return FormatUnknown
}

func looksLikeDSL(text string) bool {
	if strings.Contains(text, "direction ") {
		return true
	}
	if labelIconRe.MatchString(text) {
		return true
	}
	if strings.Contains(text, "{") && strings.Contains(text, "icon:") {
		return true
	}
	for _, prefix := range KnownIconPrefixes {
		if strings.Contains(text, "icon: "+prefix) {
			return true
		}
	}
	return false
}
