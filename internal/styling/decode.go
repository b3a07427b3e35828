package styling

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	arraySpanRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectSpanRe = regexp.MustCompile(`(?s)\{.*\}`)
	fenceRe      = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
)

// ParseError reports that a reasoning response could not be decoded against
// the expected shape. The raw text travels with the error for diagnostics and
// is never shown to end callers.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing reasoning response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// stripFences removes markdown code-fence wrappers some models add around
// JSON payloads.
func stripFences(raw string) string {
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// decodeArray decodes raw into out (a pointer to a slice): strict parse
// first, then the first [...] span.
func decodeArray(raw string, out any) error {
	return decodeWithFallback(raw, out, arraySpanRe)
}

// decodeObject decodes raw into out (a pointer to a struct): strict parse
// first, then the first {...} span.
func decodeObject(raw string, out any) error {
	return decodeWithFallback(raw, out, objectSpanRe)
}

func decodeWithFallback(raw string, out any, spanRe *regexp.Regexp) error {
	cleaned := stripFences(raw)

	strictErr := json.Unmarshal([]byte(cleaned), out)
	if strictErr == nil {
		return nil
	}

	if span := spanRe.FindString(cleaned); span != "" {
		if err := json.Unmarshal([]byte(span), out); err == nil {
			return nil
		}
	}

	return &ParseError{Raw: raw, Err: strictErr}
}
