package i18n

import (
	"reflect"
	"strings"

	"autocare/shared/constant"
)

// Suffix marks the alternate-language sibling of a field.
const Suffix = "Ar"

const (
	envelopeKeyStatus   = "status"
	envelopeKeyData     = "data"
	envelopeKeyLanguage = "language"
)

type reference struct {
	kind reflect.Kind
	ptr  uintptr
	size int
}

type visitedSet map[reference]struct{}

// markVisited reports whether value was already seen, recording it otherwise.
func (v visitedSet) markVisited(value reflect.Value) bool {
	ref := reference{kind: value.Kind(), ptr: value.Pointer(), size: value.Len()}

	if _, ok := v[ref]; ok {
		return true
	}

	v[ref] = struct{}{}

	return false
}

// Format collapses every K / K+"Ar" field pair of a JSON-like payload into K, keeping the
// alternate value under RTL and the base value otherwise. Objects and arrays are walked depth
// first; a composite reference met a second time is replaced by nil.
func Format(payload any, direction Direction) any {
	return format(payload, direction, visitedSet{})
}

func format(value any, direction Direction, visited visitedSet) any {
	switch typed := value.(type) {
	case map[string]any:
		if typed == nil {
			return typed
		}

		if visited.markVisited(reflect.ValueOf(typed)) {
			return nil
		}

		return formatObject(typed, direction, visited)
	case []any:
		if len(typed) == 0 {
			return typed
		}

		if visited.markVisited(reflect.ValueOf(typed)) {
			return nil
		}

		out := make([]any, len(typed))
		for idx, item := range typed {
			out[idx] = format(item, direction, visited)
		}

		return out
	default:
		return value
	}
}

func formatObject(object map[string]any, direction Direction, visited visitedSet) map[string]any {
	out := make(map[string]any, len(object))

	for key, value := range object {
		if isAlternateKey(object, key) {
			continue
		}

		alternate, paired := object[key+Suffix]
		if paired && direction == RTL && !isBlank(alternate) {
			out[key] = format(alternate, direction, visited)

			continue
		}

		out[key] = format(value, direction, visited)
	}

	return out
}

func isAlternateKey(object map[string]any, key string) bool {
	base, ok := strings.CutSuffix(key, Suffix)
	if !ok || base == "" {
		return false
	}

	_, paired := object[base]

	return paired
}

func isBlank(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	default:
		return false
	}
}

// Envelope formats payload for lang and, for a top-level {status: "success", data: ...} object,
// attaches the language block.
func Envelope(payload any, lang Language) any {
	formatted := Format(payload, lang.Direction)

	document, ok := formatted.(map[string]any)
	if !ok {
		return formatted
	}

	status, _ := document[envelopeKeyStatus].(string)
	if status == constant.ResponseStatusSuccess && document[envelopeKeyData] != nil {
		document[envelopeKeyLanguage] = lang
	}

	return document
}
