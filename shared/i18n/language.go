package i18n

import (
	"context"
	"strings"

	"autocare/shared/constant"

	"golang.org/x/text/language"
)

// Direction is the text direction of a resolved language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

const (
	DefaultLanguage = "en"
)

var rtlLanguages = map[string]struct{}{
	"ar": {},
	"he": {},
	"fa": {},
	"ur": {},
}

// Language is the per-request locale attached to success envelopes.
type Language struct {
	Code      string    `json:"code"`
	Direction Direction `json:"direction"`
	IsRTL     bool      `json:"isRTL"`
}

// New builds a Language from a code, deriving its direction.
func New(code string) Language {
	code = primarySubtag(code)
	if code == "" {
		code = DefaultLanguage
	}

	_, isRTL := rtlLanguages[code]

	direction := LTR
	if isRTL {
		direction = RTL
	}

	return Language{
		Code:      code,
		Direction: direction,
		IsRTL:     isRTL,
	}
}

// Resolve picks the query-parameter locale when present, then the primary subtag of the
// highest-weighted Accept-Language entry, then fallback.
func Resolve(queryLang, acceptLanguage, fallback string) Language {
	if code := primarySubtag(queryLang); code != "" {
		return New(code)
	}

	if code := fromAcceptLanguage(acceptLanguage); code != "" {
		return New(code)
	}

	return New(fallback)
}

func fromAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	// "*" parses as "mul" and carries no concrete language.
	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); code != "und" && code != "mul" {
			return code
		}
	}

	return ""
}

func primarySubtag(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))

	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}

	return code
}

// WithLanguage stores lang in ctx.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, constant.ContextKeyLanguage, lang)
}

// FromContext returns the language stored by WithLanguage, or the default language.
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(constant.ContextKeyLanguage).(Language); ok {
		return lang
	}

	return New(DefaultLanguage)
}
