package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/shared/i18n"
)

func TestFormat_PairedFields(t *testing.T) {
	payload := map[string]any{
		"name":   "Oil change",
		"nameAr": "تغيير الزيت",
		"price":  120,
	}

	rtl := i18n.Format(payload, i18n.RTL).(map[string]any)
	assert.Equal(t, map[string]any{"name": "تغيير الزيت", "price": 120}, rtl)

	ltr := i18n.Format(payload, i18n.LTR).(map[string]any)
	assert.Equal(t, map[string]any{"name": "Oil change", "price": 120}, ltr)
}

func TestFormat_UnpairedFieldsAreUntouched(t *testing.T) {
	payload := map[string]any{
		"name":     "Brake check",
		"category": "maintenance",
		"tagsAr":   []any{"فرامل"},
	}

	for _, direction := range []i18n.Direction{i18n.LTR, i18n.RTL} {
		assert.Equal(t, payload, i18n.Format(payload, direction))
	}
}

func TestFormat_BlankAlternateFallsBackToBase(t *testing.T) {
	payload := map[string]any{
		"title":   "Winter tips",
		"titleAr": "",
		"body":    "text",
		"bodyAr":  nil,
	}

	out := i18n.Format(payload, i18n.RTL).(map[string]any)
	assert.Equal(t, map[string]any{"title": "Winter tips", "body": "text"}, out)
}

func TestFormat_Nested(t *testing.T) {
	payload := map[string]any{
		"status": "success",
		"data": []any{
			map[string]any{
				"service": map[string]any{"name": "Tyres", "nameAr": "الإطارات"},
				"notes":   "front left",
			},
			"plain",
			42.5,
			nil,
		},
	}

	out := i18n.Format(payload, i18n.RTL).(map[string]any)
	data := out["data"].([]any)
	require.Len(t, data, 4)

	first := data[0].(map[string]any)
	assert.Equal(t, map[string]any{"name": "الإطارات"}, first["service"])
	assert.Equal(t, "front left", first["notes"])
	assert.Equal(t, "plain", data[1])
	assert.Equal(t, 42.5, data[2])
	assert.Nil(t, data[3])
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	payload := map[string]any{"name": "a", "nameAr": "b"}

	_ = i18n.Format(payload, i18n.RTL)

	assert.Equal(t, map[string]any{"name": "a", "nameAr": "b"}, payload)
}

func TestFormat_Scalars(t *testing.T) {
	assert.Equal(t, "text", i18n.Format("text", i18n.RTL))
	assert.Equal(t, 3, i18n.Format(3, i18n.LTR))
	assert.Nil(t, i18n.Format(nil, i18n.RTL))
	assert.Equal(t, true, i18n.Format(true, i18n.RTL))
}

func TestFormat_SelfReferenceTerminates(t *testing.T) {
	payload := map[string]any{"name": "loop", "nameAr": "حلقة"}
	payload["self"] = payload

	list := []any{"x", nil}
	list[1] = list
	payload["list"] = list

	var out any
	assert.NotPanics(t, func() {
		out = i18n.Format(payload, i18n.RTL)
	})

	object := out.(map[string]any)
	assert.Equal(t, "حلقة", object["name"])
	assert.Nil(t, object["self"])

	formattedList := object["list"].([]any)
	assert.Equal(t, "x", formattedList[0])
	assert.Nil(t, formattedList[1])
}

func TestEnvelope_AttachesLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Language
	}{
		{name: "rtl", lang: i18n.New("ar")},
		{name: "ltr", lang: i18n.New("en")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{
				"status": "success",
				"data":   map[string]any{"title": "Hello", "titleAr": "مرحبا"},
			}

			out := i18n.Envelope(payload, tt.lang).(map[string]any)

			lang, ok := out["language"].(i18n.Language)
			require.True(t, ok)
			assert.Equal(t, tt.lang.IsRTL, lang.IsRTL)
			assert.Equal(t, tt.lang.Code, lang.Code)
			assert.Equal(t, tt.lang.Direction, lang.Direction)
		})
	}
}

func TestEnvelope_SkipsNonSuccess(t *testing.T) {
	fail := map[string]any{"status": "fail", "message": "nope"}
	out := i18n.Envelope(fail, i18n.New("ar")).(map[string]any)
	assert.NotContains(t, out, "language")

	noData := map[string]any{"status": "success", "message": "done"}
	out = i18n.Envelope(noData, i18n.New("ar")).(map[string]any)
	assert.NotContains(t, out, "language")

	assert.Equal(t, []any{"a"}, i18n.Envelope([]any{"a"}, i18n.New("ar")))
}

func TestNew(t *testing.T) {
	tests := []struct {
		code string
		want i18n.Language
	}{
		{code: "ar", want: i18n.Language{Code: "ar", Direction: i18n.RTL, IsRTL: true}},
		{code: "HE", want: i18n.Language{Code: "he", Direction: i18n.RTL, IsRTL: true}},
		{code: "fa-IR", want: i18n.Language{Code: "fa", Direction: i18n.RTL, IsRTL: true}},
		{code: "ur", want: i18n.Language{Code: "ur", Direction: i18n.RTL, IsRTL: true}},
		{code: "en-US", want: i18n.Language{Code: "en", Direction: i18n.LTR, IsRTL: false}},
		{code: "", want: i18n.Language{Code: "en", Direction: i18n.LTR, IsRTL: false}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.New(tt.code))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		fallback       string
		wantCode       string
		wantRTL        bool
	}{
		{name: "query wins", query: "ar", acceptLanguage: "en-US,en;q=0.9", fallback: "en", wantCode: "ar", wantRTL: true},
		{name: "query region stripped", query: "ar-SA", fallback: "en", wantCode: "ar", wantRTL: true},
		{name: "accept language primary subtag", acceptLanguage: "he-IL,he;q=0.9,en;q=0.5", fallback: "en", wantCode: "he", wantRTL: true},
		{name: "accept language weight order", acceptLanguage: "en;q=0.4,ar;q=0.9", fallback: "en", wantCode: "ar", wantRTL: true},
		{name: "accept language ltr", acceptLanguage: "fr-FR", fallback: "ar", wantCode: "fr", wantRTL: false},
		{name: "wildcard falls back", acceptLanguage: "*", fallback: "ar", wantCode: "ar", wantRTL: true},
		{name: "wildcard skipped for concrete tag", acceptLanguage: "*, fr;q=0.5", fallback: "ar", wantCode: "fr", wantRTL: false},
		{name: "malformed falls back", acceptLanguage: "@@@", fallback: "en", wantCode: "en", wantRTL: false},
		{name: "nothing falls back", fallback: "en", wantCode: "en", wantRTL: false},
		{name: "empty fallback uses default", wantCode: "en", wantRTL: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := i18n.Resolve(tt.query, tt.acceptLanguage, tt.fallback)

			assert.Equal(t, tt.wantCode, lang.Code)
			assert.Equal(t, tt.wantRTL, lang.IsRTL)
		})
	}
}

func TestContext(t *testing.T) {
	assert.Equal(t, i18n.New("en"), i18n.FromContext(context.Background()))

	ctx := i18n.WithLanguage(context.Background(), i18n.New("ar"))
	assert.True(t, i18n.FromContext(ctx).IsRTL)
}
