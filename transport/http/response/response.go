package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/i18n"
	"autocare/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data is the success envelope documented for single resources.
type Data[T any] struct {
	Status   string         `json:"status"`
	Data     *T             `json:"data,omitempty"`
	Language *i18n.Language `json:"language,omitempty"`
}

// Paginated is the success envelope documented for list endpoints.
type Paginated[T any] struct {
	Status   string         `json:"status"`
	Results  int            `json:"results"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
	Data     []T            `json:"data"`
	Language *i18n.Language `json:"language,omitempty"`
}

type Error struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Status: statusFor(code), Message: message})
}

// WithJSON sends an envelope around payload, localized for the request language.
func WithJSON(writer http.ResponseWriter, request *http.Request, code int, payload any) {
	localized(writer, request, code, Data[any]{Status: statusFor(code), Data: &payload})
}

// WithPage sends a paginated success envelope, localized for the request language.
func WithPage[T any](writer http.ResponseWriter, request *http.Request, page gDto.Page[T]) {
	data := page.Data
	if data == nil {
		data = []T{}
	}

	localized(writer, request, http.StatusOK, Paginated[T]{
		Status:  constant.ResponseStatusSuccess,
		Results: len(data),
		Total:   page.Total,
		Page:    page.Page,
		Pages:   page.Pages,
		Data:    data,
	})
}

// WithError sends a response with an error message. Errors without an explicit code are logged
// and reported as a generic internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if !failure.IsFailure(err) {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Status: statusFor(code), Message: errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func statusFor(code int) string {
	switch {
	case code >= http.StatusInternalServerError:
		return constant.ResponseStatusError
	case code >= http.StatusBadRequest:
		return constant.ResponseStatusFail
	default:
		return constant.ResponseStatusSuccess
	}
}

// localized round-trips payload through its JSON form so the formatter sees plain objects.
func localized(writer http.ResponseWriter, request *http.Request, code int, payload any) {
	document, err := toDocument(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		WithError(writer, err)

		return
	}

	lang := i18n.FromContext(request.Context())
	writer.Header().Set(constant.RequestHeaderContentLanguage, lang.Code)

	response(writer, code, i18n.Envelope(document, lang))
}

func toDocument(payload any) (any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response payload: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var document any
	if err = decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode response payload: %w", err)
	}

	return document, nil
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
