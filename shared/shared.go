package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"autocare/shared/cache"
	"autocare/shared/constant"
	"autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// TransformFields converts the non-zero db-tagged fields of a struct into a column map for an
// update, stamping modification metadata.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// PathID returns the {id} route parameter. A value that is not a uuid can never match a row, so it
// answers with the entity's not found failure.
func PathID(r *http.Request, notFound string) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)
	if err := uuid.Validate(id); err != nil {
		return "", failure.NotFound(notFound)
	}

	return id, nil
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterEq(fieldID, id, table)
}

// FilterEq builds a single-condition equality filter.
func FilterEq(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key for a listing from its pagination and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches removes every key under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Actor returns the authenticated user ID stored on ctx, or the guest marker for anonymous calls.
func Actor(ctx context.Context) string {
	if userID, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && userID != "" {
		return userID
	}

	return constant.ContextGuest
}
