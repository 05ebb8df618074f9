package shared

import (
	"context"
	"strconv"
	"strings"

	"todoapi/shared/cache"
	"todoapi/shared/dto"
	"todoapi/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ParseID parses a path identifier. Anything that is not a base-10 int64 is a
// bad request.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// InvalidateCaches removes every key under prefix. Failures are logged only;
// the entries expire on their own.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := prefix + "*"

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}
