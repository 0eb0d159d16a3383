package http

import (
	"net/http"
	"strconv"

	"lawnmow/pkg/config"
	apperrors "lawnmow/pkg/errors"
)

// ExtractLimitOffset parses pagination query parameters. Unparseable
// values are rejected outright rather than silently defaulted.
func ExtractLimitOffset(r *http.Request, cfg *config.Config) (int, int64, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	var offset int64 = 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = int64(v)
	}

	limit = cfg.NormalizeLimit(limit)
	offset = config.NormalizeOffset(offset)

	return limit, offset, nil
}
