package httputil

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

var (
	ErrBadLimit = errors.New("limit must be an integer between 1 and 50")
	ErrBadPage  = errors.New("page must be a positive integer")
)

// Pagination reads limit and page query params. Absent params take defaults
// (limit 10, page 1).
func Pagination(r *http.Request) (limit, offset int, err error) {
	limit, page := DefaultLimit, 1
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, ErrBadLimit
		}
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, ErrBadPage
		}
	}
	return limit, (page - 1) * limit, nil
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
}
