package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ParsePaginationParams lê page/limit da query string. Página mínima é 1,
// então o offset nunca fica negativo.
func ParsePaginationParams(values url.Values) (page int, limit int, offset int) {
	page = 1
	limit = DefaultLimit

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				limit = MaxLimit
			} else {
				limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	offset = (page - 1) * limit
	return
}
