package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"sem parâmetros", "", 1, DefaultLimit, 0},
		{"página e limite válidos", "page=3&limit=20", 3, 20, 40},
		{"limite acima do teto", "limit=9999", 1, MaxLimit, 0},
		{"página zero vira primeira", "page=0", 1, DefaultLimit, 0},
		{"página negativa vira primeira", "page=-2&limit=10", 1, 10, 0},
		{"página não numérica vira primeira", "page=abc", 1, DefaultLimit, 0},
		{"limite não numérico vira padrão", "limit=xyz&page=2", 2, DefaultLimit, DefaultLimit},
		{"limite zero vira padrão", "limit=0", 1, DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			page, limit, offset := ParsePaginationParams(values)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
