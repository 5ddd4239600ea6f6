package middlewares

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"well-formed", "Bearer 663a1f2e8b3c4d5e6f708192", "663a1f2e8b3c4d5e6f708192", true},
		{"missing header", "", "", false},
		{"missing prefix", "663a1f2e8b3c4d5e6f708192", "", false},
		{"wrong prefix", "Basic 663a1f2e8b3c4d5e6f708192", "", false},
		{"lowercase prefix", "bearer 663a1f2e8b3c4d5e6f708192", "", false},
		{"trailing garbage", "Bearer abc def", "", false},
		{"prefix only", "Bearer", "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			token, ok := bearerToken(testCase.header)

			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.want, token)
		})
	}
}
