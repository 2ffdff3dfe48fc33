package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library-backend/internal/domains/author"
)

func TestBuildWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   author.Filter
		expected string
		args     []interface{}
	}{
		{
			name:     "empty filter",
			filter:   author.Filter{},
			expected: "1=1",
			args:     []interface{}{},
		},
		{
			name:     "name substring",
			filter:   author.Filter{Name: "lee"},
			expected: "1=1 AND name ILIKE $1",
			args:     []interface{}{"%lee%"},
		},
		{
			name:     "birth year prefix",
			filter:   author.Filter{BirthYear: "1926"},
			expected: "1=1 AND to_char(born_date, 'YYYY-MM-DD') LIKE $1",
			args:     []interface{}{"1926%"},
		},
		{
			name:     "name and birth year",
			filter:   author.Filter{Name: "lee", BirthYear: "1926"},
			expected: "1=1 AND name ILIKE $1 AND to_char(born_date, 'YYYY-MM-DD') LIKE $2",
			args:     []interface{}{"%lee%", "1926%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := buildWhereClause(tt.filter)
			assert.Equal(t, tt.expected, clause)
			assert.Equal(t, tt.args, args)
		})
	}
}
