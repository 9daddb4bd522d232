package won

import (
	"testing"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   models.Amount
		expected string
	}{
		{
			name:     "empty string",
			amount:   "",
			expected: "",
		},
		{
			name:     "zero",
			amount:   "0",
			expected: "",
		},
		{
			name:     "negative",
			amount:   "-5000",
			expected: "",
		},
		{
			name:     "non-numeric",
			amount:   "문의",
			expected: "",
		},
		{
			name:     "one eok five thousand man",
			amount:   "150000000",
			expected: "1억 5000만원",
		},
		{
			name:     "exact eok multiple",
			amount:   "200000000",
			expected: "2억원",
		},
		{
			name:     "sub-man remainder above eok is floored",
			amount:   "150009999",
			expected: "1억 5000만원",
		},
		{
			name:     "man range",
			amount:   "78000000",
			expected: "7800만원",
		},
		{
			name:     "man range floors remainder",
			amount:   "78005000",
			expected: "7800만원",
		},
		{
			name:     "below man",
			amount:   "500",
			expected: "500원",
		},
		{
			name:     "below man with grouping",
			amount:   "9500",
			expected: "9,500원",
		},
		{
			name:     "comma separated input",
			amount:   "150,000,000",
			expected: "1억 5000만원",
		},
		{
			name:     "whitespace padded input",
			amount:   " 78000000 ",
			expected: "7800만원",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount))
		})
	}
}

func TestComma(t *testing.T) {
	assert.Equal(t, "500", comma(500))
	assert.Equal(t, "1,000", comma(1000))
	assert.Equal(t, "123,456,789", comma(123456789))
}
