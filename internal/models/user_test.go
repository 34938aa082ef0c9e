package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"priya@example.com", "priya"},
		{"a.b+tag@example.co.in", "a.b+tag"},
		{"no-at-sign", "no-at-sign"},
		{"@leading", "@leading"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DisplayNameFromEmail(tc.email), tc.email)
	}
}
