package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	q, err := parseQuantity("3")
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	q, err = parseQuantity("9999")
	require.NoError(t, err)
	assert.Equal(t, 9999, q)

	for _, raw := range []string{"0", "-1", "x", "", "10000", "4294967297"} {
		_, err := parseQuantity(raw)
		assert.Error(t, err, raw)
	}
}

func TestRunSetRejectsQuantityAboveCap(t *testing.T) {
	err := runSet(t.Context(), &app{}, []string{"p1", "10000"})
	require.EqualError(t, err, "quantity must not exceed 9999")
}
