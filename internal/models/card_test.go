package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPIN(t *testing.T) {
	assert.True(t, ValidPIN("0000"))
	assert.True(t, ValidPIN("9876"))

	assert.False(t, ValidPIN(""))
	assert.False(t, ValidPIN("123"))
	assert.False(t, ValidPIN("12345"))
	assert.False(t, ValidPIN("12a4"))
	assert.False(t, ValidPIN("12 4"))
	assert.False(t, ValidPIN("١٢٣٤")) // non-ASCII digits are rejected
}
