package codegen_test

import (
	"testing"
	"time"

	"gudang/pkg/codegen"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "FOO", codegen.Prefix("Footwear"))
	assert.Equal(t, "ELE", codegen.Prefix("electronics"))
	// Non-letters are stripped before truncation.
	assert.Equal(t, "KID", codegen.Prefix("4 Kids & Co"))
	// Fewer than three letters available: shorter prefix, no padding.
	assert.Equal(t, "TV", codegen.Prefix("TV"))
	assert.Equal(t, "X", codegen.Prefix("x-1"))
	assert.Equal(t, "", codegen.Prefix("123"))
	// Letters outside A-Z never reach the prefix.
	assert.Equal(t, "KOL", codegen.Prefix("Ökologie"))
	assert.Equal(t, "", codegen.Prefix("日用品"))
}

func TestFormatProductCode(t *testing.T) {
	assert.Equal(t, "FOO001", codegen.FormatProductCode("FOO", 1))
	assert.Equal(t, "FOO042", codegen.FormatProductCode("FOO", 42))
	assert.Equal(t, "TV117", codegen.FormatProductCode("TV", 117))
}

func TestParseSequence(t *testing.T) {
	seq, ok := codegen.ParseSequence("FOO003", "FOO")
	assert.True(t, ok)
	assert.Equal(t, 3, seq)

	seq, ok = codegen.ParseSequence("TV999", "TV")
	assert.True(t, ok)
	assert.Equal(t, 999, seq)

	// Wrong prefix, wrong length, or non-numeric suffix.
	_, ok = codegen.ParseSequence("BAR003", "FOO")
	assert.False(t, ok)
	_, ok = codegen.ParseSequence("FOO0003", "FOO")
	assert.False(t, ok)
	_, ok = codegen.ParseSequence("FOO0x3", "FOO")
	assert.False(t, ok)
}

func TestBatchNumber(t *testing.T) {
	created := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "BATCH_FOO001_070325", codegen.BatchNumber("FOO001", created))

	created = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BATCH_TV010_311224", codegen.BatchNumber("TV010", created))
}
