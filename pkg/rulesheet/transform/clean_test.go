package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{"nil", nil, nil},
		{"NaN", math.NaN(), nil},
		{"+Inf", math.Inf(1), nil},
		{"-Inf", math.Inf(-1), nil},
		{"float32 NaN", float32(math.NaN()), nil},
		{"empty", "", nil},
		{"true lower", "true", true},
		{"False mixed", "False", false},
		{"TRUE upper", "TRUE", true},
		{"int", int64(42), int64(42)},
		{"float", 2.5, 2.5},
		{"zero", int64(0), int64(0)},
		{"text", "Texas", "Texas"},
		{"space is text", " ", " "},
		{"bool", false, false},
		{"truthy text", "yes", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []interface{}{nil, "", "TRUE", "false", int64(7), 1.25, "text", math.NaN(), true}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean(Clean(%v))", in)
	}
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent(""))
	assert.True(t, IsAbsent(math.NaN()))
	assert.True(t, IsAbsent(math.Inf(1)))
	assert.False(t, IsAbsent(int64(0)))
	assert.False(t, IsAbsent(false))
	assert.False(t, IsAbsent(" "))
}

func TestText(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{false, "false"},
		{int64(13), "13"},
		{13, "13"},
		{2.5, "2.5"},
		{16.0, "16"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Text(tt.input), "Text(%v)", tt.input)
	}
}
