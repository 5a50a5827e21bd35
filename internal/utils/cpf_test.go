package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{name: "valid without formatting", cpf: "12345678909", valid: true},
		{name: "valid with formatting", cpf: "123.456.789-09", valid: true},
		{name: "valid real example 1", cpf: "11144477735", valid: true},
		{name: "valid real example 2", cpf: "52998224725", valid: true},
		{name: "wrong first check digit", cpf: "12345678919", valid: false},
		{name: "wrong second check digit", cpf: "12345678900", valid: false},
		{name: "all zeros", cpf: "00000000000", valid: false},
		{name: "all ones", cpf: "11111111111", valid: false},
		{name: "too short", cpf: "1234567890", valid: false},
		{name: "too long", cpf: "123456789091", valid: false},
		{name: "empty", cpf: "", valid: false},
		{name: "letters only", cpf: "abc.def.ghi-jk", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCPF(tt.cpf))
		})
	}
}

func TestCleanCPF(t *testing.T) {
	assert.Equal(t, "11122233344", CleanCPF("111.222.333-44"))
	assert.Equal(t, "11122233344", CleanCPF(" 11122233344 "))
	assert.Equal(t, "", CleanCPF("..-"))
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"11122233344", "111.222.333-44"},
		{"111.222.333-44", "111.222.333-44"},
		{"111 222 333 44", "111.222.333-44"},
		{"1112223", "111.222.3"},
		{"111", "111"},
		{"", ""},
		{"111222333445", "111222333445"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.input))
		})
	}
}

func TestIsMaskedCPF(t *testing.T) {
	assert.True(t, IsMaskedCPF("111.222.333-44"))
	assert.False(t, IsMaskedCPF("11122233344"))
	assert.False(t, IsMaskedCPF("111.222.333-4"))
	assert.False(t, IsMaskedCPF("111.222.333-4a"))
	assert.False(t, IsMaskedCPF("111-222-333.44"))
}
