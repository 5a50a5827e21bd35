package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert.NotNil(t, Logger())
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want string
	}{
		{"bare digits", "11122233344", "111.***.333-**"},
		{"masked", "111.222.333-44", "111.***.333-**"},
		{"too short", "123", "***.***.***-**"},
		{"empty", "", "***.***.***-**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCPF(tt.cpf))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}

func TestMaskSensitiveData(t *testing.T) {
	data := map[string]interface{}{
		"fullName":   "Ana Souza",
		"cpf":        "111.222.333-44",
		"motherName": "Maria Souza",
		"password":   "INS1234567",
	}

	masked := MaskSensitiveData(data)

	assert.Equal(t, "Ana Souza", masked["fullName"])
	assert.Equal(t, "********", masked["cpf"])
	assert.Equal(t, "********", masked["motherName"])
	assert.Equal(t, "********", masked["password"])
	assert.Equal(t, "111.222.333-44", data["cpf"], "input map must not be modified")
}
