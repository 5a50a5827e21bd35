package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantDDI  string
		wantDDD  string
		wantE164 string
		wantErr  bool
	}{
		{
			name:     "masked mobile as typed in the form",
			phone:    "(11) 99988-7766",
			wantDDI:  "55",
			wantDDD:  "11",
			wantE164: "+5511999887766",
		},
		{
			name:     "mobile with country code",
			phone:    "+5521987654321",
			wantDDI:  "55",
			wantDDD:  "21",
			wantE164: "+5521987654321",
		},
		{
			name:     "mobile with country code without plus",
			phone:    "5521987654321",
			wantDDI:  "55",
			wantDDD:  "21",
			wantE164: "+5521987654321",
		},
		{
			name:     "landline",
			phone:    "(21) 3333-4444",
			wantDDI:  "55",
			wantDDD:  "21",
			wantE164: "+552133334444",
		},
		{
			name:    "empty",
			phone:   "   ",
			wantErr: true,
		},
		{
			name:    "garbage",
			phone:   "abc",
			wantErr: true,
		},
		{
			name:    "too short",
			phone:   "123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneNumber(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDDI, got.DDI)
			assert.Equal(t, tt.wantDDD, got.DDD)
			assert.Equal(t, tt.wantE164, got.E164)
		})
	}
}

func TestNormalizePhoneE164(t *testing.T) {
	e164, ok := NormalizePhoneE164("(11) 99988-7766")
	assert.True(t, ok)
	assert.Equal(t, "+5511999887766", e164)

	e164, ok = NormalizePhoneE164("ligar depois")
	assert.False(t, ok)
	assert.Empty(t, e164)
}
