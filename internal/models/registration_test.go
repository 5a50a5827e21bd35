package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	assert.Equal(t, []string{"corrente", "poupanca"}, AccountTypeOptions.Values())
	assert.Equal(t, "Street Photography", CategoryOptions.Label("street"))
	assert.Equal(t, "desconhecida", CategoryOptions.Label("desconhecida"))
	assert.True(t, GenderOptions.Contains("prefiro-nao-dizer"))
	assert.False(t, GenderOptions.Contains(""))
}

func TestAllRegistrationOptions(t *testing.T) {
	all := AllRegistrationOptions()

	assert.Len(t, all.Categories, 6)
	assert.Len(t, all.Genders, 4)
	assert.Len(t, all.Banks, 10)
	assert.Len(t, all.PhotoStatuses, 3)
}

func TestPhotoStatus(t *testing.T) {
	assert.Equal(t, "Pendente", PhotoStatusPending.Label())
	assert.Equal(t, "Aprovada", PhotoStatusApproved.Label())
	assert.Equal(t, "Rejeitada", PhotoStatusRejected.Label())
	assert.True(t, PhotoStatusApproved.IsValid())
	assert.False(t, PhotoStatus("archived").IsValid())
}

func TestNewParticipant(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	record := RegistrationRecord{
		Category:      "retrato",
		CPF:           "111.222.333-44",
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		Address:       "Praça da Sé",
		AddressNumber: "100",
		City:          "São Paulo",
		Bank:          "341",
		ImageRights:   true,
		PrivacyTerms:  true,
	}

	p := NewParticipant("id-1", "48213907", "11122233344", "hash", record, now)

	assert.Equal(t, "11122233344", p.CPF)
	assert.Equal(t, "Praça da Sé", p.Address.Street)
	assert.Equal(t, "100", p.Address.Number)
	assert.Equal(t, "341", p.BankAccount.Bank)
	assert.True(t, p.MustChangePassword)
	assert.Equal(t, now, p.CreatedAt)
}

func TestJWTClaims_IsAdminNilAndRoles(t *testing.T) {
	var nilClaims *JWTClaims
	assert.False(t, nilClaims.IsAdmin())
	assert.True(t, (&JWTClaims{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&JWTClaims{Role: RoleParticipant}).IsAdmin())
}
