package services

import (
	"testing"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormValidator_Login(t *testing.T) {
	v := NewFormValidator("login", LoginRules())

	form, fields := v.Validate(models.LoginRequest{Email: " Ana@Example.com ", Password: "INS1234567"})
	assert.Empty(t, fields)
	assert.Equal(t, "ana@example.com", form.Email)

	_, fields = v.Validate(models.LoginRequest{Email: "ana@example.com", Password: "12345"})
	assert.Equal(t, models.FieldErrors{"password": "Senha deve ter pelo menos 6 caracteres"}, fields)

	_, fields = v.Validate(models.LoginRequest{Email: "ana", Password: ""})
	assert.Equal(t, []string{"email", "password"}, fields.Fields())
}

func TestFormValidator_PasswordChange(t *testing.T) {
	v := NewFormValidator("password_change", PasswordChangeRules())

	_, fields := v.Validate(models.PasswordChangeRequest{CurrentPassword: "INS1234567", NewPassword: "nova-senha-forte"})
	assert.Empty(t, fields)

	_, fields = v.Validate(models.PasswordChangeRequest{NewPassword: "curta"})
	assert.Equal(t, []string{"current_password", "new_password"}, fields.Fields())
}

func TestFormValidator_PhotoMetadata(t *testing.T) {
	v := NewFormValidator("photo", PhotoMetadataRules())

	form, fields := v.Validate(models.PhotoMetadata{
		Title:    "  Pôr do sol  ",
		Category: "paisagem",
		Date:     "2026-03-15",
	})
	assert.Empty(t, fields)
	assert.Equal(t, "Pôr do sol", form.Title)

	_, fields = v.Validate(models.PhotoMetadata{Title: "P", Category: "selfie", Date: "15/03/2026"})
	assert.Equal(t, []string{"category", "date", "title"}, fields.Fields())

	_, fields = v.Validate(models.PhotoMetadata{Title: "Sem data", Category: "macro"})
	assert.Empty(t, fields)
}

func TestFormValidator_UnsupportedFieldType(t *testing.T) {
	type form struct{ Count int }
	v := NewFormValidator("bad", []FieldRule[form]{
		{Field: "count", Tag: "required", Message: "invalid", Value: func(f *form) any { return &f.Count }},
	})

	_, fields := v.Validate(form{Count: 1})

	assert.Equal(t, models.FieldErrors{"count": "invalid"}, fields)
	assert.Equal(t, "bad", v.Name())
}

func TestOneOf(t *testing.T) {
	assert.Equal(t, "required,oneof=corrente poupanca", oneOf(models.AccountTypeOptions))
}
