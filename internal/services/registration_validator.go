package services

import (
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
)

// RegistrationValidator checks a candidate registration against the
// registration rule table. It has no dependencies and no side effects.
type RegistrationValidator struct {
	form *FormValidator[models.RegistrationRecord]
}

// NewRegistrationValidator creates a validator; strictCPF enables the CPF
// check digit verification
func NewRegistrationValidator(strictCPF bool) *RegistrationValidator {
	return &RegistrationValidator{
		form: NewFormValidator("registration", RegistrationRules(strictCPF)),
	}
}

// Validate returns the normalized record, or the failing fields with a
// message each. Exactly one of the results is non-nil.
func (v *RegistrationValidator) Validate(candidate models.RegistrationRecord) (*models.RegistrationRecord, models.FieldErrors) {
	record, fields := v.form.Validate(candidate)
	if len(fields) > 0 {
		return nil, fields
	}

	// Unparseable phones are kept as typed
	if e164, ok := utils.NormalizePhoneE164(record.Phone); ok {
		record.PhoneE164 = e164
	} else {
		record.PhoneE164 = ""
	}

	return &record, nil
}
