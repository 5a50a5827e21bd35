package services

import (
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
)

type registrationRule = FieldRule[models.RegistrationRecord]

// RegistrationRules is the rule table of the public registration form.
// With strictCPF the CPF check digits are verified as well.
func RegistrationRules(strictCPF bool) []registrationRule {
	cpfTag := "required,cpfmask"
	if strictCPF {
		cpfTag += ",cpfdigits"
	}

	return []registrationRule{
		{
			Field:     "category",
			Tag:       oneOf(models.CategoryOptions),
			Message:   "Por favor, selecione uma categoria",
			Value:     func(r *models.RegistrationRecord) any { return &r.Category },
			Normalize: trim,
		},
		{
			Field:     "cpf",
			Tag:       cpfTag,
			Message:   "CPF inválido",
			Value:     func(r *models.RegistrationRecord) any { return &r.CPF },
			Normalize: func(s string) string { return utils.FormatCPF(trim(s)) },
		},
		{
			Field:     "fullName",
			Tag:       minLen(2),
			Message:   "Nome completo é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.FullName },
			Normalize: trim,
		},
		{
			Field:     "birthDate",
			Tag:       "required,datemask",
			Message:   "Data de nascimento é obrigatória",
			Value:     func(r *models.RegistrationRecord) any { return &r.BirthDate },
			Normalize: func(s string) string { return utils.FormatBirthDate(trim(s)) },
		},
		{
			Field:     "motherName",
			Tag:       minLen(2),
			Message:   "Nome da mãe é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.MotherName },
			Normalize: trim,
		},
		{
			Field:     "gender",
			Tag:       oneOf(models.GenderOptions),
			Message:   "Por favor, selecione o gênero",
			Value:     func(r *models.RegistrationRecord) any { return &r.Gender },
			Normalize: trim,
		},
		{
			Field:     "email",
			Tag:       "required,email",
			Message:   "E-mail inválido",
			Value:     func(r *models.RegistrationRecord) any { return &r.Email },
			Normalize: lowerTrim,
		},
		{
			Field:     "phone",
			Tag:       "required",
			Message:   "Telefone é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.Phone },
			Normalize: trim,
		},
		{
			Field:     "instagram",
			Value:     func(r *models.RegistrationRecord) any { return &r.Instagram },
			Normalize: trim,
		},
		{
			Field:     "howDidYouKnow",
			Tag:       oneOf(models.HowDidYouKnowOptions),
			Message:   "Por favor, informe como conheceu o concurso",
			Value:     func(r *models.RegistrationRecord) any { return &r.HowDidYouKnow },
			Normalize: trim,
		},
		{
			Field:     "cep",
			Tag:       "required",
			Message:   "CEP é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.CEP },
			Normalize: trim,
		},
		{
			Field:     "address",
			Tag:       "required",
			Message:   "Endereço é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.Address },
			Normalize: trim,
		},
		{
			Field:     "addressNumber",
			Tag:       "required",
			Message:   "Número é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.AddressNumber },
			Normalize: trim,
		},
		{
			Field:     "complement",
			Value:     func(r *models.RegistrationRecord) any { return &r.Complement },
			Normalize: trim,
		},
		{
			Field:     "neighborhood",
			Tag:       "required",
			Message:   "Bairro é obrigatório",
			Value:     func(r *models.RegistrationRecord) any { return &r.Neighborhood },
			Normalize: trim,
		},
		{
			Field:     "city",
			Tag:       "required",
			Message:   "Cidade é obrigatória",
			Value:     func(r *models.RegistrationRecord) any { return &r.City },
			Normalize: trim,
		},
		{
			Field:     "bank",
			Tag:       oneOf(models.BankOptions),
			Message:   "Por favor, selecione o banco",
			Value:     func(r *models.RegistrationRecord) any { return &r.Bank },
			Normalize: trim,
		},
		{
			Field:     "accountType",
			Tag:       oneOf(models.AccountTypeOptions),
			Message:   "Por favor, selecione o tipo de conta",
			Value:     func(r *models.RegistrationRecord) any { return &r.AccountType },
			Normalize: trim,
		},
		{
			Field:     "agency",
			Tag:       "required",
			Message:   "Agência é obrigatória",
			Value:     func(r *models.RegistrationRecord) any { return &r.Agency },
			Normalize: trim,
		},
		{
			Field:     "account",
			Tag:       "required",
			Message:   "Conta é obrigatória",
			Value:     func(r *models.RegistrationRecord) any { return &r.Account },
			Normalize: trim,
		},
		{
			Field:   "imageRights",
			Tag:     "eq=true",
			Message: "É necessário autorizar o uso de imagem",
			Value:   func(r *models.RegistrationRecord) any { return &r.ImageRights },
		},
		{
			Field:   "privacyTerms",
			Tag:     "eq=true",
			Message: "É necessário aceitar os termos de privacidade",
			Value:   func(r *models.RegistrationRecord) any { return &r.PrivacyTerms },
		},
	}
}

// LoginRules is the rule table of the login form
func LoginRules() []FieldRule[models.LoginRequest] {
	return []FieldRule[models.LoginRequest]{
		{
			Field:     "email",
			Tag:       "required,email",
			Message:   "E-mail inválido",
			Value:     func(r *models.LoginRequest) any { return &r.Email },
			Normalize: lowerTrim,
		},
		{
			Field:   "password",
			Tag:     minLen(6),
			Message: "Senha deve ter pelo menos 6 caracteres",
			Value:   func(r *models.LoginRequest) any { return &r.Password },
		},
	}
}

// PasswordChangeRules is the rule table of the first-login password form
func PasswordChangeRules() []FieldRule[models.PasswordChangeRequest] {
	return []FieldRule[models.PasswordChangeRequest]{
		{
			Field:   "current_password",
			Tag:     "required",
			Message: "Senha atual é obrigatória",
			Value:   func(r *models.PasswordChangeRequest) any { return &r.CurrentPassword },
		},
		{
			Field:   "new_password",
			Tag:     minLen(8),
			Message: "A nova senha deve ter pelo menos 8 caracteres",
			Value:   func(r *models.PasswordChangeRequest) any { return &r.NewPassword },
		},
	}
}

// PhotoMetadataRules is the rule table of the photo upload and edit forms
func PhotoMetadataRules() []FieldRule[models.PhotoMetadata] {
	return []FieldRule[models.PhotoMetadata]{
		{
			Field:     "title",
			Tag:       minLen(2) + ",max=120",
			Message:   "Título deve ter entre 2 e 120 caracteres",
			Value:     func(p *models.PhotoMetadata) any { return &p.Title },
			Normalize: trim,
		},
		{
			Field:     "description",
			Tag:       "max=1000",
			Message:   "Descrição deve ter no máximo 1000 caracteres",
			Value:     func(p *models.PhotoMetadata) any { return &p.Description },
			Normalize: trim,
		},
		{
			Field:     "category",
			Tag:       oneOf(models.CategoryOptions),
			Message:   "Por favor, selecione uma categoria",
			Value:     func(p *models.PhotoMetadata) any { return &p.Category },
			Normalize: trim,
		},
		{
			Field:     "location",
			Value:     func(p *models.PhotoMetadata) any { return &p.Location },
			Normalize: trim,
		},
		{
			Field:     "equipment",
			Value:     func(p *models.PhotoMetadata) any { return &p.Equipment },
			Normalize: trim,
		},
		{
			Field:     "date",
			Tag:       "omitempty,datetime=2006-01-02",
			Message:   "Data inválida, use o formato aaaa-mm-dd",
			Value:     func(p *models.PhotoMetadata) any { return &p.Date },
			Normalize: trim,
		},
	}
}
