package services

import (
	"strconv"
	"strings"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/go-playground/validator/v10"
)

// FieldRule declares how one named field of form T is normalized and
// validated. Value must return a *string or *bool pointing into the form.
// An empty Tag means the field is optional and only normalized.
type FieldRule[T any] struct {
	Field     string
	Tag       string
	Message   string
	Value     func(form *T) any
	Normalize func(string) string
}

// FormValidator runs a rule table against a form. It holds no state besides
// the compiled rules and is safe for concurrent use.
type FormValidator[T any] struct {
	name     string
	validate *validator.Validate
	rules    []FieldRule[T]
}

// NewFormValidator builds a validator for the given rule table
func NewFormValidator[T any](name string, rules []FieldRule[T]) *FormValidator[T] {
	return &FormValidator[T]{
		name:     name,
		validate: newTagValidator(),
		rules:    rules,
	}
}

// Name identifies the form, e.g. in metrics labels
func (v *FormValidator[T]) Name() string {
	return v.name
}

// Validate normalizes a copy of form and checks every rule. All failing
// fields are reported, each with its rule's message.
func (v *FormValidator[T]) Validate(form T) (T, models.FieldErrors) {
	fields := models.FieldErrors{}

	for _, rule := range v.rules {
		var value any
		switch p := rule.Value(&form).(type) {
		case *string:
			if rule.Normalize != nil {
				*p = rule.Normalize(*p)
			}
			value = *p
		case *bool:
			value = *p
		default:
			fields.Add(rule.Field, rule.Message)
			continue
		}

		if rule.Tag == "" {
			continue
		}
		if err := v.validate.Var(value, rule.Tag); err != nil {
			fields.Add(rule.Field, rule.Message)
		}
	}

	return form, fields
}

// newTagValidator returns a validator with the mask checks registered
func newTagValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("cpfmask", func(fl validator.FieldLevel) bool {
		return utils.IsMaskedCPF(fl.Field().String())
	})
	_ = validate.RegisterValidation("cpfdigits", func(fl validator.FieldLevel) bool {
		return utils.ValidateCPF(fl.Field().String())
	})
	_ = validate.RegisterValidation("datemask", func(fl validator.FieldLevel) bool {
		return utils.IsMaskedDate(fl.Field().String())
	})
	return validate
}

// oneOf builds a required enum tag from an option table
func oneOf(options models.Options) string {
	return "required,oneof=" + strings.Join(options.Values(), " ")
}

// minLen builds a required minimum length tag on the trimmed value
func minLen(n int) string {
	return "required,min=" + strconv.Itoa(n)
}

// Normalizers shared by the rule tables
func trim(s string) string {
	return strings.TrimSpace(s)
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
