package models

import "time"

// RegistrationRecord is the complete set of fields collected at sign-up.
// Handlers bind the request body into it; the validator returns a
// normalized copy.
type RegistrationRecord struct {
	Category      string `json:"category" example:"retrato"`
	CPF           string `json:"cpf" example:"111.222.333-44"`
	FullName      string `json:"fullName" example:"Ana Souza"`
	BirthDate     string `json:"birthDate" example:"01/01/1990"`
	MotherName    string `json:"motherName" example:"Maria Souza"`
	Gender        string `json:"gender" example:"feminino"`
	Email         string `json:"email" example:"ana@example.com"`
	Phone         string `json:"phone" example:"(11) 99988-7766"`
	PhoneE164     string `json:"phoneE164,omitempty" example:"+5511999887766"`
	Instagram     string `json:"instagram,omitempty" example:"@ana.fotos"`
	HowDidYouKnow string `json:"howDidYouKnow" example:"instagram"`
	CEP           string `json:"cep" example:"01001-000"`
	Address       string `json:"address" example:"Praça da Sé"`
	AddressNumber string `json:"addressNumber" example:"100"`
	Complement    string `json:"complement,omitempty" example:"apto 12"`
	Neighborhood  string `json:"neighborhood" example:"Sé"`
	City          string `json:"city" example:"São Paulo"`
	Bank          string `json:"bank" example:"341"`
	AccountType   string `json:"accountType" example:"corrente"`
	Agency        string `json:"agency" example:"1234"`
	Account       string `json:"account" example:"56789-0"`
	ImageRights   bool   `json:"imageRights" example:"true"`
	PrivacyTerms  bool   `json:"privacyTerms" example:"true"`
}

// RegistrationReceipt is returned once a registration has been accepted.
// ProvisionalPassword is only ever shown here.
type RegistrationReceipt struct {
	ParticipantID       string    `json:"participant_id"`
	RegistrationNumber  string    `json:"registration_number" example:"48213907"`
	Login               string    `json:"login" example:"ana@example.com"`
	ProvisionalPassword string    `json:"provisional_password" example:"INS4821390"`
	MustChangePassword  bool      `json:"must_change_password"`
	ConfirmationURL     string    `json:"confirmation_url" example:"/v1/registrations/48213907/confirmation"`
	CreatedAt           time.Time `json:"created_at"`
}

// ValidationResult is the dry-run response of the validate endpoint
type ValidationResult struct {
	Valid  bool                `json:"valid"`
	Record *RegistrationRecord `json:"record,omitempty"`
	Fields FieldErrors         `json:"fields,omitempty"`
}

// Confirmation is what the post-submission screen needs
type Confirmation struct {
	ContestTitle         string `json:"contest_title"`
	RegistrationNumber   string `json:"registration_number"`
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	Category             string `json:"category"`
	CategoryLabel        string `json:"category_label"`
	Message              string `json:"message"`
	RedirectTo           string `json:"redirect_to" example:"/login"`
	RedirectAfterSeconds int    `json:"redirect_after_seconds" example:"10"`
}

// Option is one selectable value of an enumerated field
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options is an ordered list of selectable values
type Options []Option

// Values returns the option values in order
func (o Options) Values() []string {
	values := make([]string, len(o))
	for i, opt := range o {
		values[i] = opt.Value
	}
	return values
}

// Label returns the label for value, or value itself when unknown
func (o Options) Label(value string) string {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Contains reports whether value is one of the options
func (o Options) Contains(value string) bool {
	for _, opt := range o {
		if opt.Value == value {
			return true
		}
	}
	return false
}

var (
	CategoryOptions = Options{
		{Value: "natureza", Label: "Natureza"},
		{Value: "retrato", Label: "Retrato"},
		{Value: "paisagem", Label: "Paisagem"},
		{Value: "arquitetura", Label: "Arquitetura"},
		{Value: "street", Label: "Street Photography"},
		{Value: "macro", Label: "Macro"},
	}

	GenderOptions = Options{
		{Value: "masculino", Label: "Masculino"},
		{Value: "feminino", Label: "Feminino"},
		{Value: "outro", Label: "Outro"},
		{Value: "prefiro-nao-dizer", Label: "Prefiro não dizer"},
	}

	HowDidYouKnowOptions = Options{
		{Value: "instagram", Label: "Instagram"},
		{Value: "facebook", Label: "Facebook"},
		{Value: "indicacao", Label: "Indicação de amigos"},
		{Value: "escola", Label: "Escola ou universidade"},
		{Value: "imprensa", Label: "Imprensa"},
		{Value: "outro", Label: "Outro"},
	}

	// FEBRABAN codes
	BankOptions = Options{
		{Value: "001", Label: "Banco do Brasil"},
		{Value: "033", Label: "Santander"},
		{Value: "077", Label: "Inter"},
		{Value: "104", Label: "Caixa Econômica Federal"},
		{Value: "237", Label: "Bradesco"},
		{Value: "260", Label: "Nubank"},
		{Value: "341", Label: "Itaú"},
		{Value: "748", Label: "Sicredi"},
		{Value: "756", Label: "Sicoob"},
		{Value: "outro", Label: "Outro"},
	}

	AccountTypeOptions = Options{
		{Value: "corrente", Label: "Conta corrente"},
		{Value: "poupanca", Label: "Conta poupança"},
	}
)

// RegistrationOptions lists the values of every enumerated field
type RegistrationOptions struct {
	Categories    Options `json:"category"`
	Genders       Options `json:"gender"`
	HowDidYouKnow Options `json:"howDidYouKnow"`
	Banks         Options `json:"bank"`
	AccountTypes  Options `json:"accountType"`
	PhotoStatuses Options `json:"photoStatus"`
}

// AllRegistrationOptions returns the option tables used by the validator
func AllRegistrationOptions() RegistrationOptions {
	return RegistrationOptions{
		Categories:    CategoryOptions,
		Genders:       GenderOptions,
		HowDidYouKnow: HowDidYouKnowOptions,
		Banks:         BankOptions,
		AccountTypes:  AccountTypeOptions,
		PhotoStatuses: PhotoStatusOptions,
	}
}
