package models

import (
	"time"
)

// Participant is a stored registration
type Participant struct {
	ID                 string    `bson:"_id" json:"id"`
	RegistrationNumber string    `bson:"registration_number" json:"registration_number"`
	Category           string    `bson:"category" json:"category"`
	CPF                string    `bson:"cpf" json:"-"`
	FullName           string    `bson:"full_name" json:"full_name"`
	BirthDate          string    `bson:"birth_date" json:"-"`
	MotherName         string    `bson:"mother_name" json:"-"`
	Gender             string    `bson:"gender" json:"gender"`
	Email              string    `bson:"email" json:"email"`
	Phone              string    `bson:"phone" json:"phone"`
	PhoneE164          string    `bson:"phone_e164,omitempty" json:"phone_e164,omitempty"`
	Instagram          string    `bson:"instagram,omitempty" json:"instagram,omitempty"`
	HowDidYouKnow      string    `bson:"how_did_you_know" json:"how_did_you_know"`
	Address            Address   `bson:"address" json:"address"`
	BankAccount        BankInfo  `bson:"bank_account" json:"-"`
	ImageRights        bool      `bson:"image_rights" json:"image_rights"`
	PrivacyTerms       bool      `bson:"privacy_terms" json:"privacy_terms"`
	PasswordHash       string    `bson:"password_hash" json:"-"`
	MustChangePassword bool      `bson:"must_change_password" json:"must_change_password"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// Address is the participant's postal address
type Address struct {
	CEP          string `bson:"cep" json:"cep"`
	Street       string `bson:"street" json:"street"`
	Number       string `bson:"number" json:"number"`
	Complement   string `bson:"complement,omitempty" json:"complement,omitempty"`
	Neighborhood string `bson:"neighborhood" json:"neighborhood"`
	City         string `bson:"city" json:"city"`
}

// BankInfo is where prize money is paid
type BankInfo struct {
	Bank        string `bson:"bank"`
	AccountType string `bson:"account_type"`
	Agency      string `bson:"agency"`
	Account     string `bson:"account"`
}

// NewParticipant maps a validated record to a participant document. CPF is
// stored as bare digits.
func NewParticipant(id, registrationNumber, cpfDigits, passwordHash string, record RegistrationRecord, now time.Time) *Participant {
	return &Participant{
		ID:                 id,
		RegistrationNumber: registrationNumber,
		Category:           record.Category,
		CPF:                cpfDigits,
		FullName:           record.FullName,
		BirthDate:          record.BirthDate,
		MotherName:         record.MotherName,
		Gender:             record.Gender,
		Email:              record.Email,
		Phone:              record.Phone,
		PhoneE164:          record.PhoneE164,
		Instagram:          record.Instagram,
		HowDidYouKnow:      record.HowDidYouKnow,
		Address: Address{
			CEP:          record.CEP,
			Street:       record.Address,
			Number:       record.AddressNumber,
			Complement:   record.Complement,
			Neighborhood: record.Neighborhood,
			City:         record.City,
		},
		BankAccount: BankInfo{
			Bank:        record.Bank,
			AccountType: record.AccountType,
			Agency:      record.Agency,
			Account:     record.Account,
		},
		ImageRights:        record.ImageRights,
		PrivacyTerms:       record.PrivacyTerms,
		PasswordHash:       passwordHash,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ParticipantProfile is the read-only profile shown in the workspace
type ParticipantProfile struct {
	ParticipantID      string `json:"participant_id"`
	RegistrationNumber string `json:"registration_number" example:"48213907"`
	Name               string `json:"name" example:"Ana Souza"`
	Email              string `json:"email" example:"ana@example.com"`
	Phone              string `json:"phone" example:"(11) 99988-7766"`
	Category           string `json:"category" example:"retrato"`
	CategoryLabel      string `json:"category_label" example:"Retrato"`
	CPF                string `json:"cpf" example:"111.***.333-**"`
	City               string `json:"city" example:"São Paulo"`
	RegistrationDate   string `json:"registration_date" example:"15/03/2026"`
	PhotoCount         int64  `json:"photo_count" example:"3"`
	PhotoLimit         int    `json:"photo_limit" example:"10"`
	MustChangePassword bool   `json:"must_change_password"`
}

// WorkspaceOverview bundles the profile and the photo list
type WorkspaceOverview struct {
	Profile *ParticipantProfile `json:"profile"`
	Photos  *PhotoListResponse  `json:"photos"`
}
