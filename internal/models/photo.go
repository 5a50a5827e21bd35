package models

import (
	"time"
)

// PhotoStatus is the jury review state of a submitted photo
type PhotoStatus string

const (
	PhotoStatusPending  PhotoStatus = "pending"
	PhotoStatusApproved PhotoStatus = "approved"
	PhotoStatusRejected PhotoStatus = "rejected"
)

// PhotoStatusOptions labels each status as shown in the workspace
var PhotoStatusOptions = Options{
	{Value: string(PhotoStatusPending), Label: "Pendente"},
	{Value: string(PhotoStatusApproved), Label: "Aprovada"},
	{Value: string(PhotoStatusRejected), Label: "Rejeitada"},
}

// Label returns the Portuguese label of the status
func (s PhotoStatus) Label() string {
	return PhotoStatusOptions.Label(string(s))
}

// IsValid reports whether s is a known status
func (s PhotoStatus) IsValid() bool {
	return PhotoStatusOptions.Contains(string(s))
}

// Photo is a stored contest photo
type Photo struct {
	ID            string      `bson:"_id" json:"id"`
	ParticipantID string      `bson:"participant_id" json:"participant_id"`
	Title         string      `bson:"title" json:"title"`
	Description   string      `bson:"description,omitempty" json:"description,omitempty"`
	Category      string      `bson:"category" json:"category"`
	Location      string      `bson:"location,omitempty" json:"location,omitempty"`
	Equipment     string      `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Date          string      `bson:"date,omitempty" json:"date,omitempty"`
	ObjectKey     string      `bson:"object_key" json:"-"`
	ContentType   string      `bson:"content_type" json:"content_type"`
	SizeBytes     int64       `bson:"size_bytes" json:"size_bytes"`
	Status        PhotoStatus `bson:"status" json:"status"`
	ReviewNote    string      `bson:"review_note,omitempty" json:"review_note,omitempty"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// PhotoMetadata is the form that accompanies an upload
type PhotoMetadata struct {
	Title       string `form:"title" json:"title" example:"Pôr do sol na Sé"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category" example:"paisagem"`
	Location    string `form:"location" json:"location" example:"São Paulo, SP"`
	Equipment   string `form:"equipment" json:"equipment" example:"Canon EOS R6"`
	Date        string `form:"date" json:"date" example:"2026-03-15"`
}

// PhotoUpdate carries the editable metadata. Nil fields are left untouched.
type PhotoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Location    *string `json:"location,omitempty"`
	Equipment   *string `json:"equipment,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// PhotoReview is the jury decision on a photo
type PhotoReview struct {
	Status PhotoStatus `json:"status" binding:"required" example:"approved"`
	Note   string      `json:"note,omitempty" example:"Excelente composição"`
}

// PhotoResponse is a photo as returned to the participant
type PhotoResponse struct {
	Photo
	StatusLabel   string `json:"status_label" example:"Pendente"`
	CategoryLabel string `json:"category_label" example:"Paisagem"`
	URL           string `json:"url,omitempty"`
}

// PhotoListResponse is the workspace gallery
type PhotoListResponse struct {
	View   string          `json:"view" example:"grid"`
	Photos []PhotoResponse `json:"photos"`
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
}
