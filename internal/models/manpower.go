package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Person is one manpower record. Field order follows the stored document,
// which is also the order GetFront hands back to callers.
type Person struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string"`
	PersonalID         string        `bson:"personalId" json:"personalId"`
	FirstName          string        `bson:"firstName" json:"firstName"`
	LastName           string        `bson:"lastName" json:"lastName"`
	Battalion          string        `bson:"battalion" json:"battalion"`
	Company            string        `bson:"company" json:"company"`
	Platoon            string        `bson:"platoon" json:"platoon"`
	ServiceType        string        `bson:"serviceType" json:"serviceType"`
	Active             bool          `bson:"active" json:"active"`
	FullName           string        `bson:"fullName" json:"fullName"`
	Professions        []string      `bson:"professions" json:"professions"`
	DeactivatedDate    *time.Time    `bson:"deactivatedDate" json:"deactivatedDate"`
	DeactivationReason *string       `bson:"deactivationReason" json:"deactivationReason"`
	Team               string        `bson:"team" json:"team"`
	MedicalReviewDate  *time.Time    `bson:"medicalReviewDate" json:"medicalReviewDate"`
	TeamNumbers        []int         `bson:"teamNumbers" json:"teamNumbers"`
	Number             string        `bson:"number" json:"number"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
	Version            int32         `bson:"__v" json:"__v"`
}

// ApplyDefaults fills the fields the collection schema defaults.
// Active is not touched: its default (true) is decided where input is decoded.
func (p *Person) ApplyDefaults(now time.Time) {
	if p.Professions == nil {
		p.Professions = []string{}
	}
	if p.TeamNumbers == nil {
		p.TeamNumbers = []int{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
}

// Validate enforces the required paths of the collection schema.
func (p *Person) Validate() error {
	var missing []string
	if p.PersonalID == "" {
		missing = append(missing, "personalId")
	}
	if p.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if p.LastName == "" {
		missing = append(missing, "lastName")
	}
	if len(missing) == 0 {
		return nil
	}
	return &SchemaError{Paths: missing}
}

// SchemaError lists the required paths a record is missing.
type SchemaError struct {
	Paths []string
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Paths))
	for _, p := range e.Paths {
		parts = append(parts, p+": Path `"+p+"` is required.")
	}
	return "person validation failed: " + strings.Join(parts, ", ")
}
