package dto

import (
	"time"

	"next-target-mock/internal/models"
)

// CreatePersonRequest is the body of POST /api/manpowers. Optional fields
// left out of the payload take the collection defaults.
type CreatePersonRequest struct {
	PersonalID         string     `json:"personalId" example:"999"`
	FirstName          string     `json:"firstName" example:"A"`
	LastName           string     `json:"lastName" example:"B"`
	Battalion          string     `json:"battalion"`
	Company            string     `json:"company"`
	Platoon            string     `json:"platoon"`
	ServiceType        string     `json:"serviceType"`
	Active             *bool      `json:"active"`
	FullName           string     `json:"fullName"`
	Professions        []string   `json:"professions"`
	DeactivatedDate    *time.Time `json:"deactivatedDate"`
	DeactivationReason *string    `json:"deactivationReason"`
	Team               string     `json:"team"`
	MedicalReviewDate  *time.Time `json:"medicalReviewDate"`
	TeamNumbers        []int      `json:"teamNumbers"`
	Number             string     `json:"number"`
	CreatedAt          *time.Time `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt"`
}

func (r CreatePersonRequest) ToPerson() models.Person {
	p := models.Person{
		PersonalID:         r.PersonalID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Battalion:          r.Battalion,
		Company:            r.Company,
		Platoon:            r.Platoon,
		ServiceType:        r.ServiceType,
		Active:             true,
		FullName:           r.FullName,
		Professions:        r.Professions,
		DeactivatedDate:    r.DeactivatedDate,
		DeactivationReason: r.DeactivationReason,
		Team:               r.Team,
		MedicalReviewDate:  r.MedicalReviewDate,
		TeamNumbers:        r.TeamNumbers,
		Number:             r.Number,
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	if r.CreatedAt != nil {
		p.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		p.UpdatedAt = *r.UpdatedAt
	}
	return p
}

// LegacyPersonDTO is the reduced person shape of GET /api/manpowers/:pid.
type LegacyPersonDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Battalion   string `json:"battalion"`
	Company     string `json:"company"`
	Platoon     string `json:"platoon"`
	ServiceType string `json:"serviceType"`
	Team        string `json:"team"`
	Number      string `json:"number"`
}

func NewLegacyPersonDTO(p *models.Person) LegacyPersonDTO {
	return LegacyPersonDTO{
		ID:          p.PersonalID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Battalion:   p.Battalion,
		Company:     p.Company,
		Platoon:     p.Platoon,
		ServiceType: p.ServiceType,
		Team:        p.Team,
		Number:      p.Number,
	}
}

type LegacyPersonResponse struct {
	Success bool            `json:"success" example:"true"`
	Person  LegacyPersonDTO `json:"person"`
}

type CreatePersonResponse struct {
	Success bool          `json:"success" example:"true"`
	Person  models.Person `json:"person"`
}

type ListPeopleResponse struct {
	Success bool            `json:"success" example:"true"`
	Count   int             `json:"count"`
	People  []models.Person `json:"people"`
}

type SeedResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type DeleteAllResponse struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"no person found with this personal id"`
}

// Endpoints lists the routes in the order the root endpoint has always shown them.
type Endpoints struct {
	Front     string `json:"front"`
	Search    string `json:"search"`
	List      string `json:"list"`
	Create    string `json:"create"`
	Seed      string `json:"seed"`
	SeedHeavy string `json:"seedHeavy"`
	DeleteAll string `json:"deleteAll"`
}

type CapabilitiesResponse struct {
	Message   string    `json:"message"`
	Endpoints Endpoints `json:"endpoints"`
}
