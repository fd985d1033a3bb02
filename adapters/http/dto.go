package http

import (
	"time"

	"github.com/google/uuid"

	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio/internal/domain/contact"
)

// Experience DTOs
type PositionDTO struct {
	Position    string   `json:"position"`
	Period      string   `json:"period"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
	Location    string   `json:"location,omitempty"`
	WorkType    string   `json:"workType,omitempty"`
}

type CompanyGroupDTO struct {
	Company       string        `json:"company"`
	OverallPeriod string        `json:"overallPeriod"`
	Duration      string        `json:"duration"`
	Location      string        `json:"location,omitempty"`
	WorkType      string        `json:"workType,omitempty"`
	HasSingleRole bool          `json:"hasSingleRole"`
	Positions     []PositionDTO `json:"positions"`
}

type TimelineDTO struct {
	YearsOfExperience int               `json:"yearsOfExperience"`
	Groups            []CompanyGroupDTO `json:"groups"`
}

func ToTimelineDTO(out *experienceUC.GetTimelineOutput) TimelineDTO {
	dto := TimelineDTO{
		YearsOfExperience: out.YearsOfExperience,
		Groups:            make([]CompanyGroupDTO, len(out.Groups)),
	}
	for i, g := range out.Groups {
		positions := make([]PositionDTO, len(g.Roles))
		for j, r := range g.Roles {
			positions[j] = PositionDTO{
				Position:    r.Position,
				Period:      r.Period,
				Duration:    r.Duration,
				Description: r.Description,
				Bullets:     r.Bullets,
				Location:    r.Location,
				WorkType:    r.WorkType,
			}
		}
		dto.Groups[i] = CompanyGroupDTO{
			Company:       g.Company,
			OverallPeriod: g.OverallPeriod,
			Duration:      g.Duration,
			Location:      g.Location,
			WorkType:      g.WorkType,
			HasSingleRole: g.HasSingleRole,
			Positions:     positions,
		}
	}
	return dto
}

// Contact DTOs
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r SubmitContactRequest) ToSubmission() contact.Submission {
	return contact.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type ContactStatusDTO struct {
	Submitted  bool   `json:"submitted"`
	State      string `json:"state"`
	FormAction string `json:"formAction"`
}

func ToContactStatusDTO(out *contactUC.ContactStatusOutput) ContactStatusDTO {
	return ContactStatusDTO{
		Submitted:  out.State == contact.Submitted,
		State:      out.State.String(),
		FormAction: out.FormAction,
	}
}

type ContactMessageDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

func ToContactMessageDTO(m *contact.Message) ContactMessageDTO {
	return ContactMessageDTO{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Subject:    m.Subject,
		Message:    m.Body,
		ReceivedAt: m.ReceivedAt,
	}
}

// Auth DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
