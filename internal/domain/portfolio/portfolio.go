package portfolio

import (
	"context"
	"time"

	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type PersonalInfo struct {
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	About       string      `json:"about"`
	Avatar      string      `json:"avatar"`
	Email       string      `json:"email"`
	Location    string      `json:"location"`
	Phone       string      `json:"phone,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type Statistics struct {
	YearsExperience      int `json:"yearsExperience"`
	ProjectsDelivered    int `json:"projectsDelivered"`
	TechnologiesMastered int `json:"technologiesMastered"`
	CodeCommits          int `json:"codeCommits"`
}

type Skills struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Tools    []string `json:"tools"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Document is the whole content file. It is loaded once and never mutated.
type Document struct {
	PersonalInfo    PersonalInfo        `json:"personalInfo"`
	CareerStartDate string              `json:"careerStartDate"`
	Statistics      Statistics          `json:"statistics"`
	Skills          Skills              `json:"skills"`
	Experience      []experience.Record `json:"experience"`
	Education       []Education         `json:"education"`
	Projects        []project.Project   `json:"projects"`
}

// CareerStart returns the parsed careerStartDate, or the zero time when it
// is missing or malformed.
func (d *Document) CareerStart() time.Time {
	t, ok := experience.ParseCareerStart(d.CareerStartDate)
	if !ok {
		return time.Time{}
	}
	return t
}

type Store interface {
	Load(ctx context.Context) (*Document, error)
}
