package types

import (
	"github.com/go-playground/validator/v10"
)

// AcademicDetails holds a student's academic percentages.
// TenthPercentage is the only required figure; the other two depend on
// which track (12th vs. diploma/undergraduate) the student followed.
type AcademicDetails struct {
	TenthPercentage     float64  `json:"tenth_percentage" validate:"gte=0,lte=100"`
	TwelfthPercentage   *float64 `json:"twelfth_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	DiplomaUGPercentage *float64 `json:"diploma_ug_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ProfileInput is the input for one analysis request. ResumeText carries
// the extracted resume content (may be empty). Not persisted anywhere.
type ProfileInput struct {
	ResumeText      string          `json:"resume_text,omitempty"`
	AcademicDetails AcademicDetails `json:"academic_details"`
	Interests       []string        `json:"interests" validate:"required,min=1,dive,min=1"`
}

// Validate validates the ProfileInput using the validator.
func (p *ProfileInput) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
