package patient

import (
	"fmt"
	"time"

	"github.com/sweetpotato0/priorauth/config"
	"github.com/sweetpotato0/priorauth/errors"
)

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// Prescription describes the medication under prior-authorization review.
type Prescription struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	Duration   string `json:"duration"`
}

// Patient is an immutable snapshot of the demographics, prescription and
// visit notes a request was made with. It is owned by the request that
// created it and never persisted.
type Patient struct {
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	DateOfBirth  string       `json:"date_of_birth"` // YYYY-MM-DD
	Gender       string       `json:"gender"`
	Prescription Prescription `json:"prescription"`
	VisitNotes   []string     `json:"visit_notes"`
}

// Validate checks field constraints. A patient that fails validation must be
// rejected at construction time, never silently coerced.
func (p *Patient) Validate() error {
	v := config.NewValidator().
		RequireNonEmpty("first_name", p.FirstName).
		RequireNonEmpty("last_name", p.LastName).
		RequireNonEmpty("date_of_birth", p.DateOfBirth).
		RequireNonEmpty("prescription.medication", p.Prescription.Medication)
	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidInput, err)
	}
	if _, err := time.Parse(DateLayout, p.DateOfBirth); err != nil {
		return fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD: %w", errors.ErrInvalidInput, err)
	}
	return nil
}

// FullName returns the display name used in logs and prompts.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns the patient's age in whole years at the given reference time,
// subtracting one year when the birthday anniversary has not yet occurred.
func (p *Patient) Age(at time.Time) int {
	dob, err := time.Parse(DateLayout, p.DateOfBirth)
	if err != nil {
		return 0
	}
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}
