package models

// Program represents a degree track offered by a faculty.
// RequiredCreditHours drives the remaining-credits estimate in the
// session summary.
type Program struct {
	ID                  int64    `json:"id" db:"id"`
	Code                string   `json:"code" db:"code"`
	Name                string   `json:"name" db:"name"`
	FacultyCode         string   `json:"facultyCode" db:"faculty_code"`
	RequiredCreditHours int      `json:"requiredCreditHours" db:"required_credit_hours"`
	Faculty             *Faculty `json:"faculty,omitempty"`
}
