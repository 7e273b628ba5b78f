package models

// Course represents a catalog course. A course may be offered under
// more than one faculty, so it carries the full set of offering
// faculty codes.
type Course struct {
	ID           int64    `json:"id" db:"id"`
	Code         string   `json:"code" db:"code"`
	Name         string   `json:"name" db:"name"`
	Credits      int      `json:"credits" db:"credits"`
	FacultyCodes []string `json:"facultyCodes" db:"faculty_codes"`
}

// OfferedBy reports whether the course is offered under the given
// faculty code.
func (c Course) OfferedBy(facultyCode string) bool {
	for _, code := range c.FacultyCodes {
		if code == facultyCode {
			return true
		}
	}
	return false
}
