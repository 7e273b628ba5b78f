package models

import "time"

// CourseEntry is a course copied into a semester at the moment it was
// added, plus the grade assigned by the student. An empty grade means
// the course has not been graded yet. Later catalog edits do not
// change entries that were already added.
type CourseEntry struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Grade   string `json:"grade"`
}

// Semester groups course entries under a user-editable name. Ordering
// of semesters and of courses within a semester is insertion order;
// the last semester in the session is the "current" one for the
// summary computation.
type Semester struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Courses []CourseEntry `json:"courses"`
}

// CourseByCode returns the entry with the given course code, or nil.
func (s *Semester) CourseByCode(code string) *CourseEntry {
	for i := range s.Courses {
		if s.Courses[i].Code == code {
			return &s.Courses[i]
		}
	}
	return nil
}

// CourseCodes returns the set of course codes already present in the
// semester, used as the exclusion set for catalog search.
func (s *Semester) CourseCodes() map[string]struct{} {
	codes := make(map[string]struct{}, len(s.Courses))
	for _, c := range s.Courses {
		codes[c.Code] = struct{}{}
	}
	return codes
}

// Session is one student's calculator state: the selected faculty and
// program plus the semester ledger. It is keyed by an opaque
// server-generated identifier and assumed single-writer.
type Session struct {
	ID          string     `json:"sessionId"`
	FacultyCode string     `json:"facultyCode"`
	ProgramCode string     `json:"programCode"`
	Semesters   []Semester `json:"semesters"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SemesterByID returns the semester with the given id, or nil.
func (s *Session) SemesterByID(id string) *Semester {
	for i := range s.Semesters {
		if s.Semesters[i].ID == id {
			return &s.Semesters[i]
		}
	}
	return nil
}
