package gpa

import (
	"strings"

	"github.com/selim/gradepoint/internal/app/models"
)

// MinQueryLength is the minimum length of a search query before text
// filtering applies. Shorter queries match every course within the
// faculty.
const MinQueryLength = 2

// FilterCourses narrows the catalog to courses that are offered under
// facultyCode, match the query as a case-insensitive substring of
// either code or name, and are not in the exclusion set. Catalog order
// is preserved. An empty faculty code yields an empty result.
func FilterCourses(catalog []models.Course, facultyCode, query string, exclude map[string]struct{}) []models.Course {
	if facultyCode == "" {
		return []models.Course{}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	textFilter := len(query) >= MinQueryLength

	matches := []models.Course{}
	for _, course := range catalog {
		if !course.OfferedBy(facultyCode) {
			continue
		}
		if _, taken := exclude[course.Code]; taken {
			continue
		}
		if textFilter &&
			!strings.Contains(strings.ToLower(course.Code), query) &&
			!strings.Contains(strings.ToLower(course.Name), query) {
			continue
		}
		matches = append(matches, course)
	}
	return matches
}
