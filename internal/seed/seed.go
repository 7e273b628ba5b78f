package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/selim/gradepoint/internal/app/models"
	appRepos "github.com/selim/gradepoint/internal/app/repositories"
	"github.com/selim/gradepoint/internal/pkg/apperrors"
)

// CreateDefaultData seeds the catalog reference data if it is not
// already present. Rows are skipped when a by-code lookup finds them;
// duplicate-key errors from concurrent starts are ignored, anything
// else is collected and reported.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	programRepo := appRepos.NewProgramRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default catalog data...")
	var finalErr error

	for _, faculty := range defaultFaculties() {
		f := faculty
		if _, err := facultyRepo.GetByCode(ctx, f.Code); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrFacultyNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := facultyRepo.Create(ctx, &f); err != nil && !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			lgr.Error().Err(err).Str("code", f.Code).Msg("Error seeding faculty")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, program := range defaultPrograms() {
		p := program
		if _, err := programRepo.GetByCode(ctx, p.Code); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrProgramNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := programRepo.Create(ctx, &p); err != nil && !errors.Is(err, apperrors.ErrProgramAlreadyExists) {
			lgr.Error().Err(err).Str("code", p.Code).Msg("Error seeding program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, course := range defaultCourses() {
		c := course
		if _, err := courseRepo.GetByCode(ctx, c.Code); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrCourseNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := courseRepo.Create(ctx, &c); err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", c.Code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func defaultFaculties() []appModels.Faculty {
	return []appModels.Faculty{
		{Code: "itc", Name: "Faculty of Computer Studies"},
		{Code: "fbs", Name: "Faculty of Business Studies"},
		{Code: "fls", Name: "Faculty of Language Studies"},
		{Code: "edu", Name: "Faculty of Education"},
	}
}

func defaultPrograms() []appModels.Program {
	return []appModels.Program{
		{Code: "itc-bsc", Name: "BSc Information Technology and Computing", FacultyCode: "itc", RequiredCreditHours: 131},
		{Code: "itc-cs", Name: "BSc Computer Science", FacultyCode: "itc", RequiredCreditHours: 131},
		{Code: "fbs-bba", Name: "Bachelor of Business Administration", FacultyCode: "fbs", RequiredCreditHours: 128},
		{Code: "fbs-acc", Name: "BA Business Studies - Accounting", FacultyCode: "fbs", RequiredCreditHours: 128},
		{Code: "fls-eng", Name: "BA English Language and Literature", FacultyCode: "fls", RequiredCreditHours: 123},
		{Code: "edu-ele", Name: "BEd Elementary Education", FacultyCode: "edu", RequiredCreditHours: 126},
	}
}

func defaultCourses() []appModels.Course {
	return []appModels.Course{
		{Code: "M110", Name: "Python Programming", Credits: 8, FacultyCodes: []string{"itc"}},
		{Code: "M132", Name: "Linear Algebra", Credits: 4, FacultyCodes: []string{"itc"}},
		{Code: "MS102", Name: "Mathematics for Computing", Credits: 4, FacultyCodes: []string{"itc"}},
		{Code: "TM103", Name: "Computer Organization and Architecture", Credits: 8, FacultyCodes: []string{"itc"}},
		{Code: "TM105", Name: "Introduction to Programming", Credits: 4, FacultyCodes: []string{"itc"}},
		{Code: "TM111", Name: "Introduction to Computing and IT 1", Credits: 8, FacultyCodes: []string{"itc"}},
		{Code: "TM112", Name: "Introduction to Computing and IT 2", Credits: 8, FacultyCodes: []string{"itc"}},
		{Code: "B124", Name: "Fundamentals of Accounting", Credits: 8, FacultyCodes: []string{"fbs"}},
		{Code: "B207A", Name: "Shaping Business Opportunities A", Credits: 8, FacultyCodes: []string{"fbs"}},
		{Code: "BUS110", Name: "Introduction to Business", Credits: 8, FacultyCodes: []string{"fbs"}},
		{Code: "EL111", Name: "English Communication Skills I", Credits: 4, FacultyCodes: []string{"itc", "fbs", "fls", "edu"}},
		{Code: "EL112", Name: "English Communication Skills II", Credits: 4, FacultyCodes: []string{"itc", "fbs", "fls", "edu"}},
		{Code: "EL118", Name: "Reading", Credits: 4, FacultyCodes: []string{"fls"}},
		{Code: "EL120", Name: "English Phonetics and Linguistics", Credits: 8, FacultyCodes: []string{"fls"}},
		{Code: "ED111", Name: "Foundations of Education", Credits: 4, FacultyCodes: []string{"edu"}},
		{Code: "AR111", Name: "Arabic Communication Skills I", Credits: 4, FacultyCodes: []string{"itc", "fbs", "fls", "edu"}},
		{Code: "GR101", Name: "Self-Learning Skills", Credits: 4, FacultyCodes: []string{"itc", "fbs", "fls", "edu"}},
	}
}
