package models

import (
	"fmt"

	"github.com/ivycraft/navigator/internal/common"
)

// CourseCategory separates classes from activities.
type CourseCategory string

const (
	CategoryAcademic        CourseCategory = "academic"
	CategoryExtracurricular CourseCategory = "extracurricular"
)

// ParseCourseCategory maps user input to a category. An empty string means
// CategoryAcademic.
func ParseCourseCategory(s string) (CourseCategory, error) {
	switch c := CourseCategory(s); c {
	case "":
		return CategoryAcademic, nil
	case CategoryAcademic, CategoryExtracurricular:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown course category %q", common.ErrorValidation, s)
	}
}

type Course struct {
	ID       string
	Name     string
	Category CourseCategory
}

// SchoolPlan is a course plan generated for one target school. Courses is
// the course list at generation time; later edits do not change it.
type SchoolPlan struct {
	SchoolName string
	Courses    []Course
	Basic      []string
	// Premium is empty when the plan was generated for a free session.
	Premium []string
}

func (p SchoolPlan) Clone() SchoolPlan {
	c := p
	c.Courses = append([]Course(nil), p.Courses...)
	c.Basic = append([]string(nil), p.Basic...)
	c.Premium = append([]string(nil), p.Premium...)
	return c
}
