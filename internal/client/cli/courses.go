package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/client/services"
)

// Courses lists the current course list.
func (a *App) Courses(_ context.Context) error {
	courses := a.courses.Courses()
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No courses yet. Type 'addcourse' to add one.")
		return nil
	}
	for _, c := range courses {
		fmt.Fprintf(a.out, "%s  %s  (%s)\n", c.ID, c.Name, c.Category)
	}
	return nil
}

func (a *App) AddCourse(_ context.Context) error {
	name, err := getSimpleText(a.reader, "Course name", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (academic, extracurricular; empty for academic)", a.out)
	if err != nil {
		return err
	}

	c, err := a.courses.AddCourse(name, category)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Added", c.Name)
	return nil
}

func (a *App) RemoveCourse(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rmcourse <id>")
		return errUsage
	}
	if err := a.courses.RemoveCourse(args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Removed", args[0])
	return nil
}

// Plans prints every generated course plan, newest first.
func (a *App) Plans(_ context.Context) error {
	plans := a.courses.Plans()
	if len(plans) == 0 {
		fmt.Fprintln(a.out, "No course plans yet. Type 'plan' to generate one.")
		return nil
	}
	for _, p := range plans {
		a.printPlan(p.SchoolName, p.Courses, p.Advice)
	}
	return nil
}

// GeneratePlan prompts for a target school and generates recommendations.
func (a *App) GeneratePlan(ctx context.Context) error {
	school, err := getSimpleText(a.reader, "Target school", a.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Generating...")
	p, err := a.courses.GeneratePlan(ctx, school)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printPlan(p.SchoolName, p.Courses, p.Advice)
	return nil
}

func (a *App) printPlan(school string, courses []models.Course, adv services.Advice) {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	fmt.Fprintf(a.out, "%s Course Plan\n  courses: %s\n", school, strings.Join(names, ", "))
	a.printAdvice("Suggestions", adv, "for school-specific course insights")
}
