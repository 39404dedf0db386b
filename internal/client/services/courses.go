package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ivycraft/navigator/internal/client/models"
	"github.com/ivycraft/navigator/internal/common"
)

// CoursePlanner keeps the student's course list and the course plans
// generated for target schools, newest plan first.
type CoursePlanner struct {
	mu       sync.Mutex
	courses  []models.Course
	plans    []models.SchoolPlan
	ent      Entitlement
	notifier Notifier
	latency  latency
	newID    func() string
}

// PlanView is a school plan with its suggestions gated for the current
// session.
type PlanView struct {
	SchoolName string
	Courses    []models.Course
	Advice     Advice
}

// NewCoursePlanner returns a planner seeded with sample courses and one
// plan. A nil ent is never entitled.
func NewCoursePlanner(ent Entitlement, notifier Notifier, delay time.Duration) *CoursePlanner {
	if ent == nil {
		ent = freeOnly{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	courses := []models.Course{
		{ID: "1", Name: "AP Calculus BC", Category: models.CategoryAcademic},
		{ID: "2", Name: "AP Literature", Category: models.CategoryAcademic},
		{ID: "3", Name: "French IV", Category: models.CategoryAcademic},
		{ID: "4", Name: "Debate Club", Category: models.CategoryExtracurricular},
	}
	return &CoursePlanner{
		courses: courses,
		plans: []models.SchoolPlan{
			{
				SchoolName: "MIT",
				Courses:    append([]models.Course(nil), courses...),
				Basic: []string{
					"Consider taking AP Physics if available at your school",
					"Continue with your math sequence, ideally through calculus",
				},
				Premium: []string{
					"MIT values STEM rigor - Add AP Physics C if available, as MIT's engineering programs are highly competitive",
					"Consider a coding class or extracurricular if possible, as computer science skills are highly valued",
					"Continue with high-level math; MIT looks for students who take the most advanced math available",
				},
			},
		},
		ent:      ent,
		notifier: notifier,
		latency:  newLatency(delay),
		newID:    uuid.NewString,
	}
}

func (p *CoursePlanner) Courses() []models.Course {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Course(nil), p.courses...)
}

// AddCourse appends a course. An empty category means academic.
func (p *CoursePlanner) AddCourse(name, category string) (models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Course{}, fmt.Errorf("%w: course name is required", common.ErrorValidation)
	}
	cat, err := models.ParseCourseCategory(strings.TrimSpace(category))
	if err != nil {
		return models.Course{}, err
	}

	c := models.Course{ID: p.newID(), Name: name, Category: cat}

	p.mu.Lock()
	p.courses = append(p.courses, c)
	p.mu.Unlock()
	return c, nil
}

func (p *CoursePlanner) RemoveCourse(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, c := range p.courses {
		if c.ID == id {
			p.courses = append(p.courses[:i], p.courses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("course %s: %w", id, common.ErrorNotFound)
}

// GeneratePlan builds recommendations for a target school from the current
// course list after the simulated generator delay. Premium suggestions are
// produced only for an entitled session.
func (p *CoursePlanner) GeneratePlan(ctx context.Context, school string) (PlanView, error) {
	if err := ctx.Err(); err != nil {
		return PlanView{}, err
	}
	school = strings.TrimSpace(school)
	if school == "" {
		p.notifier.Notify(Notification{
			Kind:   NotifyError,
			Title:  "School name required",
			Detail: "Please enter a target school name",
		})
		return PlanView{}, fmt.Errorf("%w: school name is required", common.ErrorValidation)
	}

	courses := p.Courses()
	if len(courses) == 0 {
		return PlanView{}, fmt.Errorf("%w: add at least one course first", common.ErrorValidation)
	}

	p.latency.wait()

	plan := models.SchoolPlan{
		SchoolName: school,
		Courses:    courses,
		Basic: []string{
			"Add a higher level science course to demonstrate academic rigor",
			"Consider a foreign language course for at least 3-4 years",
		},
	}
	if p.ent.IsPremium() {
		plan.Premium = []string{
			school + " values well-rounded students - add an arts elective to balance your STEM courses",
			"For " + school + ", consider taking AP Computer Science as they value technological literacy",
			"Add leadership positions in your extracurriculars to demonstrate initiative and commitment",
		}
	}

	p.mu.Lock()
	p.plans = append([]models.SchoolPlan{plan}, p.plans...)
	p.mu.Unlock()

	p.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Course plan generated",
		Detail: fmt.Sprintf("Recommendations for %s are ready!", school),
	})
	return p.view(plan), nil
}

// Plans returns all plans, newest first, gated for the current session.
func (p *CoursePlanner) Plans() []PlanView {
	p.mu.Lock()
	plans := make([]models.SchoolPlan, 0, len(p.plans))
	for _, pl := range p.plans {
		plans = append(plans, pl.Clone())
	}
	p.mu.Unlock()

	out := make([]PlanView, 0, len(plans))
	for _, pl := range plans {
		out = append(out, p.view(pl))
	}
	return out
}

func (p *CoursePlanner) view(pl models.SchoolPlan) PlanView {
	return PlanView{
		SchoolName: pl.SchoolName,
		Courses:    append([]models.Course(nil), pl.Courses...),
		Advice:     gateAdvice(pl.Basic, pl.Premium, p.ent.IsPremium()),
	}
}
