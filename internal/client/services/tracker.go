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

// Tracker is the in-memory application tracker. Its list lives only as long
// as the process; it is seeded with sample applications on creation.
type Tracker struct {
	mu       sync.Mutex
	apps     []models.Application
	ent      Entitlement
	notifier Notifier
	latency  latency
	newID    func() string
}

// NewTracker returns a seeded tracker. A nil ent is never entitled.
func NewTracker(ent Entitlement, notifier Notifier, delay time.Duration) *Tracker {
	if ent == nil {
		ent = freeOnly{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Tracker{
		apps:     sampleApplications(),
		ent:      ent,
		notifier: notifier,
		latency:  newLatency(delay),
		newID:    uuid.NewString,
	}
}

func date(s string) time.Time {
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleApplications() []models.Application {
	return []models.Application{
		{
			ID:         "1",
			SchoolName: "Harvard University",
			Deadline:   date("2025-01-01"),
			Status:     models.StatusInProgress,
			Tasks: []models.Task{
				{ID: "t1", Title: "Write 'Why Harvard' essay", DueDate: date("2024-12-15")},
				{ID: "t2", Title: "Request recommendation letters", DueDate: date("2024-11-01"), Completed: true},
				{ID: "t3", Title: "Complete Common App profile", DueDate: date("2024-10-15"), Completed: true},
			},
			Tips: []string{
				"Harvard values demonstrated intellectual curiosity - highlight research projects",
				"Submit your application a week before the deadline to avoid technical issues",
			},
		},
		{
			ID:         "2",
			SchoolName: "Stanford University",
			Deadline:   date("2025-01-05"),
			Status:     models.StatusNotStarted,
			Tasks: []models.Task{
				{ID: "t4", Title: "Write 'Why Stanford' essay", DueDate: date("2024-12-15")},
				{ID: "t5", Title: "Complete activities section", DueDate: date("2024-11-15")},
			},
		},
	}
}

// List returns copies of all applications in insertion order.
func (t *Tracker) List() []models.Application {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Application, 0, len(t.apps))
	for _, a := range t.apps {
		out = append(out, a.Clone())
	}
	return out
}

// Add appends a new application. school and deadline (YYYY-MM-DD) are
// required; an empty status means not started.
func (t *Tracker) Add(school, deadline, status string) (models.Application, error) {
	school = strings.TrimSpace(school)
	if school == "" {
		return models.Application{}, fmt.Errorf("%w: school name is required", common.ErrorValidation)
	}
	due, err := time.Parse(common.DateLayout, strings.TrimSpace(deadline))
	if err != nil {
		return models.Application{}, fmt.Errorf("%w: deadline must be YYYY-MM-DD", common.ErrorValidation)
	}
	st, err := models.ParseApplicationStatus(strings.TrimSpace(status))
	if err != nil {
		return models.Application{}, err
	}

	app := models.Application{ID: t.newID(), SchoolName: school, Deadline: due, Status: st}

	t.mu.Lock()
	t.apps = append(t.apps, app)
	t.mu.Unlock()

	t.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Application added",
		Detail: school + " has been added to your tracker.",
	})
	return app.Clone(), nil
}

// UpdateStatus moves an application to a new status.
func (t *Tracker) UpdateStatus(appID, status string) (models.Application, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.Application{}, fmt.Errorf("%w: status is required", common.ErrorValidation)
	}
	st, err := models.ParseApplicationStatus(status)
	if err != nil {
		return models.Application{}, err
	}

	t.mu.Lock()
	i := t.indexLocked(appID)
	if i < 0 {
		t.mu.Unlock()
		return models.Application{}, fmt.Errorf("application %s: %w", appID, common.ErrorNotFound)
	}
	t.apps[i].Status = st
	app := t.apps[i].Clone()
	t.mu.Unlock()

	t.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Status updated",
		Detail: "Application status has been updated.",
	})
	return app, nil
}

// ToggleTask flips the completion flag of a task and returns the new task.
func (t *Tracker) ToggleTask(appID, taskID string) (models.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(appID)
	if i < 0 {
		return models.Task{}, fmt.Errorf("application %s: %w", appID, common.ErrorNotFound)
	}
	for j := range t.apps[i].Tasks {
		task := &t.apps[i].Tasks[j]
		if task.ID == taskID {
			task.Completed = !task.Completed
			return *task, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", taskID, common.ErrorNotFound)
}

// Remove deletes an application.
func (t *Tracker) Remove(appID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(appID)
	if i < 0 {
		return fmt.Errorf("application %s: %w", appID, common.ErrorNotFound)
	}
	t.apps = append(t.apps[:i], t.apps[i+1:]...)
	return nil
}

// GenerateTips replaces the tips of an application with school-specific
// ones after the simulated generator delay.
func (t *Tracker) GenerateTips(ctx context.Context, appID string) (Advice, error) {
	if err := ctx.Err(); err != nil {
		return Advice{}, err
	}
	if _, err := t.Tips(appID); err != nil {
		return Advice{}, err
	}

	t.latency.wait()

	t.mu.Lock()
	i := t.indexLocked(appID)
	if i < 0 {
		t.mu.Unlock()
		return Advice{}, fmt.Errorf("application %s: %w", appID, common.ErrorNotFound)
	}
	t.apps[i].Tips = schoolTips(t.apps[i])
	t.mu.Unlock()

	t.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Tips generated",
		Detail: "Application tips are now available!",
	})
	return t.Tips(appID)
}

func schoolTips(app models.Application) []string {
	essayDue := app.Deadline.AddDate(0, 0, -14).Format("January 2")
	return []string{
		fmt.Sprintf("Complete your %s essay by %s (two weeks before deadline)", app.SchoolName, essayDue),
		fmt.Sprintf("%s values community involvement - highlight your volunteer work", app.SchoolName),
		fmt.Sprintf("Submit your application 3-5 days before the %s deadline to avoid technical issues",
			app.Deadline.Format(common.DateLayout)),
	}
}

// Tips returns the tips of an application. Tips are visible to every
// session; Locked marks free sessions so the upgrade prompt is shown next
// to them.
func (t *Tracker) Tips(appID string) (Advice, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(appID)
	if i < 0 {
		return Advice{}, fmt.Errorf("application %s: %w", appID, common.ErrorNotFound)
	}
	return gateAdvice(t.apps[i].Tips, nil, t.ent.IsPremium()), nil
}

func (t *Tracker) indexLocked(appID string) int {
	for i, a := range t.apps {
		if a.ID == appID {
			return i
		}
	}
	return -1
}
