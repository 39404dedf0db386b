package models

import (
	"fmt"
	"time"

	"github.com/ivycraft/navigator/internal/common"
)

// ApplicationStatus tracks where a college application stands.
type ApplicationStatus string

const (
	StatusNotStarted ApplicationStatus = "not_started"
	StatusInProgress ApplicationStatus = "in_progress"
	StatusSubmitted  ApplicationStatus = "submitted"
	StatusAccepted   ApplicationStatus = "accepted"
	StatusRejected   ApplicationStatus = "rejected"
)

// ParseApplicationStatus maps user input to a status. An empty string means
// StatusNotStarted.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case "":
		return StatusNotStarted, nil
	case StatusNotStarted, StatusInProgress, StatusSubmitted, StatusAccepted, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", common.ErrorValidation, s)
	}
}

// Application is one school the student applies to.
type Application struct {
	ID         string
	SchoolName string
	Deadline   time.Time
	Status     ApplicationStatus
	Tasks      []Task
	// Tips are shown to every session; free sessions also get the upgrade prompt.
	Tips []string
}

// Task is a checklist item attached to an application.
type Task struct {
	ID        string
	Title     string
	DueDate   time.Time
	Completed bool
}

// Progress returns the number of completed tasks and the total.
func (a Application) Progress() (done, total int) {
	for _, t := range a.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(a.Tasks)
}

// Clone returns a deep copy so callers cannot mutate tracker state.
func (a Application) Clone() Application {
	c := a
	c.Tasks = append([]Task(nil), a.Tasks...)
	c.Tips = append([]string(nil), a.Tips...)
	return c
}
