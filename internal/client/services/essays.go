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

// Essays keeps essay drafts in memory, newest first, and generates feedback
// for them.
type Essays struct {
	mu       sync.Mutex
	essays   []models.Essay
	ent      Entitlement
	notifier Notifier
	latency  latency
	newID    func() string
	now      func() time.Time
}

// NewEssays returns the draft list seeded with a sample essay. A nil ent is
// never entitled.
func NewEssays(ent Entitlement, notifier Notifier, delay time.Duration) *Essays {
	if ent == nil {
		ent = freeOnly{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Essays{
		essays:   sampleEssays(),
		ent:      ent,
		notifier: notifier,
		latency:  newLatency(delay),
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func sampleEssays() []models.Essay {
	return []models.Essay{
		{
			ID:     "1",
			Title:  "Why Harvard Essay",
			School: "Harvard University",
			Content: "Harvard has been my dream school since I first heard about its rich history and tradition of " +
				"academic excellence. The university's commitment to fostering both intellectual growth and personal " +
				"development aligns perfectly with my own values. I am particularly drawn to Harvard's diverse " +
				"community, where students from all backgrounds come together to learn from one another.\n\n" +
				"Through my high school years, I've cultivated a passion for social justice and community service. " +
				"Harvard's emphasis on these areas, exemplified through programs like Phillips Brooks House " +
				"Association, would allow me to continue making an impact while developing as a leader. " +
				"Additionally, the extensive research opportunities available would support my interest in " +
				"exploring the intersection of technology and public policy.",
			UpdatedAt: time.Date(2025, 4, 5, 14, 30, 0, 0, time.UTC),
			Feedback: &models.EssayFeedback{
				General: []string{
					"Your essay demonstrates genuine interest in Harvard",
					"Consider adding more specific details about Harvard's programs",
				},
				Premium: []string{
					"Your essay lacks a compelling personal hook. Harvard values authenticity - start with a specific story that illustrates your passion for social justice",
					"Be more specific about which research opportunities interest you - name professors or specific labs that align with your interests",
					"The second paragraph is stronger than your opening - consider restructuring to lead with your unique service background",
				},
			},
		},
	}
}

// List returns copies of all drafts, newest first.
func (e *Essays) List() []models.Essay {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Essay, 0, len(e.essays))
	for _, es := range e.essays {
		out = append(out, es.Clone())
	}
	return out
}

func (e *Essays) Get(id string) (models.Essay, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return models.Essay{}, fmt.Errorf("essay %s: %w", id, common.ErrorNotFound)
	}
	return e.essays[i].Clone(), nil
}

type draft struct {
	title, school, content string
}

func (e *Essays) checkDraft(title, school, content string) (draft, error) {
	d := draft{
		title:   strings.TrimSpace(title),
		school:  strings.TrimSpace(school),
		content: strings.TrimSpace(content),
	}
	if d.title == "" || d.school == "" || d.content == "" {
		e.notifier.Notify(Notification{Kind: NotifyError, Title: "Missing fields", Detail: "Please fill in all fields"})
		return draft{}, fmt.Errorf("%w: title, school and content are required", common.ErrorValidation)
	}
	return d, nil
}

func (e *Essays) notifySaved() {
	e.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Essay saved",
		Detail: "Your essay draft has been saved successfully",
	})
}

// Save stores a new draft at the top of the list.
func (e *Essays) Save(title, school, content string) (models.Essay, error) {
	d, err := e.checkDraft(title, school, content)
	if err != nil {
		return models.Essay{}, err
	}

	es := models.Essay{ID: e.newID(), Title: d.title, School: d.school, Content: d.content, UpdatedAt: e.now()}

	e.mu.Lock()
	e.essays = append([]models.Essay{es}, e.essays...)
	e.mu.Unlock()

	e.notifySaved()
	return es.Clone(), nil
}

// Update rewrites a draft in place. Existing feedback no longer matches the
// text and is dropped.
func (e *Essays) Update(id, title, school, content string) (models.Essay, error) {
	d, err := e.checkDraft(title, school, content)
	if err != nil {
		return models.Essay{}, err
	}

	e.mu.Lock()
	i := e.indexLocked(id)
	if i < 0 {
		e.mu.Unlock()
		return models.Essay{}, fmt.Errorf("essay %s: %w", id, common.ErrorNotFound)
	}
	es := &e.essays[i]
	es.Title, es.School, es.Content = d.title, d.school, d.content
	es.UpdatedAt = e.now()
	es.Feedback = nil
	out := es.Clone()
	e.mu.Unlock()

	e.notifySaved()
	return out, nil
}

// GenerateFeedback reviews a draft after the simulated generator delay.
// Premium notes are produced only for an entitled session.
func (e *Essays) GenerateFeedback(ctx context.Context, id string) (Advice, error) {
	if err := ctx.Err(); err != nil {
		return Advice{}, err
	}
	if _, err := e.Get(id); err != nil {
		return Advice{}, err
	}

	e.latency.wait()
	entitled := e.ent.IsPremium()

	e.mu.Lock()
	i := e.indexLocked(id)
	if i < 0 {
		e.mu.Unlock()
		return Advice{}, fmt.Errorf("essay %s: %w", id, common.ErrorNotFound)
	}
	school := e.essays[i].School
	fb := &models.EssayFeedback{
		General: []string{
			"Your essay has a clear structure and good flow",
			"Consider adding more specific examples to support your points",
			"Check for grammatical errors in paragraph 2",
		},
	}
	if entitled {
		fb.Premium = []string{
			school + " values students who demonstrate intellectual curiosity - strengthen this aspect in your essay",
			"Add a specific story that demonstrates your leadership abilities",
			"For " + school + ", emphasize how you'll contribute to campus life beyond academics",
		}
	}
	e.essays[i].Feedback = fb
	e.mu.Unlock()

	e.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Feedback generated",
		Detail: "AI feedback for your essay is ready!",
	})

	adv, _, err := e.Feedback(id)
	return adv, err
}

// Feedback returns the feedback of a draft as the current session may see
// it. ok is false when no feedback has been generated yet.
func (e *Essays) Feedback(id string) (adv Advice, ok bool, err error) {
	es, err := e.Get(id)
	if err != nil {
		return Advice{}, false, err
	}
	if es.Feedback == nil {
		return Advice{}, false, nil
	}
	return gateAdvice(es.Feedback.General, es.Feedback.Premium, e.ent.IsPremium()), true, nil
}

func (e *Essays) indexLocked(id string) int {
	for i, es := range e.essays {
		if es.ID == id {
			return i
		}
	}
	return -1
}
