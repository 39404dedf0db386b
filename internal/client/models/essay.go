package models

import "time"

// Essay is a draft application essay.
type Essay struct {
	ID        string
	Title     string
	School    string
	Content   string
	UpdatedAt time.Time
	// Feedback is nil until feedback has been generated.
	Feedback *EssayFeedback
}

// EssayFeedback holds generated review notes. Premium is empty when the
// feedback was generated for a free session.
type EssayFeedback struct {
	General []string
	Premium []string
}

func (e Essay) Clone() Essay {
	c := e
	if e.Feedback != nil {
		c.Feedback = &EssayFeedback{
			General: append([]string(nil), e.Feedback.General...),
			Premium: append([]string(nil), e.Feedback.Premium...),
		}
	}
	return c
}
