package cli

import (
	"context"
	"fmt"

	"github.com/ivycraft/navigator/internal/common"
)

// Essays lists the drafts, newest first.
func (a *App) Essays(_ context.Context) error {
	list := a.essays.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No essays yet. Type 'write' to start a draft.")
		return nil
	}
	for _, es := range list {
		mark := ""
		if es.Feedback != nil {
			mark = "  [feedback]"
		}
		fmt.Fprintf(a.out, "%s  %s  %s  updated %s%s\n",
			es.ID, es.Title, es.School, es.UpdatedAt.Format(common.DateLayout), mark)
	}
	return nil
}

// ShowEssay prints a draft and its feedback.
func (a *App) ShowEssay(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: essay <id>")
		return errUsage
	}
	es, err := a.essays.Get(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n\n%s\n\n", es.Title, es.School, es.Content)

	adv, ok, err := a.essays.Feedback(es.ID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "No feedback yet. Type 'feedback %s' to get some.\n", es.ID)
		return nil
	}
	a.printAdvice("Feedback", adv, "for school-specific insights")
	return nil
}

func (a *App) WriteEssay(_ context.Context) error {
	title, err := getSimpleText(a.reader, "Essay title", a.out)
	if err != nil {
		return err
	}
	school, err := getSimpleText(a.reader, "Target school", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Essay content", a.out)
	if err != nil {
		return err
	}

	if _, err := a.essays.Save(title, school, content); err != nil {
		return err
	}
	return nil
}

// EditEssay prompts for new values; an empty answer keeps the current one.
func (a *App) EditEssay(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return errUsage
	}
	es, err := a.essays.Get(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Essay title [%s]", es.Title), a.out)
	if err != nil {
		return err
	}
	school, err := getSimpleText(a.reader, fmt.Sprintf("Target school [%s]", es.School), a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Essay content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.essays.Update(es.ID, orDefault(title, es.Title), orDefault(school, es.School), orDefault(content, es.Content)); err != nil {
		return err
	}
	return nil
}

func (a *App) EssayFeedback(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: feedback <id>")
		return errUsage
	}
	fmt.Fprintln(a.out, "Analyzing...")
	adv, err := a.essays.GenerateFeedback(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printAdvice("Feedback", adv, "for school-specific insights")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
