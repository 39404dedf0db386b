package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivycraft/navigator/internal/client/services"
	"github.com/ivycraft/navigator/internal/common"
)

var errUsage = errors.New("usage")

// Apps prints the tracked applications with their tasks.
func (a *App) Apps(_ context.Context) error {
	apps := a.tracker.List()
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet")
		return nil
	}
	for _, app := range apps {
		done, total := app.Progress()
		fmt.Fprintf(a.out, "%s  %s  due %s  [%s]  %d/%d tasks\n",
			app.ID, app.SchoolName, app.Deadline.Format(common.DateLayout), app.Status, done, total)
		for _, t := range app.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(a.out, "    [%s] %s  %s (due %s)\n", mark, t.ID, t.Title, t.DueDate.Format(common.DateLayout))
		}
	}
	return nil
}

// AddApp prompts for a school, a deadline and an optional status.
func (a *App) AddApp(_ context.Context) error {
	school, err := getSimpleText(a.reader, "School name", a.out)
	if err != nil {
		return err
	}
	deadline, err := getSimpleText(a.reader, "Deadline (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status (not_started, in_progress, submitted, accepted, rejected; empty for not_started)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.tracker.Add(school, deadline, status); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

func (a *App) ToggleTask(_ context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: toggle <app-id> <task-id>")
		return errUsage
	}
	task, err := a.tracker.ToggleTask(args[0], args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	state := "open"
	if task.Completed {
		state = "done"
	}
	fmt.Fprintf(a.out, "%s is %s\n", task.Title, state)
	return nil
}

func (a *App) RemoveApp(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rmapp <app-id>")
		return errUsage
	}
	if err := a.tracker.Remove(args[0]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Removed", args[0])
	return nil
}

func (a *App) UpdateStatus(_ context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: status <app-id> <not_started|in_progress|submitted|accepted|rejected>")
		return errUsage
	}
	if _, err := a.tracker.UpdateStatus(args[0], args[1]); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	return nil
}

// Tips prints the tips of an application. Free sessions also get the
// upgrade prompt.
func (a *App) Tips(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: tips <app-id>")
		return errUsage
	}
	adv, err := a.tracker.Tips(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if len(adv.Basic) == 0 {
		fmt.Fprintf(a.out, "No tips yet. Type 'gentips %s' to generate them.\n", args[0])
		return nil
	}
	a.printAdvice("Application Tips", adv, "for more detailed, school-specific tips")
	return nil
}

func (a *App) GenerateTips(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: gentips <app-id>")
		return errUsage
	}
	fmt.Fprintln(a.out, "Generating...")
	adv, err := a.tracker.GenerateTips(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printAdvice("Application Tips", adv, "for more detailed, school-specific tips")
	return nil
}

// printAdvice renders gated guidance: the basic items, then either the
// premium insights or the upgrade prompt.
func (a *App) printAdvice(title string, adv services.Advice, upsell string) {
	fmt.Fprintln(a.out, title)
	for _, item := range adv.Basic {
		fmt.Fprintln(a.out, " -", item)
	}
	if len(adv.Premium) > 0 {
		fmt.Fprintln(a.out, "Premium Insights")
		for _, item := range adv.Premium {
			fmt.Fprintln(a.out, " *", item)
		}
	}
	if adv.Locked {
		fmt.Fprintf(a.out, "Upgrade to Premium %s. Type 'premium' to learn more.\n", upsell)
	}
}

// Premium prints the premium feature catalog.
func (a *App) Premium(_ context.Context) error {
	if a.session.IsPremium() {
		fmt.Fprintln(a.out, "You have Premium. All features are unlocked.")
	}
	for _, f := range services.PremiumFeatures() {
		fmt.Fprintf(a.out, "%s\n  %s\n", f.Title, f.Description)
		for _, ex := range f.Examples {
			fmt.Fprintf(a.out, "    e.g. %s\n", ex)
		}
	}
	fmt.Fprintln(a.out, "Type 'subscribe' to upgrade.")
	return nil
}

func (a *App) Subscribe(ctx context.Context) error {
	if a.session.IsPremium() {
		fmt.Fprintln(a.out, "You already have Premium.")
		return nil
	}
	fmt.Fprintln(a.out, "Processing subscription...")
	if err := a.upgrade.Subscribe(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if !a.session.IsPremium() {
		fmt.Fprintln(a.out, "Note: your account still shows the free plan; premium activation is not available in this client.")
	}
	return nil
}
