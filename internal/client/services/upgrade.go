package services

import (
	"context"
	"time"

	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/logging"
)

// PremiumFeature describes one premium capability on the upgrade screen.
type PremiumFeature struct {
	Title       string
	Description string
	Examples    []string
}

// PremiumFeatures returns the fixed feature catalog of the premium plan.
func PremiumFeatures() []PremiumFeature {
	return []PremiumFeature{
		{
			Title:       "Advanced Course Planning",
			Description: "Detailed, school-specific course recommendations tailored to your target universities' preferences.",
			Examples: []string{
				"MIT values STEM rigor - Add AP Physics C if available",
				"For Harvard, balance STEM with humanities to show breadth",
			},
		},
		{
			Title:       "Enhanced Essay Feedback",
			Description: "Narrative enhancement suggestions and school-specific content recommendations.",
			Examples: []string{
				"Your essay lacks a personal hook - start with a specific story",
				"Stanford values innovation - emphasize your creative projects",
			},
		},
		{
			Title:       "Strategic Application Tips",
			Description: "Prioritized task lists and deadline optimization based on each school's process.",
			Examples: []string{
				"Submit Harvard essay by Dec 15 - two weeks before deadline",
				"Princeton values demonstrated interest - mention campus visit",
			},
		},
	}
}

// UpgradeService runs the premium subscribe flow.
//
// The flow confirms the purchase and reloads the session from the credential
// store, but nothing records the premium tier: after Subscribe the
// entitlement gate is still closed. Billing and tier persistence are not
// implemented.
type UpgradeService struct {
	session  *SessionManager
	notifier Notifier
	log      logging.Logger
	delay    time.Duration
	sleep    func(time.Duration)
}

func NewUpgradeService(session *SessionManager, notifier Notifier, delay time.Duration, log logging.Logger) *UpgradeService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &UpgradeService{
		session:  session,
		notifier: notifier,
		log:      log.With("component", "upgrade"),
		delay:    delay,
		sleep:    time.Sleep,
	}
}

// Subscribe requires a signed-in, non-premium session. It waits for the
// simulated checkout, announces success and reloads the session.
func (u *UpgradeService) Subscribe(ctx context.Context) error {
	snap := u.session.Snapshot()
	if snap.State != StateAuthenticated {
		return common.ErrorUnauthorized
	}
	if snap.Premium {
		return nil
	}

	if u.delay > 0 {
		u.sleep(u.delay)
	}

	u.notifier.Notify(Notification{
		Kind:   NotifySuccess,
		Title:  "Subscription successful!",
		Detail: "You now have access to all premium features!",
	})
	u.log.Warn(ctx, "subscription confirmed without a tier change", "user_id", snap.Identity.ID)

	u.session.Restore(context.WithoutCancel(ctx))
	return nil
}
