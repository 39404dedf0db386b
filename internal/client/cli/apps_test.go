package cli

import (
	"context"
	"testing"

	"github.com/ivycraft/navigator/internal/client/services"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApps_List(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.Apps(context.Background()))

	s := out.String()
	assert.Contains(t, s, "1  Harvard University  due 2025-01-01  [in_progress]  2/3 tasks")
	assert.Contains(t, s, "[x] t2")
	assert.Contains(t, s, "2  Stanford University")
}

func TestApps_Empty(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.tracker.Remove("1"))
	require.NoError(t, a.tracker.Remove("2"))

	require.NoError(t, a.Apps(context.Background()))
	assert.Equal(t, "No applications yet\n", out.String())
}

func TestAddApp(t *testing.T) {
	a, out := newTestApp(t)
	stubInputs(t, []string{"MIT", "2025-01-15", "submitted"}, nil)

	require.NoError(t, a.AddApp(context.Background()))
	require.Len(t, a.tracker.List(), 3)
	assert.Contains(t, out.String(), "[success] Application added: MIT has been added to your tracker.")
}

func TestAddApp_Invalid(t *testing.T) {
	a, out := newTestApp(t)
	stubInputs(t, []string{"MIT", "someday", ""}, nil)

	err := a.AddApp(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, out.String(), "Error:")
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	require.NoError(t, a.ToggleTask(ctx, []string{"1", "t1"}))
	assert.Contains(t, out.String(), "is done")

	require.ErrorIs(t, a.ToggleTask(ctx, []string{"1"}), errUsage)
	require.ErrorIs(t, a.ToggleTask(ctx, []string{"1", "zz"}), common.ErrorNotFound)
}

func TestRemoveApp(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	require.NoError(t, a.RemoveApp(ctx, []string{"2"}))
	require.Len(t, a.tracker.List(), 1)
	require.ErrorIs(t, a.RemoveApp(ctx, nil), errUsage)
	require.ErrorIs(t, a.RemoveApp(ctx, []string{"2"}), common.ErrorNotFound)
}

func TestTips_FreeSessionSeesTipsAndUpsell(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	require.NoError(t, a.session.Signup(ctx, "a@b.com", []byte("x")))
	out.Reset()

	require.NoError(t, a.Tips(ctx, []string{"1"}))
	assert.Contains(t, out.String(), "Harvard values")
	assert.Contains(t, out.String(), "Upgrade to Premium for more detailed, school-specific tips")
}

func TestTips_NoneYet(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.Tips(context.Background(), []string{"2"}))
	assert.Contains(t, out.String(), "gentips 2")
	require.ErrorIs(t, a.Tips(context.Background(), nil), errUsage)
}

func TestGenerateTips(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	require.NoError(t, a.GenerateTips(ctx, []string{"2"}))
	assert.Contains(t, out.String(), "Stanford University values community involvement")
	assert.Contains(t, out.String(), "[success] Tips generated: Application tips are now available!")

	require.ErrorIs(t, a.GenerateTips(ctx, []string{"9"}), common.ErrorNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	require.NoError(t, a.UpdateStatus(ctx, []string{"2", "submitted"}))
	assert.Contains(t, out.String(), "[success] Status updated: Application status has been updated.")
	assert.Equal(t, "submitted", string(a.tracker.List()[1].Status))

	require.ErrorIs(t, a.UpdateStatus(ctx, []string{"2"}), errUsage)
	require.ErrorIs(t, a.UpdateStatus(ctx, []string{"2", "done"}), common.ErrorValidation)
}

func TestPrintAdvice_Premium(t *testing.T) {
	a, out := newTestApp(t)
	a.printAdvice("Feedback", services.Advice{Basic: []string{"b"}, Premium: []string{"p"}}, "x")
	assert.Equal(t, "Feedback\n - b\nPremium Insights\n * p\n", out.String())
}

func TestPremium_ListsFeatures(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.Premium(context.Background()))
	assert.Contains(t, out.String(), "Advanced Course Planning")
	assert.Contains(t, out.String(), "Type 'subscribe' to upgrade.")
}

func TestSubscribe_TierUnchanged(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	require.NoError(t, a.session.Signup(ctx, "a@b.com", []byte("x")))
	out.Reset()

	require.NoError(t, a.Subscribe(ctx))
	assert.Contains(t, out.String(), "[success] Subscription successful!")
	assert.Contains(t, out.String(), "still shows the free plan")
	assert.False(t, a.session.IsPremium())
}
