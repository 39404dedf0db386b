package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.loggedIn = true
	return f.record("signup", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Apps(ctx context.Context) error   { return f.record("apps", nil) }
func (f *fakeExec) AddApp(ctx context.Context) error { return f.record("addapp", nil) }
func (f *fakeExec) UpdateStatus(ctx context.Context, args []string) error {
	return f.record("status", args)
}
func (f *fakeExec) ToggleTask(ctx context.Context, args []string) error {
	return f.record("toggle", args)
}
func (f *fakeExec) RemoveApp(ctx context.Context, args []string) error {
	return f.record("rmapp", args)
}
func (f *fakeExec) Tips(ctx context.Context, args []string) error { return f.record("tips", args) }
func (f *fakeExec) GenerateTips(ctx context.Context, args []string) error {
	return f.record("gentips", args)
}
func (f *fakeExec) Essays(ctx context.Context) error { return f.record("essays", nil) }
func (f *fakeExec) ShowEssay(ctx context.Context, args []string) error {
	return f.record("essay", args)
}
func (f *fakeExec) WriteEssay(ctx context.Context) error { return f.record("write", nil) }
func (f *fakeExec) EditEssay(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) EssayFeedback(ctx context.Context, args []string) error {
	return f.record("feedback", args)
}
func (f *fakeExec) Courses(ctx context.Context) error   { return f.record("courses", nil) }
func (f *fakeExec) AddCourse(ctx context.Context) error { return f.record("addcourse", nil) }
func (f *fakeExec) RemoveCourse(ctx context.Context, args []string) error {
	return f.record("rmcourse", args)
}
func (f *fakeExec) Plans(ctx context.Context) error        { return f.record("plans", nil) }
func (f *fakeExec) GeneratePlan(ctx context.Context) error { return f.record("plan", nil) }
func (f *fakeExec) Premium(ctx context.Context) error      { return f.record("premium", nil) }
func (f *fakeExec) Subscribe(ctx context.Context) error    { return f.record("subscribe", nil) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"apps",
		"addapp",
		"toggle 1 t1",
		"tips 1",
		"rmapp 2",
		"premium",
		"subscribe",
		"whoami",
		"logout",
		"foobar",
		"exit",
		"apps",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	require.Equal(t, []string{
		"login", "apps", "addapp", "toggle", "tips", "rmapp", "premium", "subscribe", "whoami", "logout",
	}, exec.calls)
	require.Equal(t, []string{"1", "t1"}, exec.args[3])
	require.Equal(t, []string{"1"}, exec.args[4])
	require.Equal(t, []string{"2"}, exec.args[5])
}

func TestRunREPL_MemberCommandsNeedLogin(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("apps\nsubscribe\nlogout\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewReader(input))

	require.Empty(t, exec.calls)
	require.Contains(t, *out, "Please log in first")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("help\nregister\nhelp\n\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	require.Contains(t, *out, guestHelp)
	require.Contains(t, *out, memberHelp)
	require.Contains(t, *out, "Bye!")
	require.Equal(t, []string{"signup"}, exec.calls)
}

func TestRunREPL_FeatureCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"status 1 submitted",
		"gentips 2",
		"essays",
		"essay 1",
		"write",
		"edit 1",
		"feedback 1",
		"courses",
		"addcourse",
		"rmcourse 4",
		"plans",
		"plan",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	require.Equal(t, []string{
		"status", "gentips", "essays", "essay", "write", "edit", "feedback",
		"courses", "addcourse", "rmcourse", "plans", "plan",
	}, exec.calls)
	require.Equal(t, []string{"1", "submitted"}, exec.args[0])
	require.Equal(t, []string{"4"}, exec.args[9])
}

func TestRunREPL_Unknown(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("get 42")))

	require.Empty(t, exec.calls)
	require.Contains(t, *out, "Unknown command: get")
}
