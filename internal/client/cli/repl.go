package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Apps(ctx context.Context) error
	AddApp(ctx context.Context) error
	UpdateStatus(ctx context.Context, args []string) error
	ToggleTask(ctx context.Context, args []string) error
	RemoveApp(ctx context.Context, args []string) error
	Tips(ctx context.Context, args []string) error
	GenerateTips(ctx context.Context, args []string) error

	Essays(ctx context.Context) error
	ShowEssay(ctx context.Context, args []string) error
	WriteEssay(ctx context.Context) error
	EditEssay(ctx context.Context, args []string) error
	EssayFeedback(ctx context.Context, args []string) error

	Courses(ctx context.Context) error
	AddCourse(ctx context.Context) error
	RemoveCourse(ctx context.Context, args []string) error
	Plans(ctx context.Context) error
	GeneratePlan(ctx context.Context) error

	Premium(ctx context.Context) error
	Subscribe(ctx context.Context) error
}

var (
	guestHelp  = "Available commands: signup, login, whoami, exit"
	memberHelp = "Available commands:\n" +
		"  tracker: apps, addapp, status <app> <status>, toggle <app> <task>, rmapp <app>, tips <app>, gentips <app>\n" +
		"  essays:  essays, essay <id>, write, edit <id>, feedback <id>\n" +
		"  courses: courses, addcourse, rmcourse <id>, plans, plan\n" +
		"  account: premium, subscribe, whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the IvyCraft CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Command handlers prompt on the same reader,
// so follow-up input is consumed in order. Feature commands are refused
// until the session is authenticated. The loop exits at end of input or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ivy> %s > ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], argsOf(parts)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}
			continue
		case "signup", "register":
			_ = a.Signup(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "whoami":
			_ = a.WhoAmI(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		handler, known := memberCommands[cmd]
		if !known {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}
		_ = handler(ctx, a, args)
	}
}

type commandFunc func(ctx context.Context, a execIface, args []string) error

func noArgs(fn func(execIface, context.Context) error) commandFunc {
	return func(ctx context.Context, a execIface, _ []string) error { return fn(a, ctx) }
}

func withArgs(fn func(execIface, context.Context, []string) error) commandFunc {
	return func(ctx context.Context, a execIface, args []string) error { return fn(a, ctx, args) }
}

// memberCommands require an authenticated session.
var memberCommands = map[string]commandFunc{
	"logout":    noArgs(execIface.Logout),
	"apps":      noArgs(execIface.Apps),
	"addapp":    noArgs(execIface.AddApp),
	"status":    withArgs(execIface.UpdateStatus),
	"toggle":    withArgs(execIface.ToggleTask),
	"rmapp":     withArgs(execIface.RemoveApp),
	"tips":      withArgs(execIface.Tips),
	"gentips":   withArgs(execIface.GenerateTips),
	"essays":    noArgs(execIface.Essays),
	"essay":     withArgs(execIface.ShowEssay),
	"write":     noArgs(execIface.WriteEssay),
	"edit":      withArgs(execIface.EditEssay),
	"feedback":  withArgs(execIface.EssayFeedback),
	"courses":   noArgs(execIface.Courses),
	"addcourse": noArgs(execIface.AddCourse),
	"rmcourse":  withArgs(execIface.RemoveCourse),
	"plans":     noArgs(execIface.Plans),
	"plan":      noArgs(execIface.GeneratePlan),
	"premium":   noArgs(execIface.Premium),
	"subscribe": noArgs(execIface.Subscribe),
}

func argsOf(parts []string) []string {
	if len(parts) < 2 {
		return nil
	}
	return parts[1:]
}
