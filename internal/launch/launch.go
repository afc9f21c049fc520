// Package launch spawns selected results as detached OS processes.
//
// Launched applications are moved to a new session so they outlive the
// launcher and the terminal it ran in. Launching is fire-and-forget: the
// executor never waits on the child beyond a brief settle delay.
package launch

import (
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/lumen-sh/lumen/internal/errors"
)

// Kind discriminates launch action variants.
type Kind int

const (
	// KindNoOp is a display-only result; launching it does nothing.
	KindNoOp Kind = iota
	// KindSpawn executes a command as a detached process.
	KindSpawn
)

// Action is a data-only launch record. It captures everything needed to
// execute without consulting provider state, so it stays valid after the
// provider re-ranks or rescans.
type Action struct {
	// Kind selects the variant.
	Kind Kind
	// App is the application name, carried for diagnostics.
	App string
	// Command is the literal command line, field codes already stripped.
	Command string
	// Terminal wraps the command in the user's terminal emulator.
	Terminal bool
}

// NoOp returns a display-only action.
func NoOp() Action {
	return Action{Kind: KindNoOp}
}

// Spawn returns an action that executes command as a detached process.
func Spawn(app, command string, terminal bool) Action {
	return Action{Kind: KindSpawn, App: app, Command: command, Terminal: terminal}
}

// DefaultSettleDelay gives a spawned process time to establish itself before
// the launcher may exit.
const DefaultSettleDelay = 100 * time.Millisecond

// Executor spawns launch actions.
type Executor struct {
	terminal string
	settle   time.Duration
	log      *slog.Logger
}

// NewExecutor creates an Executor. terminal is the emulator used for
// Terminal actions (resolved by the caller from $TERMINAL or config).
func NewExecutor(terminal string, settle time.Duration, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{terminal: terminal, settle: settle, log: log}
}

// Launch executes the action. For KindSpawn the process is started with null
// stdio in a new session; the call returns as soon as the process has
// started and the settle delay elapsed. Spawn failures are reported as a
// typed error carrying the application name and attempted command.
func (e *Executor) Launch(a Action) error {
	if a.Kind == KindNoOp {
		e.log.Debug("no-op launch", slog.String("app", a.App))
		return nil
	}

	argv := strings.Fields(a.Command)
	if len(argv) == 0 {
		return errors.New(errors.ErrCodeEmptyExec, "empty exec command", nil).
			WithDetail("application", a.App)
	}

	if a.Terminal {
		argv = append([]string{e.terminal, "-e"}, argv...)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	// Nil stdio descriptors connect the child to the null device.
	cmd.SysProcAttr = detachAttr()

	e.log.Info("launching application",
		slog.String("app", a.App),
		slog.String("command", strings.Join(argv, " ")))

	if err := cmd.Start(); err != nil {
		return errors.LaunchError("failed to spawn process", a.App, a.Command, err)
	}

	if e.settle > 0 {
		time.Sleep(e.settle)
	}

	// The child lives in its own session; drop our handle to it.
	_ = cmd.Process.Release()

	return nil
}
