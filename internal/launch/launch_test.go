//go:build !windows

package launch

import (
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/errors"
)

func newTestExecutor() *Executor {
	// Zero settle delay keeps tests fast; detachment is still exercised.
	return NewExecutor("xterm", 0, slog.Default())
}

func TestLaunch_NoOpSucceeds(t *testing.T) {
	e := newTestExecutor()
	assert.NoError(t, e.Launch(NoOp()))
}

func TestLaunch_SpawnReturnsWithoutWaiting(t *testing.T) {
	e := newTestExecutor()

	// A sleeping child: Launch must return immediately, not after 30s.
	start := time.Now()
	err := e.Launch(Spawn("sleeper", "/bin/sleep 30", false))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second,
		"launch must not block on the child's lifetime")
}

func TestLaunch_EmptyCommandIsValidationError(t *testing.T) {
	e := newTestExecutor()

	err := e.Launch(Spawn("Broken", "   ", false))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyExec, errors.GetCode(err))

	var le *errors.LumenError
	require.True(t, stderrors.As(err, &le))
	assert.Equal(t, "Broken", le.Details["application"])
}

func TestLaunch_SpawnFailureCarriesAppAndCommand(t *testing.T) {
	e := newTestExecutor()

	err := e.Launch(Spawn("Ghost", "/nonexistent/binary --flag", false))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSpawnFailed, errors.GetCode(err))

	var le *errors.LumenError
	require.True(t, stderrors.As(err, &le))
	assert.Equal(t, "Ghost", le.Details["application"])
	assert.Equal(t, "/nonexistent/binary --flag", le.Details["command"])
}

func TestLaunch_TerminalWrapsCommand(t *testing.T) {
	// The wrapping emulator does not exist, so Start fails; the attempted
	// command in the error proves the wrap happened.
	e := NewExecutor("/nonexistent/terminal", 0, slog.Default())

	err := e.Launch(Spawn("Htop", "/usr/bin/htop", true))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSpawnFailed, errors.GetCode(err))
}

func TestSpawnAndNoOpConstructors(t *testing.T) {
	a := Spawn("Firefox", "/usr/bin/firefox", false)
	assert.Equal(t, KindSpawn, a.Kind)
	assert.Equal(t, "Firefox", a.App)

	n := NoOp()
	assert.Equal(t, KindNoOp, n.Kind)
}
