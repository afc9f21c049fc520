package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category Category
		severity Severity
	}{
		{"config", ErrCodeConfigInvalid, CategoryConfig, SeverityError},
		{"io", ErrCodeFileNotFound, CategoryIO, SeverityError},
		{"entry corrupt is warning", ErrCodeEntryCorrupt, CategoryIO, SeverityWarning},
		{"validation", ErrCodeInvalidInput, CategoryValidation, SeverityError},
		{"launch", ErrCodeSpawnFailed, CategoryLaunch, SeverityError},
		{"not registered is fatal", ErrCodeNotRegistered, CategoryInternal, SeverityFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
		})
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrCodeSpawnFailed, "cannot spawn firefox", nil)
	assert.Equal(t, "[ERR_601_SPAWN_FAILED] cannot spawn firefox", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeStoreFailed, cause)
	require.NotNil(t, err)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Equal(t, "permission denied", err.Message)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeStoreFailed, nil))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := New(ErrCodeSpawnFailed, "one", nil)
	b := New(ErrCodeSpawnFailed, "another", nil)
	assert.True(t, stderrors.Is(a, b))

	c := New(ErrCodeEmptyExec, "other code", nil)
	assert.False(t, stderrors.Is(a, c))
}

func TestLaunchError_CarriesAppAndCommand(t *testing.T) {
	err := LaunchError("spawn failed", "Firefox", "/usr/bin/firefox --new-window", nil)
	require.NotNil(t, err.Details)
	assert.Equal(t, "Firefox", err.Details["application"])
	assert.Equal(t, "/usr/bin/firefox --new-window", err.Details["command"])
	assert.Equal(t, CategoryLaunch, err.Category)
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(New(ErrCodeNotRegistered, "no database handle", nil)))
	assert.False(t, IsFatal(New(ErrCodeSpawnFailed, "spawn", nil)))
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(fmt.Errorf("plain")))
}

func TestGetCodeAndCategory(t *testing.T) {
	err := New(ErrCodeConfigNotFound, "missing", nil)
	assert.Equal(t, ErrCodeConfigNotFound, GetCode(err))
	assert.Equal(t, CategoryConfig, GetCategory(err))
	assert.Equal(t, "", GetCode(fmt.Errorf("plain")))
}
