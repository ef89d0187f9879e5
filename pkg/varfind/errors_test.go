package varfind_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/varfind/pkg/varfind"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, varfind.ExitSuccess},
		{"unknown flag", errors.New("unknown flag --foo"), varfind.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), varfind.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), varfind.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--concurrency\""), varfind.ExitUsageError},
		{"invalid config", fmt.Errorf("RootDir is required: %w", varfind.ErrInvalidConfig), varfind.ExitConfigError},
		{"halted", fmt.Errorf("stopping: %w", varfind.ErrScanHalted), varfind.ExitScanHalted},
		{"general error", errors.New("something went wrong"), varfind.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := varfind.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestError_MatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind     varfind.ErrorKind
		sentinel error
	}{
		{varfind.KindSourceRead, varfind.ErrSourceRead},
		{varfind.KindTraversal, varfind.ErrTraversal},
		{varfind.KindFileRead, varfind.ErrFileRead},
		{varfind.KindSinkWrite, varfind.ErrSinkWrite},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", varfind.NewError(tt.kind, "/x", fs.ErrPermission))
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, fs.ErrPermission, "cause must stay reachable")
			assert.Equal(t, tt.kind, varfind.KindOf(err))
		})
	}
}

func TestError_DoesNotMatchOtherKinds(t *testing.T) {
	err := varfind.NewError(varfind.KindFileRead, "a.txt", errors.New("boom"))
	assert.NotErrorIs(t, err, varfind.ErrTraversal)
	assert.NotErrorIs(t, err, varfind.ErrSinkWrite)
	assert.Equal(t, "FileRead a.txt: boom", err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, varfind.ErrorKind(0), varfind.KindOf(errors.New("plain")))
	assert.Equal(t, "Unknown(0)", varfind.ErrorKind(0).String())
}
