package shell_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grind/internal/adapters/shell"
	"go.trai.ch/grind/internal/core/domain"
	"go.trai.ch/grind/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newInvoker(t *testing.T) *shell.Invoker {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewInvoker(mockLogger)
}

func TestInvoker_Invoke_CapturesBothStreams(t *testing.T) {
	invoker := newInvoker(t)

	res, err := invoker.Invoke(context.Background(), t.TempDir(),
		"sh", []string{"-c", "echo out-line; echo err-line >&2"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.True(t, res.Ok())
	assert.Equal(t, "out-line\n", res.Stdout)
	assert.Equal(t, "err-line\n", res.Stderr)
}

func TestInvoker_Invoke_NonZeroExitIsNotAnError(t *testing.T) {
	invoker := newInvoker(t)

	res, err := invoker.Invoke(context.Background(), t.TempDir(),
		"sh", []string{"-c", "echo diagnostics >&2; exit 3"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Ok())
	assert.Equal(t, "diagnostics\n", res.Stderr)
}

func TestInvoker_Invoke_MissingToolIsUnavailable(t *testing.T) {
	invoker := newInvoker(t)

	_, err := invoker.Invoke(context.Background(), "",
		filepath.Join(t.TempDir(), "no-such-compiler"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolUnavailable))
}

func TestInvoker_Invoke_RunsInWorkingDir(t *testing.T) {
	invoker := newInvoker(t)
	tmpDir := t.TempDir()

	res, err := invoker.Invoke(context.Background(), tmpDir, "pwd", nil)
	require.NoError(t, err)

	// Resolve symlinks so the comparison survives /tmp -> /private/tmp.
	wantDir, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(trimNewline(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
