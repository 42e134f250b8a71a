package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grind/internal/app"
)

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, func() {}, err
	}
	return c, func() { _ = c.Telemetry.Close() }, nil
}

// writeProject sets up a C project in tmpDir with a shell compiler and
// checker. The checker fails when the built binary contains LEAK.
func writeProject(t *testing.T, tmpDir string, mainSrc string) {
	t.Helper()

	compiler := filepath.Join(tmpDir, "fakecc")
	checker := filepath.Join(tmpDir, "fakegrind")

	compilerScript := `#!/bin/sh
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  prev="$a"
done
: > "$out"
for a in "$@"; do
  case "$a" in
  *.c) cat "$a" >> "$out" ;;
  esac
done
`
	checkerScript := `#!/bin/sh
bin="$1"
if grep -q LEAK "$bin"; then
  echo "definitely lost: 42 bytes in 1 blocks" >&2
  exit 1
fi
`
	require.NoError(t, os.WriteFile(compiler, []byte(compilerScript), 0o755)) //nolint:gosec // test fixture must be executable
	require.NoError(t, os.WriteFile(checker, []byte(checkerScript), 0o755))   //nolint:gosec // test fixture must be executable

	configContent := fmt.Sprintf(`compiler:
  path: %q
  flags: ["-Wall"]
checker:
  path: %q
  flags: []
sources:
  - main.c
artifact: app
`, compiler, checker)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "grind.yaml"), []byte(configContent), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.c"), []byte(mainSrc), 0o600))
}

func inDir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}

func TestRun_PassingBuild(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir, "int main(void){}\n")
	inDir(t, tmpDir)

	exitCode := run(context.Background(), []string{"build"}, os.Stderr, graftProvider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_CheckFailure(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir, "int main(void){} /* LEAK */\n")
	inDir(t, tmpDir)

	exitCode := run(context.Background(), []string{"build"}, os.Stderr, graftProvider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_MissingCompilerIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir, "int main(void){}\n")
	inDir(t, tmpDir)

	configContent := `compiler:
  path: /nonexistent/cc
sources:
  - main.c
artifact: app
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "grind.yaml"), []byte(configContent), 0o600))

	exitCode := run(context.Background(), []string{"build"}, os.Stderr, graftProvider)
	assert.Equal(t, 2, exitCode)
}

func TestRun_InvokesCleanup(t *testing.T) {
	tmpDir := t.TempDir()
	inDir(t, tmpDir)

	cleaned := false
	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graftProvider(ctx)
		return c, func() { cleaned = true }, err
	}

	exitCode := run(context.Background(), []string{"version"}, os.Stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, func() {}, errors.New("initialization failed")
	}

	exitCode := run(context.Background(), []string{"build"}, os.Stderr, provider)
	assert.Equal(t, 2, exitCode)
}

func TestRun_Version(t *testing.T) {
	tmpDir := t.TempDir()
	inDir(t, tmpDir)

	exitCode := run(context.Background(), []string{"version"}, os.Stderr, graftProvider)
	assert.Equal(t, 0, exitCode)
}
