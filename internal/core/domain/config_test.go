package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grind/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := domain.Default()

	assert.Equal(t, "gcc", cfg.Compiler.Path)
	assert.Contains(t, cfg.Compiler.Flags, "-Werror")
	assert.Equal(t, "valgrind", cfg.Checker.Path)
	assert.Contains(t, cfg.Checker.Flags, "--error-exitcode=1")
	assert.Equal(t, "jisp", cfg.Artifact)
	assert.NotEmpty(t, cfg.Sources)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(_ *domain.Config) {},
		},
		{
			name:    "missing compiler",
			mutate:  func(c *domain.Config) { c.Compiler.Path = "" },
			wantErr: domain.ErrMissingCompiler,
		},
		{
			name:    "missing checker",
			mutate:  func(c *domain.Config) { c.Checker.Path = "" },
			wantErr: domain.ErrMissingChecker,
		},
		{
			name:    "missing artifact",
			mutate:  func(c *domain.Config) { c.Artifact = "" },
			wantErr: domain.ErrMissingArtifact,
		},
		{
			name:    "no sources",
			mutate:  func(c *domain.Config) { c.Sources = nil },
			wantErr: domain.ErrNoSources,
		},
		{
			name:    "empty source list",
			mutate:  func(c *domain.Config) { c.Sources = []string{} },
			wantErr: domain.ErrNoSources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
