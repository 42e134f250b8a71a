// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/grind/internal/core/domain"
)

// Invoker runs one external tool to completion and captures its result.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke runs name with args in dir (empty dir means the current
	// directory), blocking until the process exits and both output
	// streams have been fully captured.
	//
	// A non-zero exit status is not an error; it is reported through
	// the ToolResult. The error return is reserved for failures to
	// launch the process at all, which wrap domain.ErrToolUnavailable.
	Invoke(ctx context.Context, dir, name string, args []string) (domain.ToolResult, error)
}
