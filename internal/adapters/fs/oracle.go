// Package fs provides filesystem-backed adapters: the staleness oracle
// and artifact digests.
package fs

import (
	"os"

	"go.trai.ch/grind/internal/core/ports"
)

var _ ports.RebuildOracle = (*Oracle)(nil)

// Oracle decides staleness from filesystem modification timestamps.
// It is a pure predicate over the metadata visible at call time; it is
// not guarded against concurrent modification between check and use.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// NeedsRebuild reports whether the artifact must be recompiled.
//
// Unreadable metadata fails toward rebuilding: a missing artifact, an
// unreadable artifact timestamp, or any missing or unreadable source
// all return true. A source whose timestamp equals the artifact's is
// not newer; coarse filesystem timestamp granularity is an accepted
// limitation.
func (o *Oracle) NeedsRebuild(artifact string, sources []string) bool {
	target, err := os.Stat(artifact)
	if err != nil {
		return true
	}

	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			return true
		}
		if info.ModTime().After(target.ModTime()) {
			return true
		}
	}

	return false
}
