package ports

// RebuildOracle decides whether the build artifact must be recompiled.
//
//go:generate mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type RebuildOracle interface {
	// NeedsRebuild reports whether the artifact is stale relative to the
	// given sources. A missing artifact, a missing or unreadable source,
	// or unreadable artifact metadata all count as stale.
	NeedsRebuild(artifact string, sources []string) bool
}
