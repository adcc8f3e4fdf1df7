package ports

// FreshnessTracker remembers the last observed write time of template files.
//
//go:generate mockgen -source=freshness.go -destination=mocks/mock_freshness.go -package=mocks
type FreshnessTracker interface {
	// IsFresh reports whether path is seen for the first time or changed since the last observation.
	// Missing files are never fresh.
	IsFresh(path string) bool
}
