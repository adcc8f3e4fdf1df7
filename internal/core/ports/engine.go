package ports

import (
	"context"

	"go.trai.ch/views/internal/core/domain"
)

// Engine compiles template sources and renders them against models.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// IsCached reports whether an artifact exists for key and modelType.
	IsCached(key domain.TemplateKey, modelType domain.ModelType) bool
	// Compile parses source and stores the artifact under key and modelType, replacing any previous one.
	Compile(ctx context.Context, source string, key domain.TemplateKey, modelType domain.ModelType) error
	// Run renders the cached artifact for key and modelType with model.
	Run(ctx context.Context, key domain.TemplateKey, modelType domain.ModelType, model any) (string, error)
}
