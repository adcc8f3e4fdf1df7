package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/views/internal/core/domain"
)

func TestCandidates_Order(t *testing.T) {
	params := domain.Params{
		domain.ParamArea:    "A",
		domain.ParamConcern: "C",
		domain.ParamAction:  "X",
	}

	got := domain.Candidates(params, ".cshtml")

	assert.Equal(t, []string{
		filepath.Join("A", "C", "X.cshtml"),
		filepath.Join("A", "C", "default.cshtml"),
		filepath.Join("A", "X.cshtml"),
		filepath.Join("A", "default.cshtml"),
		"X.cshtml",
		"default.cshtml",
	}, got)
}

func TestCandidates_MissingSegments(t *testing.T) {
	got := domain.Candidates(domain.Params{domain.ParamAction: "index"}, ".cshtml")

	assert.Equal(t, []string{
		"index.cshtml",
		"default.cshtml",
		"index.cshtml",
		"default.cshtml",
		"index.cshtml",
		"default.cshtml",
	}, got)
}

func TestCandidates_NoParams(t *testing.T) {
	got := domain.Candidates(nil, ".html")

	assert.Len(t, got, 6)
	assert.Equal(t, ".html", got[0])
	assert.Equal(t, "default.html", got[5])
}
