package domain

import (
	"context"
	"strings"

	"go.trai.ch/zerr"
)

type expansionKey struct{}

// EnterExpansion records key on the expansion stack carried by ctx.
// It fails with ErrCycleDetected when key is already being expanded further up the stack.
func EnterExpansion(ctx context.Context, key TemplateKey) (context.Context, error) {
	stack := ExpansionStack(ctx)
	for i, k := range stack {
		if k == key {
			return ctx, buildCycleError(stack[i:], key)
		}
	}

	next := make([]TemplateKey, len(stack), len(stack)+1)
	copy(next, stack)
	next = append(next, key)
	return context.WithValue(ctx, expansionKey{}, next), nil
}

// ExpansionStack returns the keys currently being expanded, outermost first.
func ExpansionStack(ctx context.Context) []TemplateKey {
	stack, _ := ctx.Value(expansionKey{}).([]TemplateKey)
	return stack
}

func buildCycleError(path []TemplateKey, key TemplateKey) error {
	parts := make([]string, 0, len(path)+1)
	for _, k := range path {
		parts = append(parts, k.String())
	}
	parts = append(parts, key.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "template expansion"), "cycle", strings.Join(parts, " -> "))
}
