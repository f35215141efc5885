package pkg

import (
	"context"
	"fmt"

	"github.com/codezest/catalog/internal/domain"
)

// Reorderer applies a batch of order updates to the children of one parent.
//
// The whole batch is validated before anything is written: every referenced
// child must exist (NotFound otherwise) and must belong to the stated parent
// (ValidationError otherwise). Only then does apply run, and apply must be
// atomic — the repository implementations wrap it in a single transaction.
//
// The same engine serves modules-within-a-language and
// materials-within-a-module; only the three callbacks differ.
type Reorderer[T any] struct {
	resource string
	lookup   func(ctx context.Context, id string) (*T, error)
	parentOf func(*T) string
	apply    func(ctx context.Context, updates []domain.OrderUpdate) error
}

// NewReorderer builds a reorder engine for one parent/child relationship.
// resource names the child entity in error messages ("Module", "Material").
func NewReorderer[T any](
	resource string,
	lookup func(ctx context.Context, id string) (*T, error),
	parentOf func(*T) string,
	apply func(ctx context.Context, updates []domain.OrderUpdate) error,
) *Reorderer[T] {
	return &Reorderer[T]{
		resource: resource,
		lookup:   lookup,
		parentOf: parentOf,
		apply:    apply,
	}
}

// Reorder validates every update against parentID, then applies the batch.
// On any validation failure nothing is written.
func (r *Reorderer[T]) Reorder(ctx context.Context, parentID string, updates []domain.OrderUpdate) error {
	for _, u := range updates {
		child, err := r.lookup(ctx, u.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.NotFoundError(r.resource, u.ID)
			}
			return err
		}
		if owner := r.parentOf(child); owner != parentID {
			return domain.ValidationError(
				fmt.Sprintf("%s %s does not belong to parent %s", r.resource, u.ID, parentID))
		}
	}

	return r.apply(ctx, updates)
}
