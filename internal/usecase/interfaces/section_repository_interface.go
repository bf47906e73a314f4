package interfaces

import (
	"context"
	"hopebridge/internal/domain/entities"
)

// ISectionRepository abstracts DynamoDB persistence for content sections.
//
// Sections are keyed by slug; Upsert replaces the whole document, which is
// how the admin dashboard edits content (full-section saves, no per-field
// patching).

type ISectionRepository interface {
	GetBySlug(ctx context.Context, slug string) (entities.Section, error)
	Upsert(ctx context.Context, s entities.Section) (entities.Section, error)
}
