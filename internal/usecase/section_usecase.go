package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSectionNotFound       = errors.New("section not found")
	ErrInvalidSectionSlug    = errors.New("invalid section slug")
	ErrInvalidSectionContent = errors.New("invalid section content")
)

// ISectionUseCase exposes content section operations.
//
// Public pages read sections; the admin dashboard saves whole section
// documents (hero, programs, campaigns, news, team, settings).

type ISectionUseCase interface {
	GetBySlug(ctx context.Context, slug string) (entities.Section, error)
	Save(ctx context.Context, slug string, content json.RawMessage) (entities.Section, error)
}

type SectionUseCase struct {
	repo interfaces.ISectionRepository
}

var _ ISectionUseCase = (*SectionUseCase)(nil)

func NewSectionUseCase(repo interfaces.ISectionRepository) *SectionUseCase {
	return &SectionUseCase{repo: repo}
}

func (u *SectionUseCase) GetBySlug(ctx context.Context, slug string) (entities.Section, error) {
	slug = strings.TrimSpace(slug)
	if !entities.KnownSectionSlug(slug) {
		return entities.Section{}, ErrInvalidSectionSlug
	}

	s, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Section{}, err
	}
	if s.Slug == "" {
		return entities.Section{}, ErrSectionNotFound
	}
	return s, nil
}

func (u *SectionUseCase) Save(ctx context.Context, slug string, content json.RawMessage) (entities.Section, error) {
	slug = strings.TrimSpace(slug)
	if !entities.KnownSectionSlug(slug) {
		return entities.Section{}, ErrInvalidSectionSlug
	}
	if len(content) == 0 || !json.Valid(content) {
		return entities.Section{}, ErrInvalidSectionContent
	}

	// Keep the section id stable across saves so donation back-references
	// stay valid.
	existing, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Section{}, err
	}
	id := existing.ID
	if id == "" {
		id = uuid.NewString()
	}

	s := entities.Section{
		ID:        id,
		Slug:      slug,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	}
	return u.repo.Upsert(ctx, s)
}
