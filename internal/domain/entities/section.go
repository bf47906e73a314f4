package entities

import (
	"encoding/json"
	"time"
)

// Known section slugs. Sections are schemaless on the server side; the
// content document belongs to the editors, the API only stores and serves
// it. Slugs outside this list are rejected at the handler layer.
const (
	SectionHero      = "hero"
	SectionPrograms  = "programs"
	SectionCampaigns = "campaigns"
	SectionNews      = "news"
	SectionTeam      = "team"
	SectionSettings  = "settings"
)

// Section is a content section persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: slug
//
// Content holds the section document as-is, e.g. {"programs": [...]} for the
// programs section or {"successStories": [...]} for campaigns. Collection
// sections expose their items under a section-specific key; every item in a
// collection carries at least "id" and "title".

type Section struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// KnownSectionSlug reports whether slug names a managed section.
func KnownSectionSlug(slug string) bool {
	switch slug {
	case SectionHero, SectionPrograms, SectionCampaigns, SectionNews, SectionTeam, SectionSettings:
		return true
	}
	return false
}
