package response

import (
	"encoding/json"
	"time"

	"hopebridge/internal/domain/entities"
)

// SectionResponse is the public section envelope. Content is passed through
// verbatim, e.g. {"programs": [...]} or {"successStories": [...]}; ID is the
// container id the purpose catalog carries as its sectionId back-reference.
type SectionResponse struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromSection(s entities.Section) SectionResponse {
	return SectionResponse{
		ID:        s.ID,
		Slug:      s.Slug,
		Content:   s.Content,
		UpdatedAt: s.UpdatedAt,
	}
}

// UploadResponse carries the public URL of a stored admin upload.
type UploadResponse struct {
	URL string `json:"url"`
}
