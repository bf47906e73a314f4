package request

import "encoding/json"

// SectionSaveRequest is the admin dashboard save payload. The content
// document is stored as-is; its schema belongs to the editing screens.
type SectionSaveRequest struct {
	Content json.RawMessage `json:"content"`
}
