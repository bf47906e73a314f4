package request

import "strings"

// DonationCreateRequest is the intent-creation payload submitted by the
// donation form. The donor side resolves anonymity before posting, so
// donorName/donorEmail arrive already substituted. sectionId/objectId
// back-reference the content object the donor was viewing and may be null.
type DonationCreateRequest struct {
	Amount     float64 `json:"amount"`
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Purpose    string  `json:"purpose"`
	SectionID  string  `json:"sectionId"`
	ObjectID   string  `json:"objectId"`
}

func (r DonationCreateRequest) ResolvePurpose() string {
	return strings.TrimSpace(r.Purpose)
}
