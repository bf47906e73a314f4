package interfaces

import "context"

// IUploadStore abstracts the remote object store used for admin media
// uploads (hero images, program photos, team portraits).
type IUploadStore interface {
	Upload(ctx context.Context, filename string, contentType string, data []byte) (publicURL string, err error)
}
