// Package filestore stores student attachments and payment proofs and
// returns the URL they can be fetched from.
package filestore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Uploader interface {
	Upload(ctx context.Context, folder, name, contentType string, data []byte) (string, error)
}

// MaxUploadSize é o limite aceito pelos handlers.
const MaxUploadSize = 10 << 20

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// ObjectKey builds a unique key: folder/yyyymmdd-uuid-name.
func ObjectKey(folder, name string) string {
	return fmt.Sprintf("%s/%s-%s-%s",
		folder,
		time.Now().Format("20060102"),
		uuid.NewString(),
		sanitizeFilename(name),
	)
}
