package filestore

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Inline keeps the file inside the record as a data URL. Used when no
// object storage is configured.
type Inline struct{}

func NewInline() *Inline {
	return &Inline{}
}

func (Inline) Upload(_ context.Context, _, name, contentType string, data []byte) (string, error) {
	_, contentType, data, err := Normalize(name, contentType, data)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

var _ Uploader = (*Inline)(nil)
