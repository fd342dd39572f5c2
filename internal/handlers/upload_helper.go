package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
)

var errFileTooLarge = errors.New("file too large")

type upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// readUpload reads the multipart field "file" up to filestore.MaxUploadSize.
func readUpload(c *gin.Context) (*upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	if fh.Size > filestore.MaxUploadSize {
		return nil, errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, filestore.MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > filestore.MaxUploadSize {
		return nil, errFileTooLarge
	}

	return &upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func writeUploadError(c *gin.Context, err error) {
	if errors.Is(err, errFileTooLarge) {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "Arquivo maior que 10 MB.")
		return
	}
	httperr.BadRequest(c, "invalid_file", "Envie um arquivo no campo file.")
}
