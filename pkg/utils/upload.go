package utils

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Multipart field names for resident files.
const (
	UploadFieldDocument = "document"
	UploadFieldPhoto    = "photo"
)

var documentTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// SaveUpload stores the named multipart file under dir with a random
// filename and returns the stored name. A missing field is not an error;
// it returns "". The photo field only takes images, the document field
// takes pdf, word, text or image files.
func SaveUpload(c *gin.Context, field, dir string, maxSize int64) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}

	if file.Size > maxSize {
		return "", fmt.Errorf("%s exceeds the %d byte limit", field, maxSize)
	}
	if err := checkUploadType(field, file); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

func checkUploadType(field string, file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	switch field {
	case UploadFieldPhoto:
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("only image files are allowed for resident photos")
		}
	case UploadFieldDocument:
		if !documentTypes[contentType] {
			return fmt.Errorf("only PDF, Word, text, or image documents are allowed")
		}
	default:
		return fmt.Errorf("unexpected file field %q", field)
	}
	return nil
}

// RemoveStoredFile deletes an uploaded file best-effort: a file that is
// already gone is fine, any other failure is logged and swallowed.
func RemoveStoredFile(log *logrus.Logger, dir, name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
		log.WithFields(logrus.Fields{"file": name, "error": err}).Warn("Failed to remove stored file")
	}
}
