package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileWithType(contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "file", Header: header}
}

func TestCheckUploadType(t *testing.T) {
	assert.NoError(t, checkUploadType(UploadFieldPhoto, fileWithType("image/png")))
	assert.NoError(t, checkUploadType(UploadFieldPhoto, fileWithType("image/jpeg")))
	assert.Error(t, checkUploadType(UploadFieldPhoto, fileWithType("application/pdf")))

	assert.NoError(t, checkUploadType(UploadFieldDocument, fileWithType("application/pdf")))
	assert.NoError(t, checkUploadType(UploadFieldDocument, fileWithType("text/plain")))
	assert.NoError(t, checkUploadType(UploadFieldDocument, fileWithType("image/png")))
	assert.Error(t, checkUploadType(UploadFieldDocument, fileWithType("video/mp4")))

	assert.Error(t, checkUploadType("avatar", fileWithType("image/png")))
}

func TestStringToUint64(t *testing.T) {
	assert.Equal(t, uint64(123), StringToUint64("123"))
	assert.Equal(t, uint64(0), StringToUint64("abc"))
	assert.Equal(t, uint64(0), StringToUint64("-1"))
}
