package test

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// MultipartFile builds a multipart request body containing a single file
// field with the given content.
//
// The body is returned as a buffer and a map for the HTTP request headers.
func MultipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)
	w, err := mw.CreateFormFile(field, filename)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := w.Write(content); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
