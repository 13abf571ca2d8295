// Package upload validates user-supplied files (CVs, contract scans,
// signatures) before they reach object storage: extension whitelist plus
// magic-byte verification so content matches the claimed type.
package upload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxFileSize bounds every upload (10 MiB).
const MaxFileSize = 10 << 20

var ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")

// Magic byte signatures for allowed file types
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Allowed file extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// contentTypes maps extensions to the Content-Type stored alongside the blob.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Validate checks the filename extension and the file's leading bytes.
// Returns the Content-Type to store, or an error describing the rejection.
func Validate(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("file is empty")
	}
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("file has no extension")
	}
	if !allowedExtensions[ext] {
		return "", errors.New("file extension not allowed: " + ext)
	}

	if !matchesMagicBytes(ext, data) {
		return "", errors.New("file content does not match extension")
	}

	return contentTypes[ext], nil
}

func matchesMagicBytes(ext string, data []byte) bool {
	signatures := magicBytes[ext]
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
