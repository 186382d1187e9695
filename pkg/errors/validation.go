package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxNameLength is the maximum length of an object name in bytes.
const MaxNameLength = 128

// ValidateObjectName validates a user-supplied object name.
//
// The validation rules:
//   - No empty or all-blank names
//   - No control characters
//   - Maximum length of MaxNameLength bytes
func ValidateObjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "object name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "object name too long (max %d bytes)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "object name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFilePath validates a project or pool file path given on the
// command line or in the config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
