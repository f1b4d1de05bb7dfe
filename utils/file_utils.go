// utils/file_utils.go - stored-filename handling for uploads
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = strings.NewReplacer(
	"/", "_", "\\", "_", "..", "_", " ", "_",
	":", "_", "*", "_", "?", "_", "\"", "_",
	"<", "_", ">", "_", "|", "_",
)

// GenerateUniqueFilename returns a sanitized filename that does not collide
// with an existing file in dir. The original base name is kept for operator
// readability; a uuid fragment guarantees uniqueness.
func GenerateUniqueFilename(dir, original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = unsafeFilenameChars.Replace(base)
	if base == "" || base == "." {
		base = "file"
	}

	name := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		name = fmt.Sprintf("%s_%s%s", base, uuid.NewString(), ext)
	}
	return name
}
