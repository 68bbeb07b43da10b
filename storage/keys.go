package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	ImagePrefix  = "images/"
	defaultImage = "jpg"
)

// ImageKey builds a collision resistant object key for an uploaded photo,
// keeping the extension of the original file name.
func ImageKey(filename string, now time.Time) string {
	return fmt.Sprintf("%s%d-%s.%s", ImagePrefix, now.UnixMilli(), uuid.NewString(), imageExt(filename))
}

func imageExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" || len(ext) > 8 {
		return defaultImage
	}
	for _, r := range ext {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return defaultImage
		}
	}
	return ext
}

func PublicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
