package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

func HashJSON(jsonData any) string {
	data, _ := json.Marshal(jsonData)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Slugify builds a URL-friendly slug from a display name:
// lowercased, spaces replaced by dashes, dots and commas stripped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.ReplaceAll(slug, ",", "")
	return slug
}
