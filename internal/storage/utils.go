package storage

import (
	"fmt"
	"strings"
	"time"
)

// bulletinIndexFile is the artifact that marks one complete bulletin.
const bulletinIndexFile = "bulletin.md"

// BulletinFolderPath generates the folder path for one bulletin.
// Format: YYYY/MM/DD/Bulletin-YYYY-MM-DD-HH-MM-SS
func BulletinFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/Bulletin-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// ContentType determines the MIME content type from the file extension.
func ContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
