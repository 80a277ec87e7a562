package models

import (
	"fmt"
	"strings"
)

// MediaType enumerates media library categories.
type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeDocument MediaType = "document"
)

// MediaFile is an entry of the media library.
type MediaFile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          MediaType `json:"type"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	URL           string    `json:"url"`
	ThumbnailURL  *string   `json:"thumbnailUrl,omitempty"`
	UploadedBy    string    `json:"uploadedBy"`
	UploadedDate  string    `json:"uploadedDate"`
	Tags          []string  `json:"tags"`
	UsedInModules []string  `json:"usedInModules"`
}

// MediaFilter narrows the library by tab and free-text query.
type MediaFilter struct {
	Tab   string
	Query string
}

// Matches reports whether m is on the selected tab and its name or any tag contains the query.
func (f MediaFilter) Matches(m MediaFile) bool {
	if f.Tab != "" && f.Tab != "all" && string(m.Type) != f.Tab {
		return false
	}
	q := strings.ToLower(f.Query)
	if q == "" || strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MediaStats summarises the library.
type MediaStats struct {
	TotalFiles    int    `json:"totalFiles"`
	Images        int    `json:"images"`
	Videos        int    `json:"videos"`
	Documents     int    `json:"documents"`
	TotalSize     int64  `json:"totalSize"`
	TotalSizeText string `json:"totalSizeText"`
}

// FormatFileSize renders bytes as B below 1 KiB, KB below 1 MiB and MB above, with one decimal.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
