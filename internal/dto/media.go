package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// MediaListQuery binds the library filters.
type MediaListQuery struct {
	Tab   string `form:"tab" validate:"omitempty,oneof=all image video document"`
	Query string `form:"q" validate:"max=200"`
	View  string `form:"view" validate:"omitempty,oneof=grid list"`
}

// MediaView is a library entry with its human-readable size.
type MediaView struct {
	models.MediaFile
	SizeText string `json:"sizeText"`
}

// UploadFile describes one file the client intends to upload.
type UploadFile struct {
	Name     string `json:"name" validate:"required,max=255"`
	MimeType string `json:"mimeType" validate:"required"`
	Size     int64  `json:"size" validate:"min=0"`
}

// UploadRequest lists the files picked for upload.
type UploadRequest struct {
	Files []UploadFile `json:"files" validate:"required,min=1,max=20,dive"`
}

// UploadResponse acknowledges accepted files.
type UploadResponse struct {
	Accepted int          `json:"accepted"`
	Files    []UploadFile `json:"files"`
}

// CopyURLResponse returns the address placed on the clipboard.
type CopyURLResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
