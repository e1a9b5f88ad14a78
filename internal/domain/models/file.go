package models

import "time"

// File is carried as metadata only; content upload and storage live
// outside this service.
type File struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	FolderID       *string    `json:"folderId"` // NULL = root level
	Name           string     `json:"name"`
	FileLink       string     `json:"fileLink"`
	SizeBytes      *int64     `json:"sizeBytes"`
	ShareExpiresAt *time.Time `json:"shareExpiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
