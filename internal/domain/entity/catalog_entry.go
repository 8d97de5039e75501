package entity

import (
	"time"
)

// CatalogEntry is one PDF document inside a catalog folder.
type CatalogEntry struct {
	ID         string    `json:"id" firestore:"id"`
	FolderID   string    `json:"folder_id" firestore:"folderId"`
	Title      string    `json:"title" firestore:"title"`
	FileURL    string    `json:"file_url" firestore:"fileUrl"`
	ObjectName string    `json:"object_name,omitempty" firestore:"objectName"`
	Order      int       `json:"order" firestore:"order"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
