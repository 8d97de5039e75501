package entity

import (
	"time"
)

// Folder is one node of the user-created catalog folder tree. Unlike the
// fixed project taxonomy, catalog folders nest to arbitrary depth.
type Folder struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	ParentID  string    `json:"parent_id,omitempty" firestore:"parentId"`
	Order     int       `json:"order" firestore:"order"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
