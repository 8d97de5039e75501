package entity

import (
	"time"
)

type GalleryImage struct {
	ID         string    `json:"id" firestore:"id"`
	Title      string    `json:"title" firestore:"title"`
	URL        string    `json:"url" firestore:"url"`
	ObjectName string    `json:"object_name" firestore:"objectName"`
	Order      int       `json:"order" firestore:"order"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
