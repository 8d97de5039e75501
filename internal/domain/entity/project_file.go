package entity

import (
	"time"
)

// ProjectFile is the metadata record of one uploaded file inside a project's
// fixed taxonomy. The binary payload lives in the asset store under ObjectName.
type ProjectFile struct {
	ID          string    `json:"id" firestore:"id"`
	ProjectID   string    `json:"project_id" firestore:"projectId"`
	FolderPath  string    `json:"folder_path" firestore:"folderPath"`
	Filename    string    `json:"filename" firestore:"filename"`
	URL         string    `json:"url" firestore:"url"`
	ObjectName  string    `json:"object_name" firestore:"objectName"`
	Size        int64     `json:"size" firestore:"size"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	UploadedBy  string    `json:"uploaded_by" firestore:"uploadedBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// FileReadStatus records that a customer opened a project file. It only
// exists while the referenced file does.
type FileReadStatus struct {
	ID         string    `json:"id" firestore:"id"`
	ProjectID  string    `json:"project_id" firestore:"projectId"`
	CustomerID string    `json:"customer_id" firestore:"customerId"`
	FilePath   string    `json:"file_path" firestore:"filePath"`
	ReadAt     time.Time `json:"read_at" firestore:"readAt"`
}

// ReportApproval records a customer's decision on a report file. Same
// lifecycle coupling as FileReadStatus.
type ReportApproval struct {
	ID         string    `json:"id" firestore:"id"`
	ProjectID  string    `json:"project_id" firestore:"projectId"`
	FilePath   string    `json:"file_path" firestore:"filePath"`
	CustomerID string    `json:"customer_id" firestore:"customerId"`
	Status     string    `json:"status" firestore:"status"`
	DecidedAt  time.Time `json:"decided_at" firestore:"decidedAt"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
