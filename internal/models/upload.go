package models

import "time"

// Upload records one ingested statement document.
type Upload struct {
	UploadID         string    `json:"uploadID"` // Primary Key (UUID)
	UserID           string    `json:"userID"`
	Filename         string    `json:"filename"`
	MediaType        string    `json:"mediaType"`
	TransactionCount int       `json:"transactionCount"`
	UploadedAt       time.Time `json:"uploadedAt"`
	AuditFields
}
