package mapping

import (
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/models"
)

// ToModelUpload converts a domain upload to its database shape.
func ToModelUpload(d domain.Upload) models.Upload {
	return models.Upload{
		UploadID:         d.UploadID,
		UserID:           d.UserID,
		Filename:         d.Filename,
		MediaType:        string(d.MediaType),
		TransactionCount: d.TransactionCount,
		UploadedAt:       d.UploadedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUpload converts a database upload to the domain model.
func ToDomainUpload(m models.Upload) domain.Upload {
	return domain.Upload{
		UploadID:         m.UploadID,
		UserID:           m.UserID,
		Filename:         m.Filename,
		MediaType:        domain.MediaType(m.MediaType),
		TransactionCount: m.TransactionCount,
		UploadedAt:       m.UploadedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUploadSlice converts a slice of database uploads.
func ToDomainUploadSlice(ms []models.Upload) []domain.Upload {
	out := make([]domain.Upload, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainUpload(m))
	}
	return out
}
