package mapping

import (
	"time"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/models"
)

// ToModelTransaction converts a domain transaction to its database shape.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:    d.TransactionID,
		UploadID:         d.UploadID,
		UserID:           d.UserID,
		TxnDate:          d.Date,
		Description:      d.Description,
		Amount:           d.Amount,
		Direction:        string(d.Direction),
		Currency:         d.Currency,
		Category:         d.Category,
		Confidence:       string(d.Confidence),
		Strategy:         d.Strategy,
		AccountCode:      d.AccountCode,
		CodingConfidence: string(d.CodingConfidence),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if !d.CodedAt.IsZero() {
		codedAt := d.CodedAt
		m.CodedAt = &codedAt
	}
	return m
}

// ToDomainTransaction converts a database transaction to the domain model.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UploadID:      m.UploadID,
		UserID:        m.UserID,
		CandidateTransaction: domain.CandidateTransaction{
			Date:        m.TxnDate,
			Description: m.Description,
			Amount:      m.Amount,
			Direction:   domain.Direction(m.Direction),
			Currency:    m.Currency,
			Category:    m.Category,
			Confidence:  domain.Confidence(m.Confidence),
			Strategy:    m.Strategy,
		},
		AccountCode:      m.AccountCode,
		CodingConfidence: domain.Confidence(m.CodingConfidence),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.CodedAt != nil {
		d.CodedAt = *m.CodedAt
	} else {
		d.CodedAt = time.Time{}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of database transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainTransaction(m))
	}
	return out
}
