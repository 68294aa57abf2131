package services_test

import (
	"context"
	"time"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, dateFrom, dateTo string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionCode(ctx context.Context, userID, transactionID, accountCode string, confidence domain.Confidence, codedAt time.Time) error {
	args := m.Called(ctx, userID, transactionID, accountCode, confidence, codedAt)
	return args.Error(0)
}

// MockUploadRepository is a mock type for the UploadRepository interface
type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) SaveUpload(ctx context.Context, upload domain.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadRepository) FindUploadByID(ctx context.Context, userID, uploadID string) (*domain.Upload, error) {
	args := m.Called(ctx, userID, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadRepository) ListUploadsByUser(ctx context.Context, userID string) ([]domain.Upload, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Upload), args.Error(1)
}
