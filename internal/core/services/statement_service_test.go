package services_test

import (
	"context"
	"testing"

	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/chart"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/core/services"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockUploadRepo *MockUploadRepository
	service        portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockUploadRepo = new(MockUploadRepository)
	coder := services.NewCodingService(chart.Default(), suite.mockTxnRepo)
	suite.service = services.NewStatementService(coder, suite.mockTxnRepo, suite.mockUploadRepo)
}

func csvRequest(data string) dto.ParseStatementRequest {
	return dto.ParseStatementRequest{
		UserID:    "user-1",
		Filename:  "statement.csv",
		MediaType: domain.MediaCSV,
		Data:      []byte(data),
	}
}

func (suite *StatementServiceTestSuite) TestParseStatement_IncomeCSV() {
	req := csvRequest("Date,Description,Money In\n05/03/2024,ACME LTD SALARY,1850.00\n")

	result, err := suite.service.ParseStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	require.True(suite.T(), result.Success)
	require.Len(suite.T(), result.Transactions, 1)

	txn := result.Transactions[0]
	assert.Equal(suite.T(), "2024-03-05", txn.Date)
	assert.Equal(suite.T(), "ACME LTD SALARY", txn.Description)
	assert.True(suite.T(), txn.Amount.Equal(decimal.RequireFromString("1850.00")))
	assert.Equal(suite.T(), domain.Income, txn.Direction)
	assert.Equal(suite.T(), "GBP", txn.Currency)
	assert.Equal(suite.T(), "Income:Salary", txn.Category)
	assert.Equal(suite.T(), "structured-column", txn.Strategy)
	assert.Equal(suite.T(), "4000", txn.AccountCode)
	assert.Equal(suite.T(), domain.ConfidenceHigh, txn.CodingConfidence)
	assert.Equal(suite.T(), "user-1", txn.UserID)
	assert.NotEmpty(suite.T(), txn.TransactionID)
}

func (suite *StatementServiceTestSuite) TestParseStatement_ExpenseFallsToCatchAll() {
	req := csvRequest("Date,Description,Money Out,Balance\n01/03/2024,TESCO STORES,45.20,1804.80\n")

	result, err := suite.service.ParseStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Transactions, 1)

	txn := result.Transactions[0]
	assert.Equal(suite.T(), "2024-03-01", txn.Date)
	assert.Equal(suite.T(), domain.Expense, txn.Direction)
	assert.Equal(suite.T(), "Expenses:Groceries", txn.Category)
	// No expense coding rule knows this merchant; the sundry catch-all takes
	// it and the confidence stays visibly low.
	assert.Equal(suite.T(), "8250", txn.AccountCode)
	assert.Equal(suite.T(), domain.ConfidenceLow, txn.CodingConfidence)
}

func (suite *StatementServiceTestSuite) TestParseStatement_DuplicateRowsCollapse() {
	req := csvRequest("Date,Description,Money Out\n01/03/2024,COSTA COFFEE,3.50\n01/03/2024,COSTA COFFEE,3.50\n")

	result, err := suite.service.ParseStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Transactions, 1)
}

func (suite *StatementServiceTestSuite) TestParseStatement_EmptyDocumentIsNotAnError() {
	req := csvRequest("Date,Description,Money In,Money Out\n")

	result, err := suite.service.ParseStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	assert.Empty(suite.T(), result.Transactions)
	assert.Contains(suite.T(), result.Error, "no transactions")
}

func (suite *StatementServiceTestSuite) TestParseStatement_ExtractionFailureIsReported() {
	req := dto.ParseStatementRequest{
		UserID:    "user-1",
		Filename:  "statement.pdf",
		MediaType: domain.MediaPDF,
		Data:      []byte("this is not a pdf"),
	}

	result, err := suite.service.ParseStatement(context.Background(), req)

	// Unreadable input is a reported outcome, not an error return.
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	assert.Contains(suite.T(), result.Error, "text extraction failed")
}

func (suite *StatementServiceTestSuite) TestParseStatement_ValidationError() {
	req := csvRequest("Date,Description,Money In\n")
	req.UserID = ""

	_, err := suite.service.ParseStatement(context.Background(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *StatementServiceTestSuite) TestParseStatement_CancelledContextIsTimeout() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := csvRequest("Date,Description,Money In\n05/03/2024,ACME LTD SALARY,1850.00\n")
	_, err := suite.service.ParseStatement(ctx, req)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTimeout)
}

func (suite *StatementServiceTestSuite) TestIngestStatement_PersistsUploadAndTransactions() {
	req := csvRequest("Date,Description,Money In\n05/03/2024,ACME LTD SALARY,1850.00\n")

	var savedUpload domain.Upload
	suite.mockUploadRepo.On("SaveUpload", mock.Anything, mock.AnythingOfType("domain.Upload")).
		Run(func(args mock.Arguments) { savedUpload = args.Get(1).(domain.Upload) }).
		Return(nil).Once()

	var savedTxns []domain.Transaction
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) { savedTxns = args.Get(1).([]domain.Transaction) }).
		Return(nil).Once()

	resp, err := suite.service.IngestStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), 1, resp.Upload.TransactionCount)
	assert.Equal(suite.T(), "statement.csv", savedUpload.Filename)

	require.Len(suite.T(), savedTxns, 1)
	assert.Equal(suite.T(), savedUpload.UploadID, savedTxns[0].UploadID)

	suite.mockUploadRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestIngestStatement_EmptyRunStillRecordsUpload() {
	req := csvRequest("Date,Description,Money In,Money Out\n")

	suite.mockUploadRepo.On("SaveUpload", mock.Anything, mock.AnythingOfType("domain.Upload")).Return(nil).Once()

	resp, err := suite.service.IngestStatement(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Upload.TransactionCount)
	assert.False(suite.T(), resp.Result.Success)

	suite.mockUploadRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
