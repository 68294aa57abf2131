package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/ledgerlift/ledgerlift/internal/chart"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/core/services"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TrialBalanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TrialBalanceSvcFacade
}

func (suite *TrialBalanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTrialBalanceService(chart.Default(), suite.mockRepo)
}

func codedTxn(id, date, code string, direction domain.Direction, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        "user-1",
		CandidateTransaction: domain.CandidateTransaction{
			Date:      date,
			Amount:    decimal.RequireFromString(amount),
			Direction: direction,
		},
		AccountCode: code,
	}
}

func (suite *TrialBalanceServiceTestSuite) TestGetTrialBalance_BalancedLedger() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "4000", domain.Income, "100.00"),
		codedTxn("t2", "2024-03-02", "7100", domain.Expense, "60.00"),
		codedTxn("t3", "2024-03-03", "7300", domain.Expense, "40.00"),
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Once()

	tb, err := suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), tb.Rows, 3)

	// Rows sorted by account code.
	assert.Equal(suite.T(), "4000", tb.Rows[0].Code)
	assert.Equal(suite.T(), "7100", tb.Rows[1].Code)
	assert.Equal(suite.T(), "7300", tb.Rows[2].Code)

	sales := tb.Rows[0]
	assert.True(suite.T(), sales.DebitAmount.IsZero())
	assert.Equal(suite.T(), "100", sales.CreditAmount.String())
	assert.Equal(suite.T(), "-100", sales.NetBalance.String())
	assert.Equal(suite.T(), 1, sales.TransactionCount)
	assert.Equal(suite.T(), "Income", sales.Section)

	rent := tb.Rows[1]
	assert.Equal(suite.T(), "60", rent.DebitAmount.String())
	assert.Equal(suite.T(), "60", rent.NetBalance.String())

	assert.Equal(suite.T(), "100", tb.Totals.TotalDebits.String())
	assert.Equal(suite.T(), "100", tb.Totals.TotalCredits.String())
	assert.True(suite.T(), tb.Totals.Difference.IsZero())
	assert.True(suite.T(), tb.Totals.IsBalanced)
	assert.Equal(suite.T(), 3, tb.Totals.RowCount)
}

func (suite *TrialBalanceServiceTestSuite) TestGetTrialBalance_SkipsUncodedAndUnknownCodes() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "7100", domain.Expense, "60.00"),
		codedTxn("t2", "2024-03-02", "9999", domain.Expense, "10.00"), // code not in chart
		{
			TransactionID: "t3",
			CandidateTransaction: domain.CandidateTransaction{
				Amount: decimal.NewFromInt(5), Direction: domain.Expense,
			},
		}, // uncoded
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Once()

	tb, err := suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), tb.Rows, 1)
	assert.Equal(suite.T(), "7100", tb.Rows[0].Code)
	assert.False(suite.T(), tb.Totals.IsBalanced)
}

func (suite *TrialBalanceServiceTestSuite) TestGetTrialBalance_ZeroBalanceRows() {
	ctx := context.Background()
	// The sundry account receives both directions and nets to zero.
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "8250", domain.Expense, "10.00"),
		codedTxn("t2", "2024-03-02", "8250", domain.Income, "10.00"),
		codedTxn("t3", "2024-03-03", "7100", domain.Expense, "60.00"),
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Twice()

	tb, err := suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), tb.Rows, 1)
	assert.Equal(suite.T(), "7100", tb.Rows[0].Code)

	tb, err = suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{IncludeZeroBalances: true})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), tb.Rows, 2)
	assert.Equal(suite.T(), "7100", tb.Rows[0].Code)
	assert.Equal(suite.T(), "8250", tb.Rows[1].Code)
	assert.True(suite.T(), tb.Rows[1].NetBalance.IsZero())
	assert.Equal(suite.T(), 2, tb.Rows[1].TransactionCount)
}

func (suite *TrialBalanceServiceTestSuite) TestGetTrialBalance_DateRangeReachesRepository() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "2024-03-01", "2024-03-31").
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-31",
	})

	require.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TrialBalanceServiceTestSuite) TestValidateForCommit_Ready() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "4000", domain.Income, "100.00"),
		codedTxn("t2", "2024-03-02", "7100", domain.Expense, "100.00"),
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Once()

	v, err := suite.service.ValidateForCommit(ctx, "user-1")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), v.IsBalanced)
	assert.Zero(suite.T(), v.UncodedCount)
	assert.Empty(suite.T(), v.Errors)
	assert.True(suite.T(), v.ReadyForCommit)
	assert.Equal(suite.T(), 2, v.TransactionCount)
}

func (suite *TrialBalanceServiceTestSuite) TestValidateForCommit_UncodedAndUnbalanced() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "7100", domain.Expense, "60.00"),
		{
			TransactionID: "t2",
			CandidateTransaction: domain.CandidateTransaction{
				Amount: decimal.NewFromInt(5), Direction: domain.Expense,
			},
		},
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Once()

	v, err := suite.service.ValidateForCommit(ctx, "user-1")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), v.ReadyForCommit)
	assert.Equal(suite.T(), 1, v.UncodedCount)
	assert.False(suite.T(), v.IsBalanced)
	assert.Len(suite.T(), v.Errors, 2)
}

func (suite *TrialBalanceServiceTestSuite) TestValidateForCommit_NoTransactions() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return([]domain.Transaction{}, nil).Once()

	v, err := suite.service.ValidateForCommit(ctx, "user-1")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), v.ReadyForCommit)
	require.Len(suite.T(), v.Errors, 1)
	assert.Contains(suite.T(), v.Errors[0], "no transactions")
}

func (suite *TrialBalanceServiceTestSuite) TestExportToCSV_RoundTrips() {
	ctx := context.Background()
	transactions := []domain.Transaction{
		codedTxn("t1", "2024-03-01", "4000", domain.Income, "100.00"),
		codedTxn("t2", "2024-03-02", "7100", domain.Expense, "60.00"),
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, "user-1", "", "").Return(transactions, nil).Once()

	tb, err := suite.service.GetTrialBalance(ctx, "user-1", dto.TrialBalanceOptions{})
	require.NoError(suite.T(), err)

	out, err := suite.service.ExportToCSV(tb)
	require.NoError(suite.T(), err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(suite.T(), err)

	// Header, one row per account, then the totals row.
	require.Len(suite.T(), records, 4)
	assert.Equal(suite.T(), []string{"Section", "Category", "Subcategory", "Code", "Name", "Type", "Debit", "Credit", "Net Balance"}, records[0])

	assert.Equal(suite.T(), "4000", records[1][3])
	assert.Equal(suite.T(), "100.00", records[1][7])
	assert.Equal(suite.T(), "7100", records[2][3])
	assert.Equal(suite.T(), "60.00", records[2][6])

	totals := records[3]
	assert.Equal(suite.T(), "TOTALS", totals[4])
	assert.Equal(suite.T(), "60.00", totals[6])
	assert.Equal(suite.T(), "100.00", totals[7])
}

func (suite *TrialBalanceServiceTestSuite) TestExportToCSV_NilReport() {
	_, err := suite.service.ExportToCSV(nil)
	assert.Error(suite.T(), err)
}

func TestTrialBalanceService(t *testing.T) {
	suite.Run(t, new(TrialBalanceServiceTestSuite))
}
