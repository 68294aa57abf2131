package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccountInfo(t *testing.T) {
	text := "Barclays Bank PLC\n" +
		"Business Account statement\n" +
		"Sort code 20-45-45  Account number 12345678\n" +
		"Statement period 01/03/2024 to 31/03/2024\n"

	info := ExtractAccountInfo(text)

	assert.Equal(t, "Barclays", info.BankName)
	assert.Equal(t, "Business Account", info.AccountType)
	assert.Equal(t, "****5678", info.AccountNumber)
	assert.Equal(t, "**-**-45", info.SortCode)
	assert.Equal(t, "01/03/2024 to 31/03/2024", info.StatementPeriod)
}

func TestExtractAccountInfo_AllFieldsOptional(t *testing.T) {
	info := ExtractAccountInfo("nothing identifiable here")

	assert.Empty(t, info.BankName)
	assert.Empty(t, info.AccountType)
	assert.Empty(t, info.AccountNumber)
	assert.Empty(t, info.SortCode)
	assert.Empty(t, info.StatementPeriod)
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "****5678", maskAccountNumber("12345678"))
	assert.Equal(t, "1234", maskAccountNumber("1234"))
}

func TestMaskSortCode(t *testing.T) {
	assert.Equal(t, "**-**-45", maskSortCode("20-45-45"))
}
