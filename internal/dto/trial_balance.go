package dto

// TrialBalanceOptions filters a trial balance computation. Dates are ISO
// YYYY-MM-DD strings compared against normalized transaction dates;
// transactions whose dates never normalized (unrecognized source formats)
// fall outside any date filter.
type TrialBalanceOptions struct {
	DateFrom            string `json:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo              string `json:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IncludeZeroBalances bool   `json:"includeZeroBalances"`
}
