package chart

// CodingRule maps description keywords to an account code. Rules are
// evaluated top to bottom and the first keyword hit wins, so the order of the
// tables below is load-bearing: re-ordering changes classification.
type CodingRule struct {
	Keywords []string
	Code     string
}

// DefaultIncomeCode is assigned when no income rule matches.
const DefaultIncomeCode = "4000"

// DefaultExpenseCode is the catch-all when no expense rule matches.
const DefaultExpenseCode = "8250"

// IncomeRules returns the ordered coding rules for income transactions.
func IncomeRules() []CodingRule {
	return []CodingRule{
		{Keywords: []string{"salary", "payroll", "wages"}, Code: "4000"},
		{Keywords: []string{"interest"}, Code: "4906"},
		{Keywords: []string{"dividend", "investment"}, Code: "4903"},
		{Keywords: []string{"invoice", "payment received", "sales"}, Code: "4000"},
		{Keywords: []string{"commission", "fee received"}, Code: "4903"},
	}
}

// ExpenseRules returns the ordered coding rules for expense transactions.
// Merchant vocabulary is deliberately coarse; anything unmatched falls to the
// sundry catch-all rather than guessing.
func ExpenseRules() []CodingRule {
	return []CodingRule{
		{Keywords: []string{"bank charge", "bank fee", "overdraft", "account fee", "monthly fee", "service charge"}, Code: "7901"},
		{Keywords: []string{"fuel", "petrol", "diesel", "shell", "esso", "bp ", "texaco", "garage", "mot ", "motor"}, Code: "7300"},
		{Keywords: []string{"restaurant", "cafe", "coffee", "costa", "starbucks", "pret", "mcdonald", "nando", "takeaway", "deliveroo", "just eat"}, Code: "7403"},
		{Keywords: []string{"stationery", "staples", "office supplies", "ryman", "viking"}, Code: "7504"},
		{Keywords: []string{"vodafone", "o2 ", "ee ", "three ", "giffgaff", "bt ", "broadband", "mobile", "phone"}, Code: "7502"},
		{Keywords: []string{"insurance", "aviva", "axa", "admiral", "direct line"}, Code: "8204"},
		{Keywords: []string{"rent", "landlord", "letting"}, Code: "7100"},
		{Keywords: []string{"trainline", "rail", "tfl", "uber", "taxi", "hotel", "airline", "ryanair", "easyjet", "british airways", "travel"}, Code: "7400"},
		{Keywords: []string{"netflix", "spotify", "subscription", "membership", "amazon prime", "patreon"}, Code: "8201"},
		{Keywords: []string{"solicitor", "legal", "notary"}, Code: "7600"},
		{Keywords: []string{"accountant", "accountancy", "bookkeeping", "xero", "quickbooks", "sage"}, Code: "7601"},
		{Keywords: []string{"electric", "gas bill", "water", "utility", "edf", "e.on", "eon ", "octopus energy", "british gas", "thames water"}, Code: "7200"},
	}
}
