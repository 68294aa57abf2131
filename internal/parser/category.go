package parser

import "strings"

// UncategorizedCategory is the default when no keyword matches.
const UncategorizedCategory = "Uncategorized"

// categoryRule maps description keywords to a coarse text category. These
// categories are independent of account coding: "TESCO" is always
// Expenses:Groceries even though account coding may fall to the catch-all.
type categoryRule struct {
	keywords []string
	category string
}

// categoryRules are evaluated top to bottom; first keyword hit wins.
var categoryRules = []categoryRule{
	{[]string{"salary", "payroll", "wages"}, "Income:Salary"},
	{[]string{"interest"}, "Income:Interest"},
	{[]string{"dividend", "investment"}, "Income:Investments"},
	{[]string{"refund"}, "Income:Refunds"},
	{[]string{"tesco", "sainsbury", "asda", "aldi", "lidl", "waitrose", "morrisons", "co-op", "iceland", "grocery", "groceries", "supermarket"}, "Expenses:Groceries"},
	{[]string{"restaurant", "cafe", "coffee", "costa", "starbucks", "pret", "mcdonald", "nando", "takeaway", "deliveroo", "just eat", "pizza"}, "Expenses:Dining"},
	{[]string{"fuel", "petrol", "diesel", "shell", "esso", "uber", "taxi", "trainline", "rail", "tfl", "bus ", "parking"}, "Expenses:Transport"},
	{[]string{"netflix", "spotify", "cinema", "disney", "prime video", "steam", "playstation", "xbox"}, "Expenses:Entertainment"},
	{[]string{"electric", "gas bill", "water", "utility", "edf", "e.on", "british gas", "octopus energy", "council tax"}, "Expenses:Utilities"},
	{[]string{"rent", "mortgage", "landlord"}, "Expenses:Housing"},
	{[]string{"insurance", "aviva", "axa", "admiral"}, "Expenses:Insurance"},
	{[]string{"amazon", "ebay", "argos", "john lewis", "shopping"}, "Expenses:Shopping"},
	{[]string{"bank charge", "bank fee", "overdraft", "account fee"}, "Expenses:Bank Fees"},
	{[]string{"vodafone", "o2 ", "ee ", "giffgaff", "broadband", "mobile"}, "Expenses:Telecoms"},
}

// Categorize assigns a coarse text category from the description by keyword
// lookup. Deterministic; defaults to Uncategorized.
func Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return UncategorizedCategory
}
