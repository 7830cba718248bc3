package domain

// PointsRule identifies one of the fixed scoring rules.
type PointsRule string

const (
	RuleRetailerName      PointsRule = "RETAILER_NAME"
	RuleRoundDollarTotal  PointsRule = "ROUND_DOLLAR_TOTAL"
	RuleQuarterTotal      PointsRule = "QUARTER_MULTIPLE_TOTAL"
	RuleItemPairs         PointsRule = "ITEM_PAIRS"
	RuleItemDescription   PointsRule = "ITEM_DESCRIPTION_LENGTH"
	RuleOddPurchaseDay    PointsRule = "ODD_PURCHASE_DAY"
	RuleAfternoonPurchase PointsRule = "AFTERNOON_PURCHASE"
)

// PointsEntry is the contribution of a single rule to a receipt's score.
type PointsEntry struct {
	Rule        PointsRule `json:"rule"`
	Description string     `json:"description"`
	Points      int64      `json:"points"`
}

// PointsBreakdown lists every rule's contribution in evaluation order.
type PointsBreakdown struct {
	Entries []PointsEntry `json:"entries"`
	Total   int64         `json:"total"`
}
