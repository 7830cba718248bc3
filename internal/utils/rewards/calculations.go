package rewards

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/receipt_processor/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	roundDollarBonus   = 50
	quarterBonus       = 25
	pointsPerItemPair  = 5
	oddDayBonus        = 6
	afternoonBonus     = 10
	afternoonStartMins = 14 * 60 // inclusive
	afternoonEndMins   = 16 * 60 // exclusive
)

var (
	quarter             = decimal.RequireFromString("0.25")
	descriptionPriceCut = decimal.RequireFromString("0.2")
)

// CalculatePoints returns the reward points for a receipt that has passed validation.
func CalculatePoints(receipt domain.Receipt) int64 {
	return CalculateBreakdown(receipt).Total
}

// CalculateBreakdown evaluates every scoring rule and reports each contribution.
// The rules are independent, so the order only affects presentation.
func CalculateBreakdown(receipt domain.Receipt) domain.PointsBreakdown {
	entries := []domain.PointsEntry{
		{
			Rule:        domain.RuleRetailerName,
			Description: fmt.Sprintf("alphanumeric characters in retailer %q", receipt.Retailer),
			Points:      retailerNamePoints(receipt.Retailer),
		},
		{
			Rule:        domain.RuleRoundDollarTotal,
			Description: fmt.Sprintf("total %s is a round dollar amount", receipt.Total.String()),
			Points:      roundDollarPoints(receipt.Total),
		},
		{
			Rule:        domain.RuleQuarterTotal,
			Description: fmt.Sprintf("total %s is a multiple of 0.25", receipt.Total.String()),
			Points:      quarterMultiplePoints(receipt.Total),
		},
		{
			Rule:        domain.RuleItemPairs,
			Description: fmt.Sprintf("%d items, 5 points per pair", len(receipt.Items)),
			Points:      itemPairPoints(len(receipt.Items)),
		},
		{
			Rule:        domain.RuleItemDescription,
			Description: "trimmed description length is a multiple of 3",
			Points:      itemDescriptionPoints(receipt.Items),
		},
		{
			Rule:        domain.RuleOddPurchaseDay,
			Description: fmt.Sprintf("purchase day %d is odd", receipt.PurchaseDate.Day()),
			Points:      oddDayPoints(receipt),
		},
		{
			Rule:        domain.RuleAfternoonPurchase,
			Description: fmt.Sprintf("purchase time %s is between 14:00 and 16:00", receipt.PurchaseTime.Format("15:04")),
			Points:      afternoonPoints(receipt),
		},
	}

	var total int64
	for _, e := range entries {
		total += e.Points
	}
	return domain.PointsBreakdown{Entries: entries, Total: total}
}

func retailerNamePoints(retailer string) int64 {
	var points int64
	for _, r := range retailer {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			points++
		}
	}
	return points
}

func roundDollarPoints(total decimal.Decimal) int64 {
	if total.IsInteger() {
		return roundDollarBonus
	}
	return 0
}

func quarterMultiplePoints(total decimal.Decimal) int64 {
	if total.Mod(quarter).IsZero() {
		return quarterBonus
	}
	return 0
}

func itemPairPoints(count int) int64 {
	return int64(count/2) * pointsPerItemPair
}

// itemDescriptionPoints awards ceil(price * 0.2) for every item whose trimmed
// description length is a multiple of 3. Validation guarantees a non-empty description.
func itemDescriptionPoints(items []domain.Item) int64 {
	var points int64
	for _, item := range items {
		length := utf8.RuneCountInString(strings.TrimSpace(item.ShortDescription))
		if length == 0 || length%3 != 0 {
			continue
		}
		points += item.Price.Mul(descriptionPriceCut).RoundUp(0).IntPart()
	}
	return points
}

func oddDayPoints(receipt domain.Receipt) int64 {
	if receipt.PurchaseDate.Day()%2 == 1 {
		return oddDayBonus
	}
	return 0
}

func afternoonPoints(receipt domain.Receipt) int64 {
	mins := receipt.PurchaseTime.Hour()*60 + receipt.PurchaseTime.Minute()
	if mins >= afternoonStartMins && mins < afternoonEndMins {
		return afternoonBonus
	}
	return 0
}
