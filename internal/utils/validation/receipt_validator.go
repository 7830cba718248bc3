package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// PurchaseDateLayout is the accepted purchaseDate format (YYYY-MM-DD).
	PurchaseDateLayout = "2006-01-02"
	// PurchaseTimeLayout is the accepted purchaseTime format (HH:MM, 24 hour clock).
	PurchaseTimeLayout = "15:04"

	// maxDecimalExponent bounds the base-10 exponent of prices and totals.
	// Scoring rescales amounts, so 1e100000000 would allocate a 10^8 digit integer.
	maxDecimalExponent = 20
)

var (
	purchaseTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	presenceValidator   = newPresenceValidator()
)

// newPresenceValidator reports failures by JSON field name instead of Go field name.
func newPresenceValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateReceipt returns every problem found in req, in check order.
// An empty result means the receipt can be scored.
// Missing top-level fields short-circuit all further checks.
func ValidateReceipt(req dto.ProcessReceiptRequest) []string {
	if missing := MissingFields(req); len(missing) > 0 {
		return missing
	}

	var errs []string

	// retailer is typed as a string; other JSON types are rejected while decoding (see TypeMismatchMessage).

	if _, err := time.Parse(PurchaseDateLayout, *req.PurchaseDate); err != nil {
		errs = append(errs, "Invalid purchaseDate format (expected YYYY-MM-DD)")
	}

	if !purchaseTimePattern.MatchString(*req.PurchaseTime) {
		errs = append(errs, "Invalid purchaseTime format (expected HH:MM)")
	}

	items := *req.Items
	if len(items) < 1 {
		errs = append(errs, "items must be a non-empty list")
	} else {
		for idx, item := range items {
			errs = append(errs, validateItem(idx, item)...)
		}
	}

	if msg := positiveDecimalError(*req.Total, "Invalid total format", "total must be positive"); msg != "" {
		errs = append(errs, msg)
	}

	return errs
}

// MissingFields returns a "Missing field" message for every required field absent from req.
func MissingFields(req dto.ProcessReceiptRequest) []string {
	names := missingFieldNames(req)
	if len(names) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, "Missing field: "+name)
	}
	return msgs
}

// MissingFieldsInObject is MissingFields for a request whose decoding stopped
// on a type error. The decoder leaves wrong-typed fields unset, so a field
// still counts as present when fields carries a non-null value for it.
func MissingFieldsInObject(req dto.ProcessReceiptRequest, fields map[string]json.RawMessage) []string {
	var msgs []string
	for _, name := range missingFieldNames(req) {
		if raw, ok := fields[name]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		msgs = append(msgs, "Missing field: "+name)
	}
	return msgs
}

func missingFieldNames(req dto.ProcessReceiptRequest) []string {
	err := presenceValidator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, fe.Field())
	}
	return names
}

func validateItem(idx int, item dto.ItemRequest) []string {
	if item.ShortDescription == nil || item.Price == nil {
		return []string{fmt.Sprintf("Item %d missing required fields", idx)}
	}

	var errs []string
	if strings.TrimSpace(*item.ShortDescription) == "" {
		errs = append(errs, fmt.Sprintf("Item %d description is empty after trimming", idx))
	}
	msg := positiveDecimalError(*item.Price,
		fmt.Sprintf("Item %d has invalid price format", idx),
		fmt.Sprintf("Item %d price must be positive", idx))
	if msg != "" {
		errs = append(errs, msg)
	}
	return errs
}

// positiveDecimalError returns formatMsg if value is not a decimal within
// the supported exponent range, nonPositiveMsg if it is <= 0, and "" otherwise.
func positiveDecimalError(value, formatMsg, nonPositiveMsg string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return formatMsg
	}
	if exp := d.Exponent(); exp > maxDecimalExponent || exp < -maxDecimalExponent {
		return formatMsg
	}
	if !d.IsPositive() {
		return nonPositiveMsg
	}
	return ""
}

// TypeMismatchMessage maps a JSON field path whose value had the wrong type
// to the validation message reported for it.
func TypeMismatchMessage(field string) string {
	switch {
	case field == "retailer":
		return "retailer must be a string"
	case field == "purchaseDate":
		return "Invalid purchaseDate format (expected YYYY-MM-DD)"
	case field == "purchaseTime":
		return "Invalid purchaseTime format (expected HH:MM)"
	case field == "items":
		return "items must be a non-empty list"
	case strings.HasPrefix(field, "items."):
		return "items must contain objects with string shortDescription and price"
	case field == "total":
		return "Invalid total format"
	case field == "":
		return "receipt must be a JSON object"
	default:
		return field + " has an invalid type"
	}
}
