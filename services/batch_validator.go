package services

import (
	"encoding/json"
	"fmt"
	"math"

	"pricing-service/models"

	"github.com/shopspring/decimal"
)

// Business-rule violation messages. Shape violations are built dynamically
// from the received value.
const (
	MsgDuplicateCode     = "product code already present in this batch"
	MsgProductNotFound   = "product not found in catalog"
	MsgBelowCostPrice    = "new price is below the product cost price"
	MsgOutsideBand       = "new price is more than 10% away from the current sales price"
	MsgPackNotRepriced   = "all packs containing this product must be repriced in the same batch"
	MsgPackTotalMismatch = "pack price must equal the sum of its component prices"
)

// Allowed deviation from the current sales price.
var bandRate = decimal.NewFromFloat(0.10)

// ValidateBatch runs the whole batch through every pricing rule and returns
// one enriched change record per submitted row plus every violation found.
// It never mutates its inputs and is deterministic for a given batch order.
//
// Rows are visited strictly in submission order. The pack total rule reads the
// proposed prices of rows finalized earlier in the same pass, so reordering
// the batch can change the outcome; that left-to-right cascade is part of the
// contract and must not be collapsed into an order-independent resolution.
func ValidateBatch(products []models.Product, packs []models.Pack, rows []models.PriceChangeRow) ([]models.ProductChange, []models.ValidationError) {
	byCode := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}

	// Codes appearing anywhere in the batch, for the pack completeness rule.
	batchCodes := make(map[int64]bool, len(rows))
	for _, row := range rows {
		if code, violations := parseProductCode(row.Code); len(violations) == 0 {
			batchCodes[code] = true
		}
	}

	seen := make(map[string]bool, len(rows))
	// Proposed prices of rows already finalized, keyed by product code. Only
	// rows whose code and price both parsed cleanly take part in the cascade.
	proposed := make(map[int64]decimal.Decimal, len(rows))

	changes := make([]models.ProductChange, 0, len(rows))
	errs := make([]models.ValidationError, 0)

	addErr := func(i int, field, message string) {
		errs = append(errs, models.ValidationError{RowIndex: i, Field: field, Message: message})
	}

	for i, row := range rows {
		rawKey := rawCodeKey(row.Code)
		if seen[rawKey] {
			addErr(i, models.FieldProductCode, MsgDuplicateCode)
		}
		seen[rawKey] = true

		code, codeViolations := parseProductCode(row.Code)
		for _, v := range codeViolations {
			addErr(i, models.FieldProductCode, v)
		}

		var product models.Product
		productExists := false
		if len(codeViolations) == 0 {
			product, productExists = byCode[code]
			if !productExists {
				addErr(i, models.FieldProductCode, MsgProductNotFound)
			}
		}

		price, priceViolations := parseNewPrice(row.NewPrice)
		for _, v := range priceViolations {
			addErr(i, models.FieldNewPrice, v)
		}
		priceOK := len(priceViolations) == 0

		if productExists {
			cost := decimal.NewFromFloat(product.CostPrice)
			sales := decimal.NewFromFloat(product.SalesPrice)

			if priceOK {
				if price.LessThan(cost) {
					addErr(i, models.FieldNewPrice, MsgBelowCostPrice)
				}
				band := sales.Mul(bandRate)
				if price.GreaterThan(sales.Add(band)) || price.LessThan(sales.Sub(band)) {
					addErr(i, models.FieldNewPrice, MsgOutsideBand)
				}
			}

			components := packComponents(packs, product.Code)
			isPack := len(components) > 0

			// A plain component may only be repriced when every pack that
			// contains it is repriced in the same batch. The rule needs no
			// parsed price, so an unparseable new_price does not suppress it.
			if !isPack {
				for _, packID := range containingPacks(packs, product.Code) {
					if !batchCodes[packID] {
						addErr(i, models.FieldNewPrice, MsgPackNotRepriced)
						break
					}
				}
			}

			if priceOK && isPack {
				total := decimal.Zero
				for _, comp := range components {
					unit, repriced := proposed[comp.ProductID]
					if !repriced {
						if cp, found := byCode[comp.ProductID]; found {
							unit = decimal.NewFromFloat(cp.SalesPrice)
						} else {
							unit = decimal.Zero
						}
					}
					total = total.Add(unit.Mul(decimal.NewFromInt(comp.Qty)))
				}
				if !price.Equal(total.Round(2)) {
					addErr(i, models.FieldNewPrice, MsgPackTotalMismatch)
				}
			}
		}

		change := models.ProductChange{Code: row.Code, NewPrice: row.NewPrice}
		if productExists {
			name := product.Name
			salesPrice := product.SalesPrice
			costPrice := product.CostPrice
			change.Name = &name
			change.SalesPrice = &salesPrice
			change.CostPrice = &costPrice
		}
		changes = append(changes, change)

		// Finalize the row for the cascade. On duplicate codes the first
		// clean occurrence wins.
		if len(codeViolations) == 0 && priceOK {
			if _, exists := proposed[code]; !exists {
				proposed[code] = price
			}
		}
	}

	return changes, errs
}

// packComponents returns every composition row of the given pack code.
func packComponents(packs []models.Pack, code int64) []models.Pack {
	var components []models.Pack
	for _, p := range packs {
		if p.PackID == code {
			components = append(components, p)
		}
	}
	return components
}

// containingPacks returns the distinct pack codes the given product belongs to
// as a component.
func containingPacks(packs []models.Pack, code int64) []int64 {
	var packIDs []int64
	seen := make(map[int64]bool)
	for _, p := range packs {
		if p.ProductID == code && !seen[p.PackID] {
			seen[p.PackID] = true
			packIDs = append(packIDs, p.PackID)
		}
	}
	return packIDs
}

// parseProductCode validates that the raw value is a positive integer and
// returns one message per violated constraint.
func parseProductCode(raw any) (int64, []string) {
	f, ok := toFloat(raw)
	if !ok {
		return 0, []string{fmt.Sprintf("product code must be a number, received %s", jsonTypeName(raw))}
	}

	var violations []string
	if f != math.Trunc(f) {
		violations = append(violations, "product code must be an integer")
	}
	if f <= 0 {
		violations = append(violations, "product code must be greater than zero")
	}
	if len(violations) > 0 {
		return 0, violations
	}
	return int64(f), nil
}

// parseNewPrice validates that the raw value is a positive number.
func parseNewPrice(raw any) (decimal.Decimal, []string) {
	f, ok := toFloat(raw)
	if !ok {
		return decimal.Zero, []string{fmt.Sprintf("new price must be a number, received %s", jsonTypeName(raw))}
	}
	if f <= 0 {
		return decimal.Zero, []string{"new price must be greater than zero"}
	}
	return decimal.NewFromFloat(f), nil
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// rawCodeKey keys the seen-codes set on the raw submitted value, so duplicate
// detection works even for rows whose code never parses.
func rawCodeKey(raw any) string {
	return fmt.Sprintf("%T:%v", raw, raw)
}

func jsonTypeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
