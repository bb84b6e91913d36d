package models

// Field tags used in validation errors.
const (
	FieldProductCode = "productCode"
	FieldNewPrice    = "newPrice"
)

// PriceChangeRow is one submitted row of the batch. Both fields arrive as raw
// JSON values of unknown shape; shape validation happens in the engine, not at
// the transport boundary.
type PriceChangeRow struct {
	Code     any `json:"code"`
	NewPrice any `json:"new_price"`
}

// PriceBatchRequest is the body of the batch validation endpoint.
type PriceBatchRequest struct {
	CSVData []PriceChangeRow `json:"csvData" validate:"max=10000"`
}

// ProductChange is the enriched record produced for every submitted row, in
// submission order, whether or not the row passed validation. Code and
// NewPrice echo the raw input verbatim; the catalog fields are nil when no
// product matched.
type ProductChange struct {
	Code       any      `json:"code"`
	NewPrice   any      `json:"new_price"`
	Name       *string  `json:"name"`
	SalesPrice *float64 `json:"sales_price"`
	CostPrice  *float64 `json:"cost_price"`
}

// ValidationError points at a single rule violation on a single row.
type ValidationError struct {
	RowIndex int    `json:"rowIndex"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// PriceBatchResult is the full engine output. ProductChanges always has one
// entry per submitted row; ErrorList is unbounded and independent.
type PriceBatchResult struct {
	ProductChanges []ProductChange   `json:"productChanges"`
	ErrorList      []ValidationError `json:"errorList"`
}
