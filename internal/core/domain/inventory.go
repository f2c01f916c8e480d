package domain

import "strconv"

// InventoryStatus classifies stock health from threshold comparisons.
// The integer codes are part of the wire format consumed by the browser UI
// and must not be reordered.
type InventoryStatus int

const (
	// StatusStockOut means the inventory count is zero or negative.
	StatusStockOut InventoryStatus = 0
	// StatusUnderStocked means the count is below the safety stock floor.
	StatusUnderStocked InventoryStatus = 1
	// StatusAppropriateNeedReorder means the count is above the safety
	// floor but at or under the reorder trigger.
	StatusAppropriateNeedReorder InventoryStatus = 2
	// StatusAppropriate means the count is within all configured bounds.
	StatusAppropriate InventoryStatus = 3
	// StatusOverStocked means the count exceeds the configured maximum.
	StatusOverStocked InventoryStatus = 4
	// StatusNotSet means no inventory count was recorded.
	StatusNotSet InventoryStatus = 5
)

// EvaluateInventoryStatus derives a stock classification from the recorded
// thresholds. Checks run top to bottom; the first match wins, so the result
// is total and deterministic for every input combination.
func EvaluateInventoryStatus(current, safetyStock, orderPoint, maxStock *int) InventoryStatus {
	if current == nil {
		return StatusNotSet
	}
	if *current <= 0 {
		return StatusStockOut
	}
	if safetyStock != nil && *current < *safetyStock {
		return StatusUnderStocked
	}
	if orderPoint != nil && *current < *orderPoint {
		return StatusAppropriateNeedReorder
	}
	if maxStock != nil && *current > *maxStock {
		return StatusOverStocked
	}
	return StatusAppropriate
}

// IsValid reports whether the status code is one of the known values.
func (s InventoryStatus) IsValid() bool {
	return s >= StatusStockOut && s <= StatusNotSet
}

// ParseInventoryStatus converts a wire code ("0".."5") into a status.
// Returns false for anything outside the known range.
func ParseInventoryStatus(s string) (InventoryStatus, bool) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return StatusNotSet, false
	}
	status := InventoryStatus(code)
	if status < StatusStockOut || status > StatusNotSet {
		return StatusNotSet, false
	}
	return status, true
}

// String returns a stable machine-readable name for logging.
func (s InventoryStatus) String() string {
	switch s {
	case StatusStockOut:
		return "stock-out"
	case StatusUnderStocked:
		return "under-stocked"
	case StatusAppropriateNeedReorder:
		return "appropriate-need-reorder"
	case StatusAppropriate:
		return "appropriate"
	case StatusOverStocked:
		return "over-stocked"
	case StatusNotSet:
		return "not-set"
	default:
		return "unknown"
	}
}

// OrderShortfall returns how many units must be ordered to reach the reorder
// point (falling back to the safety stock when no reorder point is set).
// It is meaningful only for stock-out, under-stocked and need-reorder records;
// ok is false otherwise. The value is recomputed on every call, never cached.
func (r *CollectionRecord) OrderShortfall() (int, bool) {
	switch r.InventoryStatus {
	case StatusStockOut, StatusUnderStocked, StatusAppropriateNeedReorder:
	default:
		return 0, false
	}
	target := r.OrderPoint
	if target == nil {
		target = r.SafetyStock
	}
	if target == nil || r.CurrentInventory == nil {
		return 0, false
	}
	return *target - *r.CurrentInventory, true
}

// Surplus returns how many units exceed the configured maximum stock.
// ok is false unless the record is over-stocked.
func (r *CollectionRecord) Surplus() (int, bool) {
	if r.InventoryStatus != StatusOverStocked {
		return 0, false
	}
	if r.MaxStock == nil || r.CurrentInventory == nil {
		return 0, false
	}
	return *r.CurrentInventory - *r.MaxStock, true
}
