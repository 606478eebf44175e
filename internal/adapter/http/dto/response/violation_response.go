package response

import "github.com/zach-gitere/olist-warehouse/internal/domain/entities"

// ViolationResponse is one row of the quality gate output: an order whose
// total value broke the non-negativity assertion.
type ViolationResponse struct {
	OrderID         string  `json:"order_id"`
	TotalOrderValue float64 `json:"total_order_value"`
}

func FromQualityViolations(violations []entities.QualityViolation) []ViolationResponse {
	if len(violations) == 0 {
		return nil
	}
	out := make([]ViolationResponse, 0, len(violations))
	for _, v := range violations {
		out = append(out, ViolationResponse{OrderID: v.OrderID, TotalOrderValue: v.TotalOrderValue})
	}
	return out
}
