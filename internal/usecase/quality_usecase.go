package usecase

import (
	"context"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IQualityCheckUseCase is the assertion over the assembled fact table: no row
// may carry a negative total_order_value. It is a scan, not a transform: the
// returned set is a pass/fail signal plus diagnostic rows; a nil order value
// is not a violation (null is a separate, already-visible condition).

type IQualityCheckUseCase interface {
	CheckFactOrders(ctx context.Context, facts []entities.FactOrder) []entities.QualityViolation
}

type QualityCheckUseCase struct{}

var _ IQualityCheckUseCase = (*QualityCheckUseCase)(nil)

func NewQualityCheckUseCase() *QualityCheckUseCase {
	return &QualityCheckUseCase{}
}

func (u *QualityCheckUseCase) CheckFactOrders(ctx context.Context, facts []entities.FactOrder) []entities.QualityViolation {
	var violations []entities.QualityViolation
	for _, f := range facts {
		if f.TotalOrderValue != nil && *f.TotalOrderValue < 0 {
			violations = append(violations, entities.QualityViolation{
				OrderID:         f.OrderID,
				TotalOrderValue: *f.TotalOrderValue,
			})
		}
	}
	return violations
}
