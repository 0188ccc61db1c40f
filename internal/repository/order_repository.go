package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"optimizer/internal/model"
)

// OrderRepository persists order documents and serves the product catalog.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListOrders returns every stored order with line items decoded.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]model.OrderDocument, error) {
	var rows []model.Order
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	docs := make([]model.OrderDocument, 0, len(rows))
	for _, row := range rows {
		var lines []model.OrderLine
		if err := json.Unmarshal([]byte(row.Products), &lines); err != nil {
			return nil, fmt.Errorf("decode order %s: %w", row.ID, err)
		}
		docs = append(docs, model.OrderDocument{
			ID:                    row.ID,
			Status:                row.Status,
			Products:              lines,
			CreatedAt:             row.CreatedAt,
			DeliveredAt:           row.DeliveredAt,
			EstimatedDeliveryDate: row.EstimatedDeliveryDate,
			Branch:                row.Branch,
		})
	}
	return docs, nil
}

// UpsertOrder inserts or replaces the whole order document keyed by its ID.
// The stored line-item list is overwritten each call, never patched.
func (r *OrderRepository) UpsertOrder(ctx context.Context, doc model.OrderDocument) error {
	encoded, err := json.Marshal(doc.Products)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", doc.ID, err)
	}

	row := model.Order{
		ID:                    doc.ID,
		Status:                doc.Status,
		Products:              string(encoded),
		CreatedAt:             doc.CreatedAt,
		DeliveredAt:           doc.DeliveredAt,
		EstimatedDeliveryDate: doc.EstimatedDeliveryDate,
		Branch:                doc.Branch,
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("upsert order %s: %w", doc.ID, err)
	}
	return nil
}

// ListProducts returns the seeded catalog.
func (r *OrderRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("CAST(id AS INTEGER)").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
