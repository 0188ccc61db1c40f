package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"optimizer/internal/model"
)

func TestProductCatalogSeededOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 81)
	require.Equal(t, "1", products[0].ID)
	require.Equal(t, "Молоко (Sut)", products[0].Name)

	// Re-running the seed against a populated table is a no-op.
	require.NoError(t, SeedProducts(db))
	products, err = repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 81)
}

func TestUpsertOrderReplacesWholeDocument(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	price := 5000.0
	doc := model.OrderDocument{
		ID:     "O1",
		Status: "sent_to_financier",
		Products: []model.OrderLine{
			{ID: "1", Name: "Молоко (Sut)", Category: "🥛 Молочные продукты", Quantity: 10, Unit: "л", Price: &price},
			{ID: "60", Name: "Картофель (Kartoshka)", Category: "🥕 Овощи и зелень", Quantity: 25, Unit: "кг"},
		},
		CreatedAt: "2026-08-30T10:00:00Z",
		Branch:    "uchtepa",
	}
	require.NoError(t, repo.UpsertOrder(ctx, doc))

	doc.Status = "approved"
	doc.Products = doc.Products[:1]
	require.NoError(t, repo.UpsertOrder(ctx, doc))

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "approved", orders[0].Status)
	require.Len(t, orders[0].Products, 1, "the stored line-item list is replaced, not merged")
	require.Equal(t, "1", orders[0].Products[0].ID)
	require.NotNil(t, orders[0].Products[0].Price)
	require.Equal(t, price, *orders[0].Products[0].Price)
}

func TestListOrdersDecodesOptionalFields(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	delivered := "2026-08-29T18:00:00Z"
	require.NoError(t, repo.UpsertOrder(ctx, model.OrderDocument{
		ID:          "O2",
		Status:      "delivered",
		Products:    []model.OrderLine{{ID: "21", Name: "Хлеб (Non)", Category: "🍞 Хлеб и мучное", Quantity: 40, Unit: "шт"}},
		CreatedAt:   "2026-08-28T09:00:00Z",
		DeliveredAt: &delivered,
		Branch:      "chilanzar",
	}))

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].DeliveredAt)
	require.Equal(t, delivered, *orders[0].DeliveredAt)
	require.Nil(t, orders[0].EstimatedDeliveryDate)
}
