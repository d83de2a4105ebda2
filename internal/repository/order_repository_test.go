package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/tireshop/internal/model"
	"github.com/avelez/tireshop/internal/repository"
)

var orderColumns = []string{
	"id", "placed_at", "customer_name", "customer_email", "customer_phone",
	"order_type", "items", "address", "total", "notes", "status", "created_at", "updated_at",
}

func TestOrderListAll_NewestFirstWithDecodedItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := repository.NewOrderRepo(db)

	now := time.Now().UTC()
	items := []byte(`[{"id":1,"brand":"Michelin","size":"225/65R17","price":80,"selectedQty":2}]`)
	address := []byte(`{"street":"1 Main St","city":"Reno","state":"NV","zipCode":"89501"}`)
	rows := sqlmock.NewRows(orderColumns).
		AddRow(2, now, "B", "b@example.com", "2", "delivery", items, address, 160.0, "ring bell", "pending", now, now).
		AddRow(1, now, "A", "a@example.com", "1", "pickup", items, nil, 160.0, nil, "completed", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM orders ORDER BY id DESC`).WillReturnRows(rows)

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, int64(2), orders[0].ID, "newest order first")
	require.NotNil(t, orders[0].Address)
	assert.Equal(t, "Reno", orders[0].Address.City)
	assert.Equal(t, "ring bell", orders[0].Notes)

	assert.Equal(t, int64(1), orders[1].ID)
	assert.Nil(t, orders[1].Address)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, model.OrderItem{TireID: 1, Brand: "Michelin", Size: "225/65R17", Price: 80, SelectedQty: 2}, orders[1].Items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTireBulkUpsert_AllOrNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := repository.NewTireRepo(db)

	tires := []model.Tire{
		{ID: 1, Brand: "Michelin", Size: "225/65R17", Quantity: 5, Price: 80},
		{ID: 2, Brand: "Goodyear", Size: "195/60R15", Quantity: 2, Price: 55, Notes: "display set"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tires`).
		WithArgs(int64(1), "Michelin", "225/65R17", 5, 80.0, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO tires`).
		WithArgs(int64(2), "Goodyear", "195/60R15", 2, 55.0, "display set").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.BulkUpsert(context.Background(), tires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTireListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := repository.NewTireRepo(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "brand", "size", "quantity", "price", "notes", "created_at", "updated_at"}).
		AddRow(1, "Michelin", "225/65R17", 5, 80.0, nil, now, now).
		AddRow(2, "Goodyear", "195/60R15", 2, 55.0, "display set", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, brand, size, quantity, price, notes, created_at, updated_at FROM tires ORDER BY id`)).
		WillReturnRows(rows)

	tires, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tires, 2)
	assert.Equal(t, "", tires[0].Notes)
	assert.Equal(t, "display set", tires[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
