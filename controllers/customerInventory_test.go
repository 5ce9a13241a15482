package controllers_test

import (
	"testing"
	"time"

	"github.com/Adityaraj1711/billyatra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	createBusiness(t, owner, "Corner Shop")
	token := tokenFor(t, owner)

	var created models.Customer
	status := do(t, app, "POST", "/api/customers", token, map[string]any{
		"name":  "  Asha  ",
		"phone": "5550001",
		"email": "asha@example.com",
	}, &created)
	mustStatus(t, status, 201)
	assert.Equal(t, "Asha", created.Name) // trimmed

	var fetched models.Customer
	mustStatus(t, do(t, app, "GET", "/api/customers/"+itoa(created.ID), token, nil, &fetched), 200)
	assert.Equal(t, created.ID, fetched.ID)

	mustStatus(t, do(t, app, "PUT", "/api/customers/"+itoa(created.ID), token, map[string]any{
		"phone": "5559999",
	}, nil), 200)
	var row models.Customer
	require.NoError(t, testDB(t).First(&row, created.ID).Error)
	assert.Equal(t, "5559999", row.Phone)
	assert.Equal(t, "Asha", row.Name) // untouched

	mustStatus(t, do(t, app, "DELETE", "/api/customers/"+itoa(created.ID), token, nil, nil), 200)
	mustStatus(t, do(t, app, "GET", "/api/customers/"+itoa(created.ID), token, nil, nil), 404)
}

func TestDeleteCustomerCascadesBillsAndTransactions(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	business := createBusiness(t, owner, "Corner Shop")
	customer := createCustomer(t, business, "Asha")
	item := createInventory(t, business, "Tea", 10, "5.00")
	bill := seedBill(t, customer, time.Now().UTC(), item)

	amount, err := models.NewMoney("20.00")
	require.NoError(t, err)
	txn := models.Transaction{CustomerID: customer.ID, Amount: amount, Type: models.TransactionDebit}
	require.NoError(t, testDB(t).Create(&txn).Error)

	token := tokenFor(t, owner)
	mustStatus(t, do(t, app, "DELETE", "/api/customers/"+itoa(customer.ID), token, nil, nil), 200)

	var billCount, itemCount, txnCount int64
	testDB(t).Model(&models.Bill{}).Where("id = ?", bill.ID).Count(&billCount)
	testDB(t).Model(&models.BillItem{}).Where("bill_id = ?", bill.ID).Count(&itemCount)
	testDB(t).Model(&models.Transaction{}).Where("customer_id = ?", customer.ID).Count(&txnCount)
	assert.Zero(t, billCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, txnCount)

	// the inventory item itself survives
	var inv models.Inventory
	require.NoError(t, testDB(t).First(&inv, item.ID).Error)
}

func TestInventoryCRUDAndMoneyFormatting(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	createBusiness(t, owner, "Corner Shop")
	token := tokenFor(t, owner)

	var created struct {
		ID           uint   `json:"id"`
		Price        string `json:"price"`
		CurrentStock int    `json:"current_stock"`
	}
	status := do(t, app, "POST", "/api/inventories", token, map[string]any{
		"name":          "Tea",
		"price":         "5.5", // normalizes to two fractional digits
		"current_stock": 12,
	}, &created)
	mustStatus(t, status, 201)
	assert.Equal(t, "5.50", created.Price)
	assert.Equal(t, 12, created.CurrentStock)

	mustStatus(t, do(t, app, "PUT", "/api/inventories/"+itoa(created.ID), token, map[string]any{
		"price": "6.25",
	}, nil), 200)
	var row models.Inventory
	require.NoError(t, testDB(t).First(&row, created.ID).Error)
	assert.Equal(t, "6.25", row.Price.StringFixed(2))
	assert.Equal(t, 12, row.CurrentStock) // untouched
}

func TestDeleteInventoryDropsReferencingBillItems(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	business := createBusiness(t, owner, "Corner Shop")
	customer := createCustomer(t, business, "Asha")
	tea := createInventory(t, business, "Tea", 10, "5.00")
	sugar := createInventory(t, business, "Sugar", 10, "2.00")
	bill := seedBill(t, customer, time.Now().UTC(), tea, sugar)

	token := tokenFor(t, owner)
	mustStatus(t, do(t, app, "DELETE", "/api/inventories/"+itoa(tea.ID), token, nil, nil), 200)

	// the bill survives but loses the deleted item's line
	var items []models.BillItem
	require.NoError(t, testDB(t).Where("bill_id = ?", bill.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, sugar.ID, items[0].InventoryItemID)
}
