package controllers_test

import (
	"testing"
	"time"

	"github.com/Adityaraj1711/billyatra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBusinessSetsOwnerFromCaller(t *testing.T) {
	app := newTestApp(t)
	user := createUser(t, "founder")
	token := tokenFor(t, user)

	var got struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Owner string `json:"owner"`
	}
	status := do(t, app, "POST", "/api/businesses", token, map[string]any{
		"name":    "Corner Shop",
		"address": "1 Main St",
	}, &got)
	mustStatus(t, status, 201)
	assert.Equal(t, user.Id, got.Owner)

	// the new business immediately becomes the caller's scope
	var current struct {
		Business *struct {
			ID uint `json:"id"`
		} `json:"business"`
	}
	mustStatus(t, do(t, app, "GET", "/api/current-user", token, nil, &current), 200)
	require.NotNil(t, current.Business)
	assert.Equal(t, got.ID, current.Business.ID)
}

func TestUserCannotOwnTwoBusinesses(t *testing.T) {
	app := newTestApp(t)
	user := createUser(t, "founder")
	createBusiness(t, user, "First Shop")
	token := tokenFor(t, user)

	status := do(t, app, "POST", "/api/businesses", token, map[string]any{
		"name":    "Second Shop",
		"address": "2 Main St",
	}, nil)
	mustStatus(t, status, 400)

	var count int64
	testDB(t).Model(&models.Business{}).Where("owner_id = ?", user.Id).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteBusinessCascades(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	business := createBusiness(t, owner, "Corner Shop")
	customer := createCustomer(t, business, "Asha")
	item := createInventory(t, business, "Tea", 10, "5.00")
	seedBill(t, customer, time.Now().UTC(), item)

	helper := createUser(t, "helper")
	staff := models.Staff{UserID: helper.Id, BusinessID: business.ID}
	require.NoError(t, testDB(t).Create(&staff).Error)

	amount, err := models.NewMoney("42.00")
	require.NoError(t, err)
	txn := models.Transaction{CustomerID: customer.ID, Amount: amount, Type: models.TransactionCredit}
	require.NoError(t, testDB(t).Create(&txn).Error)

	token := tokenFor(t, owner)
	mustStatus(t, do(t, app, "DELETE", "/api/businesses/"+itoa(business.ID), token, nil, nil), 200)

	for name, model := range map[string]any{
		"customers":    &models.Customer{},
		"inventories":  &models.Inventory{},
		"staff":        &models.Staff{},
		"bills":        &models.Bill{},
		"bill_items":   &models.BillItem{},
		"transactions": &models.Transaction{},
		"businesses":   &models.Business{},
	} {
		var count int64
		testDB(t).Model(model).Count(&count)
		assert.Zero(t, count, "leftover rows in %s", name)
	}
}

func TestBusinessRetrieveOutsideScopeIs404(t *testing.T) {
	app := newTestApp(t)
	ownerA := createUser(t, "alice")
	businessA := createBusiness(t, ownerA, "Alice Mart")
	ownerB := createUser(t, "bob")
	createBusiness(t, ownerB, "Bob Mart")

	mustStatus(t, do(t, app, "GET", "/api/businesses/"+itoa(businessA.ID), tokenFor(t, ownerB), nil, nil), 404)
}

func TestUpdateBusinessPatchesScalars(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner")
	business := createBusiness(t, owner, "Corner Shop")
	token := tokenFor(t, owner)

	var got models.Business
	status := do(t, app, "PUT", "/api/businesses/"+itoa(business.ID), token, map[string]any{
		"name": "Corner Shop & Sons",
	}, &got)
	mustStatus(t, status, 200)

	var row models.Business
	require.NoError(t, testDB(t).First(&row, business.ID).Error)
	assert.Equal(t, "Corner Shop & Sons", row.Name)
	assert.Equal(t, "1 Main St", row.Address) // untouched
}
