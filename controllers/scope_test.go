package controllers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossTenantDataIsInvisible(t *testing.T) {
	app := newTestApp(t)

	ownerA := createUser(t, "alice")
	businessA := createBusiness(t, ownerA, "Alice Mart")
	customerA := createCustomer(t, businessA, "Asha")
	itemA := createInventory(t, businessA, "Tea", 10, "5.00")
	billA := seedBill(t, customerA, time.Now().UTC(), itemA)

	ownerB := createUser(t, "bob")
	createBusiness(t, ownerB, "Bob Mart")
	tokenB := tokenFor(t, ownerB)

	var customers struct {
		Customers []map[string]any `json:"customers"`
	}
	mustStatus(t, do(t, app, "GET", "/api/customers", tokenB, nil, &customers), 200)
	assert.Empty(t, customers.Customers)

	var inventories struct {
		Inventories []map[string]any `json:"inventories"`
	}
	mustStatus(t, do(t, app, "GET", "/api/inventories", tokenB, nil, &inventories), 200)
	assert.Empty(t, inventories.Inventories)

	var bills billListResponse
	mustStatus(t, do(t, app, "GET", "/api/bills", tokenB, nil, &bills), 200)
	assert.Empty(t, bills.Bills)

	// retrieval is indistinguishable from "does not exist"
	mustStatus(t, do(t, app, "GET", "/api/customers/"+itoa(customerA.ID), tokenB, nil, nil), 404)
	mustStatus(t, do(t, app, "GET", "/api/inventories/"+itoa(itemA.ID), tokenB, nil, nil), 404)
	mustStatus(t, do(t, app, "GET", "/api/bills/"+itoa(billA.ID), tokenB, nil, nil), 404)

	// a cross-tenant bill referencing A's customer is a validation failure
	mustStatus(t, do(t, app, "POST", "/api/bills", tokenB, map[string]any{
		"customer":     customerA.ID,
		"total_amount": "1.00",
		"payment_mode": "CASH",
		"items":        []map[string]any{},
	}, nil), 400)
}

func TestStaffInheritsBusinessScope(t *testing.T) {
	app := newTestApp(t)

	owner := createUser(t, "owner")
	business := createBusiness(t, owner, "Corner Shop")
	customer := createCustomer(t, business, "Asha")

	helper := createUser(t, "helper")
	mustStatus(t, do(t, app, "POST", "/api/staff", tokenFor(t, owner), map[string]any{
		"user": helper.Id,
	}, nil), 201)

	var customers struct {
		Customers []struct {
			ID uint `json:"id"`
		} `json:"customers"`
	}
	mustStatus(t, do(t, app, "GET", "/api/customers", tokenFor(t, helper), nil, &customers), 200)
	require.Len(t, customers.Customers, 1)
	assert.Equal(t, customer.ID, customers.Customers[0].ID)
}

func TestScopelessCallerCannotCreateOrRead(t *testing.T) {
	app := newTestApp(t)
	drifter := createUser(t, "drifter")
	token := tokenFor(t, drifter)

	mustStatus(t, do(t, app, "POST", "/api/customers", token, map[string]any{
		"name":  "Asha",
		"phone": "5550001",
	}, nil), 403)

	mustStatus(t, do(t, app, "POST", "/api/bills", token, map[string]any{
		"customer":     1,
		"total_amount": "1.00",
		"payment_mode": "CASH",
		"items":        []map[string]any{},
	}, nil), 403)

	var customers struct {
		Customers []map[string]any `json:"customers"`
	}
	mustStatus(t, do(t, app, "GET", "/api/customers", token, nil, &customers), 200)
	assert.Empty(t, customers.Customers)

	var businesses struct {
		Businesses []map[string]any `json:"businesses"`
	}
	mustStatus(t, do(t, app, "GET", "/api/businesses", token, nil, &businesses), 200)
	assert.Empty(t, businesses.Businesses)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	app := newTestApp(t)
	mustStatus(t, do(t, app, "GET", "/api/customers", "", nil, nil), 401)
	mustStatus(t, do(t, app, "GET", "/api/current-user", "garbage-token", nil, nil), 401)
}
