package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Adityaraj1711/billyatra/controllers"
	"github.com/Adityaraj1711/billyatra/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to the request TX)
	protected.Use(middlewares.Idempotency())

	// Per-request transaction, then business-scope resolution inside it
	protected.Use(middlewares.RequestTx())
	protected.Use(middlewares.ResolveScope())

	protected.Get("/current-user", controllers.CurrentUser)

	// Businesses
	protected.Get("/businesses", controllers.GetBusinesses)
	protected.Post("/businesses", controllers.CreateBusiness)
	protected.Get("/businesses/:id", controllers.GetBusiness)
	protected.Put("/businesses/:id", controllers.UpdateBusiness)
	protected.Delete("/businesses/:id", controllers.DeleteBusiness)

	// Customers
	protected.Get("/customers", controllers.GetCustomers)
	protected.Post("/customers", controllers.CreateCustomer)
	protected.Get("/customers/:id", controllers.GetCustomer)
	protected.Put("/customers/:id", controllers.UpdateCustomer)
	protected.Delete("/customers/:id", controllers.DeleteCustomer)

	// Inventory
	protected.Get("/inventories", controllers.GetInventories)
	protected.Post("/inventories", controllers.CreateInventory)
	protected.Get("/inventories/:id", controllers.GetInventory)
	protected.Put("/inventories/:id", controllers.UpdateInventory)
	protected.Delete("/inventories/:id", controllers.DeleteInventory)

	// Bills (nested items; ?start_date=&end_date=&customer=&item_name= filters)
	protected.Get("/bills", controllers.GetBills)
	protected.Post("/bills", controllers.CreateBill)
	protected.Get("/bills/:id", controllers.GetBill)
	protected.Put("/bills/:id", controllers.UpdateBill)
	protected.Delete("/bills/:id", controllers.DeleteBill)

	// Transactions (multipart bodies carry the optional bill_attachment file)
	protected.Get("/transactions", controllers.GetTransactions)
	protected.Post("/transactions", controllers.CreateTransaction)
	protected.Get("/transactions/:id", controllers.GetTransaction)
	protected.Put("/transactions/:id", controllers.UpdateTransaction)
	protected.Delete("/transactions/:id", controllers.DeleteTransaction)

	// Roles
	protected.Get("/roles", controllers.GetRoles)
	protected.Post("/roles", controllers.CreateRole)
	protected.Get("/roles/:id", controllers.GetRole)
	protected.Put("/roles/:id", controllers.UpdateRole)
	protected.Delete("/roles/:id", controllers.DeleteRole)

	// Staff
	protected.Get("/staff", controllers.GetStaffMembers)
	protected.Post("/staff", controllers.CreateStaff)
	protected.Get("/staff/:id", controllers.GetStaffMember)
	protected.Put("/staff/:id", controllers.UpdateStaffMember)
	protected.Delete("/staff/:id", controllers.DeleteStaffMember)
}
