package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"pos-backend/internal/admin"
	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/docs"
	"pos-backend/internal/inventory"
	"pos-backend/internal/logging"
	"pos-backend/internal/member"
	"pos-backend/internal/metrics"
	"pos-backend/internal/models"
	"pos-backend/internal/promo"
	"pos-backend/internal/purchase"
	"pos-backend/internal/report"
	"pos-backend/internal/response"
	"pos-backend/internal/sales"
	"pos-backend/internal/shift"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg)
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		AppName: "pos-backend",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			if code >= 500 {
				logging.Log.WithFields(map[string]any{
					"request_id": c.Locals("requestid"),
					"method":     c.Method(),
					"path":       c.Path(),
				}).WithError(err).Error("request failed")
				message = "internal server error"
			}
			return response.Error(c, code, message)
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(metrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return response.OK(c, "ok", fiber.Map{"env": cfg.Env})
	})
	app.Get("/metrics", metrics.Handler())
	docs.Register(app, cfg)

	api := app.Group("/api")

	// Public.
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Everything below requires a valid token.
	api.Use(auth.JWTMiddleware(cfg))
	api.Get("/auth/me", auth.MeHandler())

	adminOnly := auth.RequireRole(models.RoleSuperAdmin, models.RoleAdmin)
	managers := auth.RequireRole(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager)
	backOffice := auth.RequireRole(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager, models.RoleSupervisor)
	anyStaff := auth.RequireRole(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager, models.RoleSupervisor, models.RoleCashier)

	// Branches.
	branches := api.Group("/branches")
	branches.Get("/", anyStaff, admin.ListBranchesHandler())
	branches.Get("/:id", anyStaff, admin.GetBranchHandler())
	branches.Post("/", adminOnly, admin.CreateBranchHandler())
	branches.Put("/:id", adminOnly, admin.UpdateBranchHandler())
	branches.Delete("/:id", adminOnly, admin.DeleteBranchHandler())

	// Users.
	users := api.Group("/users", adminOnly)
	users.Get("/", admin.ListUsersHandler())
	users.Get("/:id", admin.GetUserHandler())
	users.Post("/", admin.CreateUserHandler(cfg))
	users.Put("/:id", admin.UpdateUserHandler(cfg))
	users.Delete("/:id", admin.DeleteUserHandler())

	// Members.
	members := api.Group("/members")
	members.Get("/", anyStaff, member.ListMembersHandler())
	members.Get("/:id", anyStaff, member.GetMemberHandler())
	members.Post("/", anyStaff, auth.RequireAccess("members", models.AccessCreate), member.CreateMemberHandler())
	members.Put("/:id", backOffice, auth.RequireAccess("members", models.AccessUpdate), member.UpdateMemberHandler())
	members.Delete("/:id", managers, auth.RequireAccess("members", models.AccessDelete), member.DeleteMemberHandler())

	// Product categories.
	categories := api.Group("/category-products")
	categories.Get("/", anyStaff, inventory.ListCategoriesHandler())
	categories.Get("/:id", anyStaff, inventory.GetCategoryHandler())
	categories.Post("/", backOffice, auth.RequireAccess("category_products", models.AccessCreate), inventory.CreateCategoryHandler())
	categories.Put("/:id", backOffice, auth.RequireAccess("category_products", models.AccessUpdate), inventory.UpdateCategoryHandler())
	categories.Delete("/:id", managers, auth.RequireAccess("category_products", models.AccessDelete), inventory.DeleteCategoryHandler())

	// Products.
	products := api.Group("/products")
	products.Get("/", anyStaff, inventory.ListProductsHandler())
	products.Get("/:id", anyStaff, inventory.GetProductHandler())
	products.Post("/", backOffice, auth.RequireAccess("products", models.AccessCreate), inventory.CreateProductHandler())
	products.Put("/:id", backOffice, auth.RequireAccess("products", models.AccessUpdate), inventory.UpdateProductHandler())
	products.Delete("/:id", managers, auth.RequireAccess("products", models.AccessDelete), inventory.DeleteProductHandler())

	// Suppliers.
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", backOffice, inventory.ListSuppliersHandler())
	suppliers.Get("/:id", backOffice, inventory.GetSupplierHandler())
	suppliers.Post("/", backOffice, auth.RequireAccess("suppliers", models.AccessCreate), inventory.CreateSupplierHandler())
	suppliers.Put("/:id", backOffice, auth.RequireAccess("suppliers", models.AccessUpdate), inventory.UpdateSupplierHandler())
	suppliers.Delete("/:id", managers, auth.RequireAccess("suppliers", models.AccessDelete), inventory.DeleteSupplierHandler())

	// Stock mutations.
	mutations := api.Group("/stock-mutations")
	mutations.Get("/", backOffice, inventory.ListStockMutationsHandler())
	mutations.Get("/:id", backOffice, inventory.GetStockMutationHandler())
	mutations.Post("/", backOffice, auth.RequireAccess("stock_mutations", models.AccessCreate), inventory.CreateStockMutationHandler())
	mutations.Delete("/:id", managers, auth.RequireAccess("stock_mutations", models.AccessDelete), inventory.DeleteStockMutationHandler())

	// Returns of goods.
	returns := api.Group("/return-of-goods")
	returns.Get("/", backOffice, inventory.ListReturnsHandler())
	returns.Get("/:id", backOffice, inventory.GetReturnHandler())
	returns.Post("/", backOffice, auth.RequireAccess("return_of_goods", models.AccessCreate), inventory.CreateReturnHandler())
	returns.Put("/:id", backOffice, auth.RequireAccess("return_of_goods", models.AccessUpdate), inventory.UpdateReturnHandler())
	returns.Delete("/:id", managers, auth.RequireAccess("return_of_goods", models.AccessDelete), inventory.DeleteReturnHandler())

	// Purchases.
	purchases := api.Group("/purchases")
	purchases.Get("/", backOffice, purchase.ListPurchasesHandler())
	purchases.Get("/:id", backOffice, purchase.GetPurchaseHandler())
	purchases.Post("/", backOffice, auth.RequireAccess("purchases", models.AccessCreate), purchase.CreatePurchaseHandler())
	purchases.Put("/:id", backOffice, auth.RequireAccess("purchases", models.AccessUpdate), purchase.UpdatePurchaseHandler())
	purchases.Delete("/:id", managers, auth.RequireAccess("purchases", models.AccessDelete), purchase.DeletePurchaseHandler())

	// Sales.
	saleRoutes := api.Group("/sales")
	saleRoutes.Get("/", anyStaff, sales.ListSalesHandler())
	saleRoutes.Get("/:id", anyStaff, sales.GetSaleHandler())
	saleRoutes.Post("/", anyStaff, auth.RequireAccess("sales", models.AccessCreate), sales.CreateSaleHandler())
	saleRoutes.Put("/:id", backOffice, auth.RequireAccess("sales", models.AccessUpdate), sales.UpdateSaleHandler())
	saleRoutes.Delete("/:id", managers, auth.RequireAccess("sales", models.AccessDelete), sales.DeleteSaleHandler())

	// Shifts.
	shifts := api.Group("/shifts")
	shifts.Get("/", anyStaff, shift.ListShiftsHandler())
	shifts.Get("/:id", anyStaff, shift.GetShiftHandler())
	shifts.Get("/:id/activities", backOffice, shift.ListShiftActivitiesHandler())
	shifts.Post("/", anyStaff, shift.OpenShiftHandler())
	shifts.Put("/:id/close", anyStaff, shift.CloseShiftHandler())
	shifts.Delete("/:id", managers, shift.DeleteShiftHandler())

	// Promos.
	promos := api.Group("/promos")
	promos.Get("/", anyStaff, promo.ListPromosHandler())
	promos.Get("/:id", anyStaff, promo.GetPromoHandler())
	promos.Post("/", backOffice, auth.RequireAccess("promos", models.AccessCreate), promo.CreatePromoHandler())
	promos.Put("/:id", backOffice, auth.RequireAccess("promos", models.AccessUpdate), promo.UpdatePromoHandler())
	promos.Delete("/:id", managers, auth.RequireAccess("promos", models.AccessDelete), promo.DeletePromoHandler())

	// Loyalty points.
	loyalty := api.Group("/loyalty-points")
	loyalty.Get("/", anyStaff, member.ListLoyaltyPointsHandler())
	loyalty.Get("/:id", anyStaff, member.GetLoyaltyPointHandler())
	loyalty.Post("/", backOffice, auth.RequireAccess("loyalty_points", models.AccessCreate), member.CreateLoyaltyPointHandler())
	loyalty.Delete("/:id", managers, auth.RequireAccess("loyalty_points", models.AccessDelete), member.DeleteLoyaltyPointHandler())

	// Settings.
	api.Get("/settings", backOffice, admin.GetSettingHandler())
	api.Put("/settings", adminOnly, admin.SaveSettingHandler())

	// Access rights.
	rights := api.Group("/access-rights", adminOnly)
	rights.Get("/check", admin.CheckAccessRightHandler())
	rights.Get("/", admin.ListAccessRightsHandler())
	rights.Get("/:id", admin.GetAccessRightHandler())
	rights.Post("/", admin.CreateAccessRightHandler())
	rights.Put("/:id", admin.UpdateAccessRightHandler())
	rights.Delete("/:id", admin.DeleteAccessRightHandler())

	// Audit logs.
	logs := api.Group("/audit-logs", backOffice)
	logs.Get("/", audit.ListAuditLogsHandler())
	logs.Get("/:id", audit.GetAuditLogHandler())

	// Reports.
	reports := api.Group("/reports", backOffice)
	reports.Get("/sales", report.SalesReportHandler())
	reports.Get("/sales/export", report.ExportSalesReportHandler())

	logging.Log.WithField("port", cfg.HTTPPort).Info("server starting")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logging.Log.WithError(err).Fatal("server stopped")
	}
}
