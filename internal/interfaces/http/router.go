package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-api/internal/application/auth"
	"github.com/tu-usuario/muebleria-api/internal/application/transaction"
	"github.com/tu-usuario/muebleria-api/internal/application/usecase"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	ProviderUC    *usecase.ProviderUseCase
	FurnitureUC   *usecase.FurnitureUseCase
	TransactionUC *transaction.UseCase
	ReceiptUC     *transaction.PDFUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Con JWTSecret vacío la API queda
// abierta; con secreto configurado todo salvo /auth requiere Bearer Token
// y los DELETE exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protect := func(handlers ...fiber.Handler) []fiber.Handler { return handlers }
	adminOnly := protect
	if deps.JWTSecret != "" {
		authMW := AuthMiddleware(deps.JWTSecret)
		adminMW := RequireRole(entity.RoleAdmin)
		protect = func(handlers ...fiber.Handler) []fiber.Handler {
			return append([]fiber.Handler{authMW}, handlers...)
		}
		adminOnly = func(handlers ...fiber.Handler) []fiber.Handler {
			return append([]fiber.Handler{authMW, adminMW}, handlers...)
		}
	}

	// Customers
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", protect(customerHandler.Create)...)
	customers.Get("/", protect(customerHandler.List)...)
	customers.Get("/:id", protect(customerHandler.GetByID)...)
	customers.Patch("/", protect(customerHandler.UpdateByNIF)...)
	customers.Patch("/:id", protect(customerHandler.Update)...)
	customers.Delete("/", adminOnly(customerHandler.DeleteByNIF)...)
	customers.Delete("/:id", adminOnly(customerHandler.Delete)...)

	// Providers
	providers := app.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", protect(providerHandler.Create)...)
	providers.Get("/", protect(providerHandler.List)...)
	providers.Get("/:id", protect(providerHandler.GetByID)...)
	providers.Patch("/", protect(providerHandler.UpdateByCIF)...)
	providers.Patch("/:id", protect(providerHandler.Update)...)
	providers.Delete("/", adminOnly(providerHandler.DeleteByCIF)...)
	providers.Delete("/:id", adminOnly(providerHandler.Delete)...)

	// Furnitures
	furnitures := app.Group("/furnitures")
	furnitureHandler := NewFurnitureHandler(deps.FurnitureUC)
	furnitures.Post("/", protect(furnitureHandler.Create)...)
	furnitures.Get("/", protect(furnitureHandler.List)...)
	furnitures.Get("/:id", protect(furnitureHandler.GetByID)...)
	furnitures.Patch("/", protect(furnitureHandler.UpdateByName)...)
	furnitures.Patch("/:id", protect(furnitureHandler.Update)...)
	furnitures.Delete("/", adminOnly(furnitureHandler.DeleteByName)...)
	furnitures.Delete("/:id", adminOnly(furnitureHandler.Delete)...)

	// Transactions
	transactions := app.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.ReceiptUC)
	transactions.Post("/", protect(transactionHandler.Create)...)
	transactions.Get("/", protect(transactionHandler.List)...)
	transactions.Get("/:id", protect(transactionHandler.GetByID)...)
	transactions.Get("/:id/pdf", protect(transactionHandler.GetPDF)...)
	transactions.Patch("/:id", protect(transactionHandler.Update)...)
	transactions.Delete("/:id", adminOnly(transactionHandler.Delete)...)
}
