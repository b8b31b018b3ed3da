package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/auth"
	"github.com/jhoicas/frontino-api/internal/application/storage"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC  *usecase.ClientUseCase
	MemberUC  *usecase.MemberUseCase
	GasBillUC *usecase.GasBillUseCase
	RefillUC  *usecase.GasCylinderRefillUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	StorageUC *storage.StorageUseCase
	JWTSecret string
}

// Router registra las rutas de la API bajo el prefijo global /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Health (público)
	api.Get("/health", func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, "ok", nil)
	})

	// Auth y sesiones (grupo público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/refresh-token", authHandler.RefreshToken)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/", authHandler.CreateAuth)
	authGroup.Get("/token/:token", authHandler.FindByToken)
	authGroup.Get("/:id", authHandler.GetByID)
	authGroup.Delete("/:id", authHandler.Delete)

	// Descarga de archivos (público: es el destino de las URLs emitidas)
	storageHandler := NewStorageHandler(deps.StorageUC)
	api.Get("/storage/files/*", storageHandler.Download)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.GetAll)
	clients.Get("/:id", clientHandler.GetByID)
	// La actualización de clientes acepta PATCH además de PUT.
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Members (protegido)
	members := protected.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.GetAll)
	members.Get("/client/:clientId", memberHandler.GetAllByClientID)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	// Gas bills (protegido); las rutas específicas van antes de /:id
	bills := protected.Group("/gas-bills")
	gasBillHandler := NewGasBillHandler(deps.GasBillUC)
	bills.Post("/", gasBillHandler.Create)
	bills.Get("/", gasBillHandler.GetAll)
	bills.Get("/member/:memberId/time/:time", gasBillHandler.FindByTimeAndMember)
	bills.Get("/grouped/client/:clientId", gasBillHandler.GroupByTime)
	bills.Get("/:id", gasBillHandler.GetByID)
	bills.Put("/:id", gasBillHandler.Update)
	bills.Delete("/:id", gasBillHandler.Delete)

	// Gas cylinder refills (protegido)
	refills := protected.Group("/gas-cylinder-refills")
	refillHandler := NewGasCylinderRefillHandler(deps.RefillUC)
	refills.Post("/", refillHandler.Create)
	refills.Get("/", refillHandler.GetAll)
	refills.Get("/cylinder/:cylinderId", refillHandler.GetAllByCylinderID)
	refills.Get("/:id", refillHandler.GetByID)
	refills.Put("/:id", refillHandler.Update)
	refills.Delete("/:id", refillHandler.Delete)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.GetAll)
	users.Get("/email/:email", userHandler.FindByEmail)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Storage (protegido)
	storageGroup := protected.Group("/storage")
	storageGroup.Post("/:folder", storageHandler.Upload)
	storageGroup.Get("/url/*", storageHandler.GetURL)
	storageGroup.Delete("/*", storageHandler.Delete)
}
