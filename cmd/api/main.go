package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/frontino-api/internal/application/auth"
	appstorage "github.com/jhoicas/frontino-api/internal/application/storage"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
	"github.com/jhoicas/frontino-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/frontino-api/internal/interfaces/http"
	"github.com/jhoicas/frontino-api/pkg/config"
	"github.com/jhoicas/frontino-api/pkg/hash"
	"github.com/jhoicas/frontino-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, disconnect, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	clientRepo := mongodb.NewClientRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	gasBillRepo := mongodb.NewGasBillRepository(db)
	refillRepo := mongodb.NewGasCylinderRefillRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	fileStore, err := mongodb.NewGridFSStorage(db, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	hasher := hash.NewBcrypt(bcrypt.DefaultCost)

	clientUC := usecase.NewClientUseCase(clientRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo)
	gasBillUC := usecase.NewGasBillUseCase(gasBillRepo, memberRepo)
	refillUC := usecase.NewGasCylinderRefillUseCase(refillRepo)
	userUC := usecase.NewUserUseCase(userRepo, hasher)
	storageUC := appstorage.NewStorageUseCase(fileStore)
	authUC := auth.NewAuthUseCase(authRepo, userRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // subida de fotos de recibos y comprobantes
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frontino API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:  clientUC,
		MemberUC:  memberUC,
		GasBillUC: gasBillUC,
		RefillUC:  refillUC,
		UserUC:    userUC,
		AuthUC:    authUC,
		StorageUC: storageUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
