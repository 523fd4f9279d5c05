package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/it22188236/Expense-Tracker-App/config"
	"github.com/it22188236/Expense-Tracker-App/infra/queue"
	"github.com/it22188236/Expense-Tracker-App/internal/api/rest/handlers"
	"github.com/it22188236/Expense-Tracker-App/internal/domain"
	"github.com/it22188236/Expense-Tracker-App/internal/helper"
	"github.com/it22188236/Expense-Tracker-App/internal/notify"
	"github.com/it22188236/Expense-Tracker-App/internal/repository"
	"github.com/it22188236/Expense-Tracker-App/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Transaction{},
		&domain.Budget{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	authHelper := helper.SetupAuth(cfg.TokenSecret)

	var mailer notify.Sender
	if cfg.KafkaBroker != "" {
		producer := queue.NewProducer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
		)
		mailer = notify.NewResetMailer(producer, cfg.ResetBaseURL)
	}

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, authHelper, mailer)
	transactionSvc := services.NewTransactionService(transactionRepo, userRepo)
	budgetSvc := services.NewBudgetService(budgetRepo)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewTransactionHandler(transactionSvc, authHelper).SetupRoutes(app)
	handlers.NewBudgetHandler(budgetSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
