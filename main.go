package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"campusmarket/config"
	"campusmarket/controllers"
	"campusmarket/database"
	"campusmarket/middleware"
	"campusmarket/repositories"
	"campusmarket/routes"
	"campusmarket/services"
	"campusmarket/storage"
)

func main() {
	cfg := config.Load()

	// Inisialisasi database
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Object storage untuk foto barang
	mongoClient, err := storage.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Mongo connect error: %v", err)
	}
	objectStorage := storage.NewGridFSStorage(mongoClient, cfg.MongoDatabase)

	// Service inti, dirakit eksplisit di sini
	store := repositories.NewGormStore(db)
	notifier := services.NewDBNotifier(store)
	transaksiService := services.NewTransaksiService(store, notifier)
	ratingService := services.NewRatingService(store, notifier)

	// Controllers
	authController := controllers.NewAuthController(db, []byte(cfg.JWTSecret))
	barangController := controllers.NewBarangController(db, objectStorage)
	kategoriController := controllers.NewKategoriController(db)
	transaksiController := controllers.NewTransaksiController(transaksiService)
	ratingController := controllers.NewRatingController(ratingService)
	wishlistController := controllers.NewWishlistController(db)
	laporanController := controllers.NewLaporanController(db, notifier)
	notifikasiController := controllers.NewNotifikasiController(db)
	chatController := controllers.NewChatController(db, notifier)
	fileController := controllers.NewFileController(objectStorage)

	// Inisialisasi Fiber
	app := fiber.New()

	// 🛡 Middleware CORS & Logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New())

	auth := middleware.Authenticate(db, []byte(cfg.JWTSecret))

	// Daftarkan Routes
	routes.RegisterAuthRoutes(app, authController, auth)
	routes.RegisterBarangRoutes(app, barangController, auth)
	routes.RegisterKategoriRoutes(app, kategoriController, auth)
	routes.RegisterTransaksiRoutes(app, transaksiController, auth)
	routes.RegisterRatingRoutes(app, ratingController, auth)
	routes.RegisterWishlistRoutes(app, wishlistController, auth)
	routes.RegisterLaporanRoutes(app, laporanController, auth)
	routes.RegisterNotifikasiRoutes(app, notifikasiController, auth)
	routes.RegisterChatRoutes(app, chatController, auth)
	routes.RegisterFileRoutes(app, fileController)

	// Endpoint testing
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 Campusmarket Backend is Running!"})
	})

	fmt.Println("🚀 Server running on port " + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
