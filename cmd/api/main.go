package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Sayedtaha55/ray-eg/internal/auth"
	"github.com/Sayedtaha55/ray-eg/internal/cart"
	"github.com/Sayedtaha55/ray-eg/internal/catalog"
	"github.com/Sayedtaha55/ray-eg/internal/configurator"
	"github.com/Sayedtaha55/ray-eg/internal/db"
	"github.com/Sayedtaha55/ray-eg/internal/inventory"
	"github.com/Sayedtaha55/ray-eg/internal/middleware"
	"github.com/Sayedtaha55/ray-eg/internal/offers"
	"github.com/Sayedtaha55/ray-eg/internal/shop"
	"github.com/Sayedtaha55/ray-eg/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	shopRepo := shop.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	offerRepo := offers.NewPostgresRepository(pgDB)
	inventoryRepo := inventory.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	offerService := offers.NewService(offerRepo)
	catalogService := catalog.NewService(catalogRepo, offerService)
	inventoryService := inventory.NewService(inventoryRepo)
	shopService := shop.NewService(shopRepo, catalogService, r2Client)

	cartStore := cart.NewStore()
	cartService := cart.NewService(cartStore, inventoryService, cartRepo)
	sessions := configurator.NewSessionManager()

	// ───────────────────────── HANDLERS ─────────────────────────
	shopHandler := shop.NewHandler(shopService)
	catalogHandler := catalog.NewHandler(catalogService)
	offerHandler := offers.NewHandler(offerService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	configuratorHandler := configurator.NewHandler(sessions, catalogService)
	cartHandler := cart.NewHandler(cartService, catalogService, sessions)

	// ───────────────────────── PUBLIC CATALOG ─────────────────────────
	r.GET("/storefront/:slug", shopHandler.Preview)
	r.GET("/shops/:id/products", catalogHandler.ListShopProducts)
	r.GET("/shops/:id/offers", offerHandler.ListShopOffers)
	r.GET("/products/:id", catalogHandler.GetProduct)

	// ───────────────────────── MERCHANT ROUTES ─────────────────────────
	shops := r.Group("/shops")
	shops.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleMerchant),
	)
	{
		shops.POST("", shopHandler.CreateShop)
		shops.GET("/me", shopHandler.ListMyShops)
		shops.POST("/:id/gallery", shopHandler.UploadGalleryMedia)
	}

	products := r.Group("/products")
	products.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleMerchant),
	)
	{
		products.PATCH("/:id/stock", inventoryHandler.UpdateStock)
	}

	// ───────────────────────── CONFIGURATOR ─────────────────────────
	config := r.Group("/configurator")
	config.Use(middleware.AuthMiddleware())
	{
		config.POST("/session", configuratorHandler.Open)
		config.GET("/session", configuratorHandler.GetState)
		config.POST("/session/variant", configuratorHandler.PickVariant)
		config.POST("/session/addons/toggle", configuratorHandler.ToggleAddon)
		config.POST("/session/commit", cartHandler.CommitSession)
		config.POST("/session/cancel", configuratorHandler.Cancel)
	}

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:lineId/quantity", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:lineId", cartHandler.RemoveLine)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
