package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recipehub/internal/database"
	"recipehub/internal/middleware"
	"recipehub/internal/modules/auth"
	"recipehub/internal/modules/cart"
	"recipehub/internal/modules/catalog"
	"recipehub/internal/modules/favorite"
	"recipehub/internal/modules/feed"
	"recipehub/internal/modules/recipe"
	"recipehub/internal/modules/subscription"
	jwtsvc "recipehub/internal/pkg/jwt"
	"recipehub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "recipehub.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := feed.NewHub()
	defer hub.Close()
	notifier := feed.NewNotifier(hub, subRepo)
	feedHandler := feed.NewHandler(hub)

	authService := auth.NewService(userRepo, subRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(tagRepo, ingredientRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	recipeService := recipe.NewService(
		recipeRepo,
		ingredientRepo,
		tagRepo,
		userRepo,
		favRepo,
		cartRepo,
		subRepo,
		notifier,
	)
	recipeHandler := recipe.NewHandler(recipeService)

	subService := subscription.NewService(subRepo, userRepo, recipeRepo)
	subHandler := subscription.NewHandler(subService)

	favService := favorite.NewService(favRepo, recipeRepo)
	favHandler := favorite.NewHandler(favService)

	cartService := cart.NewService(cartRepo, recipeRepo)
	cartHandler := cart.NewHandler(cartService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public, with optional auth so personalization flags resolve
		public := v1.Group("/")
		public.Use(middleware.OptionalJWTAuth(j))
		{
			authHandler.RegisterPublicRoutes(public)
			catalogHandler.RegisterRoutes(public)
			recipeHandler.RegisterPublicRoutes(public)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			recipeHandler.RegisterProtectedRoutes(protected)
			subHandler.RegisterRoutes(protected)
			favHandler.RegisterRoutes(protected)
			cartHandler.RegisterRoutes(protected)
			feedHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
