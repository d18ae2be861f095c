package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/trishareddy/grocery-budget-api/docs" // Import generated docs
	"github.com/trishareddy/grocery-budget-api/internal/config"
	"github.com/trishareddy/grocery-budget-api/internal/controllers"
	"github.com/trishareddy/grocery-budget-api/internal/database"
	"github.com/trishareddy/grocery-budget-api/internal/middleware"
	"github.com/trishareddy/grocery-budget-api/internal/models"
	"github.com/trishareddy/grocery-budget-api/internal/services"
)

var (
	db                   *gorm.DB
	configuration        *config.Config
	authController       *controllers.AuthController
	ingredientController controllers.IngredientController
	mealController       controllers.MealController
	budgetController     controllers.BudgetController
)

// @title Grocery Budget Planner API
// @version 1.0
// @description Backend for planning grocery budgets: ingredients, meals and budgets behind token auth
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	userService := services.NewUserService(db)
	ingredientService := services.NewIngredientService(db)
	mealService := services.NewMealService(db)
	budgetService := services.NewBudgetService(db)

	tokenTTL := time.Duration(configuration.TokenTTLHours) * time.Hour
	authController = controllers.NewAuthController(userService, configuration.JWTSecret, tokenTTL, configuration.BcryptCost)
	ingredientController = controllers.NewIngredientController(ingredientService)
	mealController = controllers.NewMealController(mealService)
	budgetController = controllers.NewBudgetController(budgetService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, registers the
// explicit meal_ingredients join table and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.Open(database.Config{
		Driver:   conf.DBDriver,
		Path:     conf.DBPath,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
	})
	checkPanicErr(err)

	// The join table must be registered before migration so the
	// composite-key model backs the many2many relation
	checkPanicErr(db.SetupJoinTable(&models.Meal{}, "Ingredients", &models.MealIngredient{}))

	// Migrate the schema
	checkPanicErr(db.AutoMigrate(&models.User{}, &models.Ingredient{}, &models.Meal{}, &models.Budget{}))

	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	jwtSecret := []byte(configuration.JWTSecret)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.JWTAuth(jwtSecret), authController.Me)
		}

		// Protected routes (requires JWT authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(jwtSecret))
		{
			protected.GET("/ingredients", ingredientController.GetAllIngredients)
			protected.POST("/ingredients", ingredientController.CreateIngredient)
			protected.GET("/ingredients/:id", ingredientController.GetIngredientByID)
			protected.PUT("/ingredients/:id", ingredientController.UpdateIngredient)
			protected.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)

			protected.GET("/meals", mealController.GetAllMeals)
			protected.POST("/meals", mealController.CreateMeal)
			protected.GET("/meals/:id", mealController.GetMealByID)
			protected.DELETE("/meals/:id", mealController.DeleteMeal)

			protected.GET("/budgets", budgetController.GetAllBudgets)
			protected.POST("/budgets", budgetController.CreateBudget)
			protected.GET("/budgets/:id", budgetController.GetBudgetByID)
			protected.DELETE("/budgets/:id", budgetController.DeleteBudget)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "grocery-budget-api",
	})
}
