package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"restaurant-order-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// Assistant gateway settings (Ollama-compatible endpoint)
var (
	OllamaURL        string
	OllamaModel      string
	AssistantTimeout time.Duration
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and resolves all settings.
func Load() {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_order_super_secret_2024"))
	OllamaURL = getEnv("OLLAMA_URL", "http://localhost:11434")
	OllamaModel = getEnv("OLLAMA_MODEL", "phi3")

	AssistantTimeout = 120 * time.Second
	if v := os.Getenv("ASSISTANT_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			AssistantTimeout = time.Duration(secs) * time.Second
		}
	}

	// Monetary fields render as JSON numbers, matching the API contract
	decimal.MarshalJSONWithoutQuotes = true
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
