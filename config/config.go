package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config dikonstruksi sekali di main dan dioper eksplisit ke komponen
// yang membutuhkannya
type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     string
	MongoURI      string
	MongoDatabase string
	AllowOrigins  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, memakai environment variables")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getenv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_HOST", "127.0.0.1"),
			getenv("DB_PORT", "3306"),
			getenv("DB_NAME", "campusmarket"),
		)
	}

	return &Config{
		Port:          getenv("PORT", "3000"),
		DatabaseDSN:   dsn,
		JWTSecret:     getenv("JWT_SECRET", "default-secret"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DB", "campusmarket"),
		AllowOrigins:  getenv("ALLOW_ORIGINS", "*"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
