package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBPort             string
	DBSSLMode          string
	Port               string
	RedisAddr          string
	AppAuthKey         string
	AppEncKey          string
	JWTSecret          string
	ExchangeAPIBaseURL string
	EmailHost          string
	EmailPort          string
	EmailUsername      string
	EmailPassword      string
	EmailFrom          string
	PublicBaseURL      string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBPort:             os.Getenv("DB_PORT"),
		DBSSLMode:          getEnvOr("DB_SSLMODE", "disable"),
		Port:               getEnvOr("APP_PORT", ":8080"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		AppAuthKey:         os.Getenv("APP_AUTH_KEY"),
		AppEncKey:          os.Getenv("APP_ENC_KEY"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		ExchangeAPIBaseURL: getEnvOr("EXCHANGE_API_BASE_URL", "https://api.exchangerate-api.com/v4"),
		EmailHost:          os.Getenv("EMAIL_HOST"),
		EmailPort:          os.Getenv("EMAIL_PORT"),
		EmailUsername:      os.Getenv("EMAIL_USERNAME"),
		EmailPassword:      os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:          os.Getenv("EMAIL_USERNAME"),
		PublicBaseURL:      getEnvOr("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var LoadENV = LoadEnv()
