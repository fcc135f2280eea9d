package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	SecretKey      []byte
	Port           string
	RedisAddr      string
	SendgridAPIKey string
	EmailSender    string
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found: %v", err)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		logrus.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	RedisAddr = os.Getenv("REDIS_ADDR")
	SendgridAPIKey = os.Getenv("SENDGRID_API_KEY")
	EmailSender = os.Getenv("EMAIL_SENDER")
}
