package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	aws_pkg "github.com/Utkarsh-Jain2199/Meal-Express-Backend/pkg/aws"
)

type Config struct {
	Port           string
	Env            string
	MongoURL       string
	MongoDB        string
	JWTSecret      string
	GoogleClientID string

	RazorpayKeyID     string
	RazorpayKeySecret string

	OpenCageAPIKey string

	// Optional collaborators; empty values disable them.
	RedisURL     string
	KafkaBrokers string
	KafkaTopic   string
}

// Load builds the configuration from environment variables. When
// AWS_USE_SECRETS=true the payment and JWT secrets are fetched from
// Secrets Manager instead, with env values as fallback.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("APP_ENV", "development"),
		MongoURL:          getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "mealexpress"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		OpenCageAPIKey:    os.Getenv("OPENCAGE_API_KEY"),
		RedisURL:          os.Getenv("REDIS_URL"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:        getEnv("ORDER_EVENTS_TOPIC", "order.placed"),
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)

			if raw, err := sm.GetSecret(context.Background(), "mealexpress/PAYMENT_CREDENTIALS"); err == nil && raw != "" {
				var m map[string]string
				if err := json.Unmarshal([]byte(raw), &m); err == nil {
					if v, ok := m["RAZORPAY_KEY_ID"]; ok && v != "" {
						cfg.RazorpayKeyID = v
					}
					if v, ok := m["RAZORPAY_KEY_SECRET"]; ok && v != "" {
						cfg.RazorpayKeySecret = v
					}
				}
			}
			if v, err := sm.GetSecret(context.Background(), "mealexpress/JWT_SECRET"); err == nil && v != "" {
				cfg.JWTSecret = v
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
