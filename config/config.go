package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	MongoURI     string
	DBName       string
	JWTSecret    string
	RedisAddr    string
	KafkaBrokers []string
	StripeKey    string
	SuccessURL   string
	CancelURL    string
	ClientOrigin string
	Production   bool
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":2001"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getenv("DB_NAME", "Garments-order-System"),
		JWTSecret:    getenv("JWT_SECRET", ""),
		// empty means no Redis: session revocation falls back to the
		// in-process store and logouts are not shared across replicas
		RedisAddr:    getenv("REDIS_ADDR", ""),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		StripeKey:    getenv("STRIPE_SECRET_KEY", ""),
		SuccessURL:   getenv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/payment/success"),
		CancelURL:    getenv("CHECKOUT_CANCEL_URL", "http://localhost:5173/payment/cancel"),
		ClientOrigin: getenv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   getenv("NODE_ENV", "") == "production",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
