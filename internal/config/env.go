package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"

	defaultBookingNumberAttempts = 10
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	CORSAllowedOrigins []string

	// BookingNumberMaxAttempts caps retries when a generated reference collides.
	BookingNumberMaxAttempts int
	SeedOnStart              bool
}

func LoadEnv() Env {
	// .env is optional; production sets real environment variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env: %v", err)
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverMySQL
	}

	return Env{
		AppAddr:                  appAddr,
		GinMode:                  strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDriver:                 driver,
		DBHost:                   envOr("DB_HOST", "127.0.0.1:3306"),
		DBUser:                   envOr("DB_USER", "root"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   envOr("DB_NAME", "hotel_booking"),
		CORSAllowedOrigins:       splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		BookingNumberMaxAttempts: envInt("BOOKING_NUMBER_MAX_ATTEMPTS", defaultBookingNumberAttempts),
		SeedOnStart:              envBool("SEED_ON_START"),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("warning: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
