package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the API needs at startup.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - DB_DRIVER (postgres|sqlite, default: postgres)
//   - DATABASE_DSN
//   - DB_DEBUG (1 enables gorm SQL logging)
//   - JWT_SECRET, TOKEN_TTL (default: 24h), AUTH_COOKIE (default: auth_token)
//   - COOKIE_SECURE (1 marks the session cookie Secure)
//   - CORS_ALLOWED_ORIGINS (comma separated)
//   - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, NOTIFY_FROM, NOTIFY_STAFF_TO
//   - RECONCILIATION_TABLE (default: pending_reconciliations)
//   - MERCADOPAGO_ACCESS_TOKEN
//   - ADMIN_EMAIL, ADMIN_PASSWORD (seed user, optional)
type Config struct {
	Port string

	DBDriver    string
	DatabaseDSN string
	DBDebug     bool

	JWTSecret    string
	TokenTTL     time.Duration
	AuthCookie   string
	SecureCookie bool

	AllowedOrigins []string

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	NotifyFrom    string
	NotifyStaffTo string

	ReconciliationTable string
	MercadoPagoToken    string

	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		smtpPort = 465
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		DBDriver:            strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseDSN:         getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=hvac_crm port=5432 sslmode=disable"),
		DBDebug:             getEnv("DB_DEBUG", "") == "1",
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		TokenTTL:            ttl,
		AuthCookie:          getEnv("AUTH_COOKIE", "auth_token"),
		SecureCookie:        getEnv("COOKIE_SECURE", "") == "1",
		AllowedOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            smtpPort,
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		NotifyFrom:          getEnv("NOTIFY_FROM", os.Getenv("SMTP_USER")),
		NotifyStaffTo:       os.Getenv("NOTIFY_STAFF_TO"),
		ReconciliationTable: getEnv("RECONCILIATION_TABLE", "pending_reconciliations"),
		MercadoPagoToken:    os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
