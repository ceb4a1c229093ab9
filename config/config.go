package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries everything the process reads from the environment. It is
// built once in main and passed by reference; nothing else reads os.Getenv.
type Config struct {
	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string

	JWTSecret      string
	JWTExpireHours int

	AllowedOrigins []string

	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPass          string
	SMTPFrom          string
	SMTPSkipTLSVerify bool

	ServerPort  string
	Environment string
	DebugSQL    bool
	GinMode     string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// Load reads the configuration from environment variables.
func Load() *Config {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587
	}

	origins := []string{}
	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBDatabase: getenv("DB_DATABASE", "idea_management"),
		DBUsername: getenv("DB_USERNAME", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpireHours: expireHours,

		AllowedOrigins: origins,

		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          smtpPort,
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		SMTPFrom:          os.Getenv("SMTP_FROM"), // e.g. "Idea System <no-reply@your.org>"
		SMTPSkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",

		ServerPort:  getenv("SERVER_PORT", "8080"),
		Environment: strings.ToLower(os.Getenv("ENVIRONMENT")),
		DebugSQL:    strings.ToLower(os.Getenv("DEBUG_SQL")) == "true",
		GinMode:     os.Getenv("GIN_MODE"),
	}
}

// DSN builds the MySQL data source name.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUsername,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBDatabase,
	)
}
