package config

import (
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port               string   `env:"PORT" envDefault:"8000"`
	MongoURI           string   `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName             string   `env:"DB_NAME" envDefault:"resaleStore"`
	JWTSecret          string   `env:"JWT_SECRET,required"`
	StripeSecretKey    string   `env:"STRIPE_SECRET_KEY"`
	PostmarkAPIToken   string   `env:"POSTMARK_API_TOKEN"`
	EmailSender        string   `env:"EMAIL_SENDER"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads .env when present and parses the environment. A missing
// .env file is fine in deployed environments.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
