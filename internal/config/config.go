package config

import (
	"time"

	"github.com/Netflix/go-env"
	"github.com/brokerdesk/carrier-sales-api/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var config *Config

// Config holds every value the service reads from its environment. Only this
// struct must be used to hold configuration values, no direct access to env,
// ini or any other config source should be made.
type Config struct {
	AppEnv   string `env:"APP_ENV,default=dev"`
	AppName  string `env:"APP_NAME,default=carrier_sales_api"`
	AppDebug bool   `env:"APP_DEBUG,default=1"`

	HttpListenAddr string `env:"HTTP_LISTEN_ADDR,default=:8000"`

	// Comma-separated list of origins allowed to call the API from a browser.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`

	DatabasePath string `env:"DB_PATH,default=data.db"`
	SeedPath     string `env:"SEED_PATH,default=seed.sql"`

	// The FMCSA web key is a deployment secret, never a literal in code.
	// Verification requests fail upstream without one.
	FMCSABaseURL  string        `env:"FMCSA_BASE_URL,default=https://mobile.fmcsa.dot.gov"`
	FMCSAWebKey   string        `env:"FMCSA_WEBKEY"`
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT,default=10s"`

	PromNamespace string `env:"PROM_NAMESPACE,default=carrier_sales"`

	LogLevel []string `env:"LOG_LEVEL"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.New("failed to load configuration file " + path + " error: " + err.Error())
		}
	}

	_, err = env.UnmarshalFromEnviron(c)

	if err != nil {
		return errors.New("failed to map env variables to Configuration object " + " error: " + err.Error())
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
