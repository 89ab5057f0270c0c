package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"wallet_checker/internal/domain"
	"wallet_checker/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	API     API
	Input   Input
	Log     Log
	Metrics Metrics
}

type Input struct {
	WalletFile string `env:"CHECKER_WALLET_FILE" envDefault:"wallet.txt" validate:"required"`
	Dedupe     bool   `env:"CHECKER_DEDUPE" envDefault:"false"`
}

type Metrics struct {
	// Textfile is written after the run when set.
	Textfile string `env:"CHECKER_METRICS_FILE"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(env.Options{})
}

func Parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, domain.WrapError(err, errcodes.InvalidConfig, "env.Parse")
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, domain.WrapError(err, errcodes.InvalidConfig, "validate")
	}

	return config, nil
}

func (c Config) String() string {
	return fmt.Sprintf(
		"api=%s chain=%s wallet-file=%s dedupe=%t log-level=%s",
		c.API.Endpoint, c.API.Chain, c.Input.WalletFile, c.Input.Dedupe, c.Log.Level,
	)
}
