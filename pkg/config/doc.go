// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small, predictable API:
//
//   - A `.env` file in the working directory is loaded once per process, if
//     present. Real environment variables always win over `.env` values.
//   - The environment is parsed into any Go struct using `env` field tags.
//   - `MustLoad` panics on failure for configuration the application cannot
//     start without.
//
// # Usage
//
//	type StripeConfig struct {
//	    APIKey  string        `env:"STRIPE_API_KEY,required"`
//	    Timeout time.Duration `env:"STRIPE_REQUEST_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg StripeConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
