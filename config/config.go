// Package config reads server settings from SHOPQL_* environment
// variables, with defaults suitable for local development.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the full configuration surface of the server.
type Config struct {
	Addr      string        // listen address
	DataDir   string        // badger database directory
	JWTSecret string        // HMAC secret for auth tokens
	TokenTTL  time.Duration // lifetime of issued tokens
}

// Load reads the environment. The only setting without a usable default is
// the JWT secret: refusing to start beats signing tokens with a published
// default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("shopql")
	v.AutomaticEnv()

	v.SetDefault("addr", ":5000")
	v.SetDefault("data_dir", "shopql-data")
	v.SetDefault("token_ttl", "72h")

	cfg := &Config{
		Addr:      v.GetString("addr"),
		DataDir:   v.GetString("data_dir"),
		JWTSecret: v.GetString("jwt_secret"),
		TokenTTL:  v.GetDuration("token_ttl"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("SHOPQL_JWT_SECRET must be set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("SHOPQL_TOKEN_TTL must be a positive duration")
	}
	return cfg, nil
}
