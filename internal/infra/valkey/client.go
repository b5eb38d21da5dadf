// Package valkey builds the Valkey client used for caching.
package valkey

import (
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// Config is the valkey section of the application config.
type Config struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"-"`
	DB           int           `mapstructure:"db"`
	DisableCache bool          `mapstructure:"disable_cache"` // client-side caching needs RESP3 tracking
	VerdictTTL   time.Duration `mapstructure:"verdict_ttl"`
}

// NewClient connects to the configured Valkey server.
func NewClient(cfg Config) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{cfg.Addr},
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: cfg.DisableCache,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey: %w", err)
	}
	return client, nil
}
