package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/robotomize/kyat/internal/logging"
	"github.com/spf13/viper"
)

var (
	ErrUnknownStore       = errors.New("unknown rate store")
	ErrMissingCredentials = errors.New("supabase url and anon key are required")
)

type Store string

const (
	StoreSupabase Store = "supabase"
	StoreCBM      Store = "cbm"
)

const (
	keyStore          = "KYAT_STORE"
	keySupabaseURL    = "SUPABASE_URL"
	keySupabaseKey    = "SUPABASE_ANON_KEY"
	keyViteURL        = "VITE_SUPABASE_URL"
	keyViteKey        = "VITE_SUPABASE_ANON_KEY"
	keyCBMURL         = "KYAT_CBM_URL"
	keyCBMFallback    = "KYAT_CBM_FALLBACK"
	keyRequestTimeout = "KYAT_REQUEST_TIMEOUT"
	keyRetryNum       = "KYAT_RETRY_NUM"
	keyRetryDuration  = "KYAT_RETRY_DURATION"
)

// Config holds the store selection and fetch tuning
type Config struct {
	Store           Store
	SupabaseURL     string
	SupabaseAnonKey string
	// CBMURL overrides the reference rate page, empty means the default page
	CBMURL string
	// CBMFallback asks the central bank page when the supabase store fails
	CBMFallback    bool
	RequestTimeout time.Duration
	RetryNum       uint64
	RetryDuration  time.Duration
}

// LoadConfig loads configuration from environment variables and the env files if present.
// Without files .env of the working directory is tried. Real environment variables win over files
func LoadConfig(ctx context.Context, files ...string) (*Config, error) {
	logger := logging.FromContext(ctx)

	if len(files) == 0 {
		// a missing .env is fine
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	v := viper.New()
	v.SetDefault(keyStore, string(StoreSupabase))
	v.SetDefault(keyRequestTimeout, "10s")
	v.SetDefault(keyRetryNum, 1)
	v.SetDefault(keyRetryDuration, "5s")
	v.AutomaticEnv()

	cfg := &Config{
		Store:           Store(v.GetString(keyStore)),
		SupabaseURL:     firstOf(v, keySupabaseURL, keyViteURL),
		SupabaseAnonKey: firstOf(v, keySupabaseKey, keyViteKey),
		CBMURL:          v.GetString(keyCBMURL),
		CBMFallback:     v.GetBool(keyCBMFallback),
	}

	var err error
	if cfg.RequestTimeout, err = duration(v, keyRequestTimeout); err != nil {
		return nil, err
	}

	if cfg.RetryDuration, err = duration(v, keyRetryDuration); err != nil {
		return nil, err
	}

	retryNum := v.GetInt(keyRetryNum)
	if retryNum < 0 {
		logger.Printf("warning: %s is negative, retries disabled", keyRetryNum)
		retryNum = 0
	}
	cfg.RetryNum = uint64(retryNum)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return ErrMissingCredentials
		}
	case StoreCBM:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}

	return nil
}

func firstOf(v *viper.Viper, keys ...string) string {
	for _, k := range keys {
		if s := v.GetString(k); s != "" {
			return s
		}
	}

	return ""
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}

	return d, nil
}
