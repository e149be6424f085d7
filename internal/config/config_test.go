package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/kyat/internal/logging"
)

var allKeys = []string{
	keyStore, keySupabaseURL, keySupabaseKey, keyViteURL, keyViteKey,
	keyCBMURL, keyCBMFallback, keyRequestTimeout, keyRetryNum, keyRetryDuration,
}

// unsetEnv clears every config variable for the test, the previous values are restored on cleanup
func unsetEnv(t *testing.T) {
	t.Helper()

	for _, k := range allKeys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}

func testContext() context.Context {
	return logging.WithLogger(context.Background(), logging.Discard())
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		expected *Config
		err      error
	}{
		{
			name: "test_supabase_defaults",
			env: map[string]string{
				keySupabaseURL: "https://example.supabase.co",
				keySupabaseKey: "anon",
			},
			expected: &Config{
				Store:           StoreSupabase,
				SupabaseURL:     "https://example.supabase.co",
				SupabaseAnonKey: "anon",
				RequestTimeout:  10 * time.Second,
				RetryNum:        1,
				RetryDuration:   5 * time.Second,
			},
		},
		{
			name: "test_supabase_vite_fallback",
			env: map[string]string{
				keyViteURL: "https://vite.supabase.co",
				keyViteKey: "vite-anon",
			},
			expected: &Config{
				Store:           StoreSupabase,
				SupabaseURL:     "https://vite.supabase.co",
				SupabaseAnonKey: "vite-anon",
				RequestTimeout:  10 * time.Second,
				RetryNum:        1,
				RetryDuration:   5 * time.Second,
			},
		},
		{
			name: "test_supabase_cbm_fallback",
			env: map[string]string{
				keySupabaseURL: "https://example.supabase.co",
				keySupabaseKey: "anon",
				keyCBMFallback: "true",
			},
			expected: &Config{
				Store:           StoreSupabase,
				SupabaseURL:     "https://example.supabase.co",
				SupabaseAnonKey: "anon",
				CBMFallback:     true,
				RequestTimeout:  10 * time.Second,
				RetryNum:        1,
				RetryDuration:   5 * time.Second,
			},
		},
		{
			name: "test_cbm_tuned",
			env: map[string]string{
				keyStore:          "cbm",
				keyCBMURL:         "http://localhost:8080/fxrate",
				keyRequestTimeout: "3s",
				keyRetryNum:       "4",
				keyRetryDuration:  "250ms",
			},
			expected: &Config{
				Store:          StoreCBM,
				CBMURL:         "http://localhost:8080/fxrate",
				RequestTimeout: 3 * time.Second,
				RetryNum:       4,
				RetryDuration:  250 * time.Millisecond,
			},
		},
		{
			name: "test_negative_retry_num",
			env: map[string]string{
				keyStore:    "cbm",
				keyRetryNum: "-2",
			},
			expected: &Config{
				Store:          StoreCBM,
				RequestTimeout: 10 * time.Second,
				RetryDuration:  5 * time.Second,
			},
		},
		{
			name: "test_missing_credentials",
			env:  map[string]string{keySupabaseURL: "https://example.supabase.co"},
			err:  ErrMissingCredentials,
		},
		{
			name: "test_unknown_store",
			env:  map[string]string{keyStore: "ecb"},
			err:  ErrUnknownStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			unsetEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(testContext())
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}

			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("bad config (-want, +got): %s", diff)
			}
		})
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	unsetEnv(t)
	t.Setenv(keyStore, "cbm")
	t.Setenv(keyRequestTimeout, "soon")

	if _, err := LoadConfig(testContext()); err == nil {
		t.Errorf("expected an error for an invalid duration")
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	unsetEnv(t)
	t.Setenv(keyRetryNum, "3")

	path := filepath.Join(t.TempDir(), ".env")
	content := "KYAT_STORE=cbm\nKYAT_RETRY_NUM=7\nKYAT_RETRY_DURATION=1s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	// godotenv sets process variables, the cleanup of unsetEnv restores them
	cfg, err := LoadConfig(testContext(), path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	expected := &Config{
		Store:          StoreCBM,
		RequestTimeout: 10 * time.Second,
		RetryNum:       3,
		RetryDuration:  time.Second,
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("bad config (-want, +got): %s", diff)
	}

	if _, err := LoadConfig(testContext(), filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("expected an error for a missing env file")
	}
}
