package apiclient

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/auth"
	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/observability"
)

// tokenSubject identifies minted tokens.
const tokenSubject = "contract-suite"

// NewFromConfig builds a client from configuration. When no TOKEN is configured a signed token
// is minted so that every request still carries credentials. The returned close function
// flushes the API log.
func NewFromConfig(cfg *config.Config, console io.Writer) (*Client, func(), error) {
	token := cfg.Client.Token
	if token == "" {
		minted, _, err := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTLMinutes).
			GenerateToken(tokenSubject, cfg.Client.EnvName)
		if err != nil {
			return nil, nil, fmt.Errorf("mint token: %w", err)
		}
		token = minted
	}

	opts := Options{
		BaseURL: cfg.Client.BaseURL,
		Token:   token,
		APIKey:  cfg.Client.APIKey,
		Timeout: cfg.Client.Timeout(),
	}
	closeFn := func() {}

	if cfg.Client.LogAPI {
		if err := os.MkdirAll(filepath.Dir(cfg.Client.APILogPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create api log dir: %w", err)
		}
		logger, err := observability.NewFileLogger("info", cfg.Client.APILogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open api log: %w", err)
		}
		opts.APILog = logger.With(zap.String("env", cfg.Client.EnvName))
		opts.Console = console
		closeFn = func() { _ = logger.Sync() }
	}

	return New(opts), closeFn, nil
}
