package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"bank_branch", cfg.Bank.Branch,
		"bank_currency", cfg.Bank.Currency,
		"checking_withdrawal_limit", cfg.Checking.WithdrawalLimit,
		"checking_max_withdrawals", cfg.Checking.MaxWithdrawals,
		"checking_withdrawal_window", cfg.Checking.WithdrawalWindow,
	)
	return &cfg, nil
}
