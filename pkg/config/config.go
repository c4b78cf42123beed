package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banco]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Bank holds the settings every new account is opened with.
type Bank struct {
	Branch   string `envconfig:"BRANCH" default:"0001"`
	Currency string `envconfig:"CURRENCY" default:"BRL"`
}

// Checking holds the withdrawal rules of checking accounts.
type Checking struct {
	WithdrawalLimit  string `envconfig:"WITHDRAWAL_LIMIT" default:"500.00"`
	MaxWithdrawals   int    `envconfig:"MAX_WITHDRAWALS" default:"3"`
	WithdrawalWindow string `envconfig:"WITHDRAWAL_WINDOW" default:"cumulative"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Bank      *Bank      `envconfig:"BANK"`
	Checking  *Checking  `envconfig:"CHECKING"`
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *App {
	return &App{
		Env: "development",
		Server: &Server{
			Scheme: "http",
			Host:   "localhost",
			Port:   3000,
		},
		Log: &Log{
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05",
			Prefix:     "[banco]",
		},
		RateLimit: &RateLimit{MaxRequests: 100, Window: time.Minute},
		Bank:      &Bank{Branch: "0001", Currency: "BRL"},
		Checking: &Checking{
			WithdrawalLimit:  "500.00",
			MaxWithdrawals:   3,
			WithdrawalWindow: "cumulative",
		},
	}
}
