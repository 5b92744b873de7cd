// Package config 讀取啟動設定：命令列旗標優先，其次環境變數，最後為內建預設值。
// 預設值即為內建的示範持有人（user1 / 1234 / 帳號 123456 / 餘額 1000），
// 不帶任何參數啟動時行為與原本寫死的版本相同。
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"atm/internal/logging"
)

// PIN 儲存方式。
const (
	PINModePlain  = "plain"
	PINModeBcrypt = "bcrypt"
)

// ErrInvalid 包裝所有設定驗證錯誤。
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UserID         string
	PIN            string
	AccountNumber  string
	InitialBalance decimal.Decimal
	PINMode        string
	LogLevel       logrus.Level
	LogFormat      string
}

// Load 解析 args（不含程式名稱）。-h 時回傳 flag.ErrHelp。
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("atm", flag.ContinueOnError)

	cfg := &Config{}
	var balance, level string
	fs.StringVar(&cfg.UserID, "user", getEnv("ATM_USER_ID", "user1"), "user ID of the seeded account holder")
	fs.StringVar(&cfg.PIN, "pin", getEnv("ATM_PIN", "1234"), "PIN of the seeded account holder")
	fs.StringVar(&cfg.AccountNumber, "account", getEnv("ATM_ACCOUNT_NUMBER", "123456"), "account number of the seeded account")
	fs.StringVar(&balance, "balance", getEnv("ATM_INITIAL_BALANCE", "1000"), "initial balance of the seeded account")
	fs.StringVar(&cfg.PINMode, "pin-mode", getEnv("ATM_PIN_MODE", PINModeBcrypt), "PIN storage: plain or bcrypt")
	fs.StringVar(&level, "log-level", getEnv("ATM_LOG_LEVEL", "warn"), "log level written to stderr")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv("ATM_LOG_FORMAT", "text"), "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.InitialBalance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("%w: balance %q: %v", ErrInvalid, balance, err)
	}
	if cfg.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must be >= 0, got %s", ErrInvalid, balance)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.PINMode != PINModePlain && cfg.PINMode != PINModeBcrypt {
		return nil, fmt.Errorf("%w: pin-mode %q", ErrInvalid, cfg.PINMode)
	}
	if !slices.Contains(logging.Formats, cfg.LogFormat) {
		return nil, fmt.Errorf("%w: log-format %q", ErrInvalid, cfg.LogFormat)
	}
	if cfg.UserID == "" || cfg.AccountNumber == "" {
		return nil, fmt.Errorf("%w: user and account must not be empty", ErrInvalid)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
