package config

import (
	"flag"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "user1", cfg.UserID)
	assert.Equal(t, "1234", cfg.PIN)
	assert.Equal(t, "123456", cfg.AccountNumber)
	assert.Equal(t, "1000", cfg.InitialBalance.String())
	assert.Equal(t, PINModeBcrypt, cfg.PINMode)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestEnvAndFlags(t *testing.T) {
	t.Setenv("ATM_USER_ID", "alice")
	t.Setenv("ATM_INITIAL_BALANCE", "25.50")
	t.Setenv("ATM_LOG_LEVEL", "debug")

	cfg, err := Load([]string{"-user", "bob", "-pin-mode", "plain", "-log-format", "json"})
	require.NoError(t, err)

	// 旗標優先於環境變數
	assert.Equal(t, "bob", cfg.UserID)
	assert.Equal(t, "25.5", cfg.InitialBalance.String())
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, PINModePlain, cfg.PINMode)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestInvalid(t *testing.T) {
	cases := map[string][]string{
		"balance not a number": {"-balance", "abc"},
		"negative balance":     {"-balance", "-1"},
		"unknown level":        {"-log-level", "loud"},
		"unknown pin mode":     {"-pin-mode", "md5"},
		"unknown log format":   {"-log-format", "xml"},
		"empty user":           {"-user", ""},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestHelp(t *testing.T) {
	_, err := Load([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
