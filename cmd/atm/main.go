// cmd/atm/main.go

// 本程式為主控台 ATM 模擬。
// 此檔案負責初始化模組（config, logging, bank, atm），
// 建立示範持有人並註冊到目錄，然後執行一次 ATM session。
// 所有狀態只存在記憶體中，程序結束即消失。

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"atm/internal/atm"
	"atm/internal/bank"
	"atm/internal/config"
	"atm/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	pin, err := newVerifier(cfg)
	if err != nil {
		logger.WithError(err).Fatal("credential setup failed")
	}

	// 流水號由程序層級持有，注入每個帳戶
	seq := bank.NewSequence()
	dir := bank.NewDirectory()
	dir.Register(bank.NewHolder(cfg.UserID, pin, bank.NewAccount(cfg.AccountNumber, cfg.InitialBalance, seq)))

	// 監聽 SIGINT/SIGTERM：讀取 stdin 無法被中斷，收到訊號即直接以 0 結束
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go exitOnSignal(ch, os.Stdout, logger, os.Exit)

	s := atm.NewSession(dir, atm.NewConsolePrompter(os.Stdin, os.Stdout), os.Stdout, logger)
	logger.WithField("session_id", s.ID().String()).Debug("session starting")
	if err := s.Run(); err != nil {
		logger.WithError(err).Error("session aborted")
	}
}

// exitOnSignal 等待第一個訊號，換行讓殘留的提示不與 shell 提示黏在一起，再以 0 結束。
func exitOnSignal(ch <-chan os.Signal, out io.Writer, logger *logrus.Logger, exit func(int)) {
	sig := <-ch
	logger.WithField("signal", sig.String()).Info("interrupted")
	fmt.Fprintln(out)
	exit(0)
}

// newVerifier 依設定選擇 PIN 驗證方式。
func newVerifier(cfg *config.Config) (bank.CredentialVerifier, error) {
	if cfg.PINMode == config.PINModePlain {
		return bank.PlainPIN(cfg.PIN), nil
	}
	return bank.NewBcryptPIN(cfg.PIN, bcrypt.DefaultCost)
}
