// internal/atm/session.go
//
// Package atm
// ─────────────────────────────────────────────
// 提供主控台介面，作為 bank 模組的應用層 (Application Layer)。
// Session 依序經過三個狀態：
//  1. 等待憑證：讀取 User ID 與 PIN，呼叫 Directory.Authenticate。
//  2. 已驗證：重複顯示選單並依選項呼叫帳戶操作。
//  3. 結束：選擇 Quit、驗證失敗或輸入結束。
//
// 分層：
//   - bank：純商業邏輯，與主控台無關。
//   - atm：處理輸入輸出（Prompter + io.Writer）。
//
// 驗證失敗只給一次機會，不重試。
package atm

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"atm/internal/bank"
)

// Session 為單次 ATM 操作流程：
// - dir：注入的銀行目錄。
// - in / out：輸入來源與輸出目的地。
// - log：帶有 session_id 欄位的 logger。
type Session struct {
	dir     *bank.Directory
	in      Prompter
	out     io.Writer
	id      uuid.UUID
	log     *logrus.Entry
	options []option
}

// NewSession 建立新的 session。logger 可為 nil，此時不輸出任何日誌。
func NewSession(dir *bank.Directory, in Prompter, out io.Writer, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	id := uuid.New()
	return &Session{
		dir:     dir,
		in:      in,
		out:     out,
		id:      id,
		log:     logger.WithField("session_id", id.String()),
		options: menu(),
	}
}

// ID 回傳 session 的關聯 ID（僅出現在日誌中）。
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run 執行完整流程直到結束。
// 驗證失敗、Quit 與輸入結束 (EOF) 皆屬正常結束，回傳 nil。
func (s *Session) Run() error {
	writeLine(s.out, msgWelcome)

	acct, err := s.login()
	switch {
	case errors.Is(err, bank.ErrAuthFailed):
		writeErr(s.out, err)
		return nil
	case errors.Is(err, io.EOF):
		s.log.Info("input closed before login")
		return nil
	case err != nil:
		return err
	}
	return s.serve(acct)
}

// login 讀取 User ID 與 PIN 並驗證；PIN 不寫入日誌。
// 任一欄位過長時仍會讀完兩個欄位，再視為驗證失敗。
func (s *Session) login() (*bank.Account, error) {
	userID, err := s.in.PromptLine(promptUserID)
	malformed := errors.Is(err, ErrMalformedInput)
	if err != nil && !malformed {
		return nil, err
	}
	pin, err := s.in.PromptLine(promptPIN)
	if errors.Is(err, ErrMalformedInput) {
		malformed = true
	} else if err != nil {
		return nil, err
	}
	if malformed {
		s.log.Warn("authentication failed: malformed credentials")
		return nil, bank.ErrAuthFailed
	}
	h, err := s.dir.Authenticate(userID, pin)
	if err != nil {
		s.log.WithField("user_id", userID).Warn("authentication failed")
		return nil, err
	}
	acct := h.Account()
	s.log = s.log.WithFields(logrus.Fields{"user_id": userID, "account": acct.Number()})
	s.log.Info("authenticated")
	return acct, nil
}

// serve 為已驗證狀態的選單迴圈。
func (s *Session) serve(acct *bank.Account) error {
	for {
		s.printMenu()
		line, err := s.in.PromptLine(promptChoice)
		if errors.Is(err, ErrMalformedInput) {
			s.log.WithError(err).Debug("invalid menu choice")
			writeLine(s.out, msgInvalidChoice)
			continue
		}
		if err != nil {
			return s.endOfInput(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		opt, ok := s.route(choice)
		if convErr != nil || !ok {
			s.log.WithField("input", line).Debug("invalid menu choice")
			writeLine(s.out, msgInvalidChoice)
			continue
		}
		s.log.WithField("choice", opt.label).Debug("menu selection")

		done, err := opt.run(s, acct)
		if err != nil {
			return s.endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

// endOfInput 將 EOF 視為正常結束，其餘錯誤往上回傳。
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Info("input closed, ending session")
		return nil
	}
	return err
}

// showHistory 依時間順序輸出每筆交易明細。
func (s *Session) showHistory(acct *bank.Account) (bool, error) {
	writeLine(s.out, "")
	writeLine(s.out, msgHistoryTitle)
	for _, tx := range acct.History() {
		writeLine(s.out, tx.Describe())
	}
	return false, nil
}

// withdraw 讀取金額並提款；餘額不足或金額非法時輸出訊息並回到選單。
func (s *Session) withdraw(acct *bank.Account) (bool, error) {
	amt, err := s.in.PromptNumber(promptWithdraw)
	if err != nil {
		return false, s.amountError(err)
	}
	tx, err := acct.Withdraw(amt)
	if err != nil {
		s.log.WithError(err).WithField("amount", amt.String()).Info("withdrawal rejected")
		writeErr(s.out, err)
		return false, nil
	}
	s.log.WithFields(logrus.Fields{
		"tx_id":   tx.ID,
		"amount":  tx.Amount.String(),
		"balance": tx.BalanceAfter.String(),
	}).Info("withdrawal")
	writeLine(s.out, msgWithdrawOK)
	return false, nil
}

// deposit 讀取金額並存款。
func (s *Session) deposit(acct *bank.Account) (bool, error) {
	amt, err := s.in.PromptNumber(promptDeposit)
	if err != nil {
		return false, s.amountError(err)
	}
	tx, err := acct.Deposit(amt)
	if err != nil {
		s.log.WithError(err).WithField("amount", amt.String()).Info("deposit rejected")
		writeErr(s.out, err)
		return false, nil
	}
	s.log.WithFields(logrus.Fields{
		"tx_id":   tx.ID,
		"amount":  tx.Amount.String(),
		"balance": tx.BalanceAfter.String(),
	}).Info("deposit")
	writeLine(s.out, msgDepositOK)
	return false, nil
}

// amountError：格式錯誤的金額輸出提示後回到選單；其他錯誤（含 EOF）往上回傳。
func (s *Session) amountError(err error) error {
	if errors.Is(err, ErrMalformedInput) {
		s.log.WithError(err).Debug("malformed amount")
		writeErr(s.out, err)
		return nil
	}
	return err
}

func (s *Session) quit(*bank.Account) (bool, error) {
	writeLine(s.out, msgGoodbye)
	s.log.Info("session ended")
	return true, nil
}
