// internal/atm/output.go
//
// 本檔負責統一主控台輸出。
// 所有畫面文字集中於此，錯誤一律經由 writeErr 轉成對應訊息，
// 讓 session 只需要關心流程。
package atm

import (
	"errors"
	"fmt"
	"io"

	"atm/internal/bank"
)

// 畫面文字。
const (
	msgWelcome         = "Welcome to the ATM!"
	promptUserID       = "Enter User ID: "
	promptPIN          = "Enter PIN: "
	msgAuthFailed      = "Invalid User ID or PIN."
	msgMenuTitle       = "ATM Menu:"
	promptChoice       = "Choose an option: "
	msgInvalidChoice   = "Invalid choice. Please try again."
	msgHistoryTitle    = "Transaction History:"
	promptWithdraw     = "Enter amount to withdraw: "
	msgWithdrawOK      = "Withdrawal successful."
	msgInsufficient    = "Insufficient balance."
	promptDeposit      = "Enter amount to deposit: "
	msgDepositOK       = "Deposit successful."
	msgBadAmount       = "Invalid amount. Amount must be greater than zero."
	msgMalformedAmount = "Invalid amount. Please enter a number."
	msgGoodbye         = "Thank you for using the ATM. Goodbye!"
)

// writeLine 輸出一行文字（自動換行）。
func writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

// writeErr 將錯誤轉為畫面訊息；未知錯誤直接輸出 err.Error()。
func writeErr(w io.Writer, err error) {
	writeLine(w, message(err))
}

func message(err error) string {
	switch {
	case errors.Is(err, bank.ErrAuthFailed):
		return msgAuthFailed
	case errors.Is(err, bank.ErrInsufficient):
		return msgInsufficient
	case errors.Is(err, bank.ErrBadAmount):
		return msgBadAmount
	case errors.Is(err, ErrMalformedInput):
		return msgMalformedAmount
	default:
		return err.Error()
	}
}
