// internal/bank/errors.go
//
// bank 套件回傳的哨兵錯誤。呼叫端以 errors.Is 判斷，
// 畫面文字的對照放在 atm/output.go，本套件不知道主控台的存在。

package bank

import "errors"

var (
	// ErrNotFound：LookupAccount 查不到該帳號。
	ErrNotFound = errors.New("account not found")

	// ErrBadAmount：存款或提款金額為 0 或負數，帳戶狀態不變。
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrInsufficient：提款金額大於目前餘額，帳戶狀態不變、不產生紀錄。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrAuthFailed：沒有任何持有人同時符合使用者代號與 PIN。
	ErrAuthFailed = errors.New("invalid user id or pin")
)
