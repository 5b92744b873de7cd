// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account：持有餘額與只可附加的交易紀錄，不含任何主控台或儲存細節。

package bank

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account.
// - mu：序列化餘額與交易紀錄的變更，確保兩者一致。
// - seq：程序共用的流水號產生器（由呼叫端注入）。
// - clock：交易時間來源，預設 time.Now，可於測試注入。
type Account struct {
	mu      sync.Mutex
	number  string
	balance decimal.Decimal
	history []Transaction
	seq     *Sequence
	clock   func() time.Time
}

// AccountOption 調整 Account 的建構行為。
type AccountOption func(*Account)

// WithClock 以自訂時間來源建立交易紀錄。
func WithClock(clock func() time.Time) AccountOption {
	return func(a *Account) { a.clock = clock }
}

// NewAccount 以帳號、初始餘額與流水號產生器建立帳戶。
// seq 為 nil 時建立一個帳戶專屬的產生器（僅適合單帳戶情境）。
func NewAccount(number string, initial decimal.Decimal, seq *Sequence, opts ...AccountOption) *Account {
	if seq == nil {
		seq = NewSequence()
	}
	a := &Account{number: number, balance: initial, seq: seq, clock: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Number 回傳帳號（建構後不可變）。
func (a *Account) Number() string {
	return a.number
}

// Balance 回傳目前餘額。
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit 存款：金額需 > 0。
// 於臨界區內同時更新餘額與追加紀錄，確保兩者一致性。
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrBadAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return a.record(Deposit, amount), nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額（維持非負）。
// 金額等於餘額時成功，餘額歸零；超過時拒絕，不做任何變更。
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrBadAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return Transaction{}, ErrInsufficient
	}
	a.balance = a.balance.Sub(amount)
	return a.record(Withdrawal, amount), nil
}

// History 依時間順序回傳交易紀錄（值拷貝），避免外部修改內部切片。
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// record 須在持有 mu 時呼叫。
func (a *Account) record(kind Kind, amount decimal.Decimal) Transaction {
	tx := NewTransaction(a.seq.Next(), a.clock(), kind, amount, a.balance)
	a.history = append(a.history, tx)
	return tx
}
