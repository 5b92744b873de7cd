// internal/bank/transaction.go
//
// 定義交易紀錄 Transaction 與全程序共用的流水號產生器 Sequence。

package bank

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// Kind 為交易種類。
type Kind string

const (
	Deposit    Kind = "Deposit"
	Withdrawal Kind = "Withdrawal"
)

// DateLayout 為交易明細中的時間格式。
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

// Transaction represents one balance-changing event.
// 建立後不可變更：所有欄位皆為值型別，且不提供 setter。
type Transaction struct {
	ID           int64
	Time         time.Time
	Kind         Kind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// NewTransaction 以給定的流水號與時間建立交易紀錄（純資料建構，無錯誤情形）。
func NewTransaction(id int64, at time.Time, kind Kind, amount, balanceAfter decimal.Decimal) Transaction {
	return Transaction{ID: id, Time: at, Kind: kind, Amount: amount, BalanceAfter: balanceAfter}
}

// Describe 回傳固定欄位的單行明細，金額與餘額皆格式化至小數點後兩位。
func (t Transaction) Describe() string {
	return fmt.Sprintf("Transaction ID: %d, Date: %s, Type: %s, Amount: %s, Balance After: %s",
		t.ID, t.Time.Format(DateLayout), t.Kind, t.Amount.StringFixed(2), t.BalanceAfter.StringFixed(2))
}

func (t Transaction) String() string { return t.Describe() }

// Sequence 為交易流水號產生器。
// 由程序層級（main）持有並以指標注入各帳戶，
// 讓流水號跨帳戶、跨操作嚴格遞增 1，而不依賴隱藏的全域變數。
type Sequence struct {
	n int64
}

// NewSequence 建立從 0 開始的產生器；第一次 Next() 回傳 1。
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next 先遞增再回傳。沿用 atomic 遞增，避免未來多 session 時碰撞。
func (s *Sequence) Next() int64 {
	return atomic.AddInt64(&s.n, 1)
}

// Current 回傳最後一次發出的流水號（尚未發出時為 0）。
func (s *Sequence) Current() int64 {
	return atomic.LoadInt64(&s.n)
}
