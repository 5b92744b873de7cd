// internal/bank/account_test.go
//
// 本檔為 Account 的單元測試。
// 覆蓋存提款、餘額不變式、交易紀錄與流水號，全部於記憶體內執行。

package bank

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d 為小工具：由字串建立 decimal，格式錯誤直接 panic（僅供測試常數）。
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixedClock 回傳固定時間，讓 Describe() 結果可比對。
func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
}

// TestDepositScenario 初始 1000 存入 500 → 1500，產生一筆 Deposit 紀錄。
func TestDepositScenario(t *testing.T) {
	a := NewAccount("123456", d("1000"), NewSequence())

	tx, err := a.Deposit(d("500"))
	require.NoError(t, err)

	assert.True(t, a.Balance().Equal(d("1500")), "balance=%s", a.Balance())
	h := a.History()
	require.Len(t, h, 1)
	assert.Equal(t, Deposit, h[0].Kind)
	assert.True(t, h[0].Amount.Equal(d("500")))
	assert.True(t, h[0].BalanceAfter.Equal(d("1500")))
	assert.Equal(t, tx, h[0])
}

// TestWithdrawInsufficient 餘額 1500 提領 2000 → 拒絕，不改變任何狀態。
func TestWithdrawInsufficient(t *testing.T) {
	seq := NewSequence()
	a := NewAccount("123456", d("1000"), seq)
	_, err := a.Deposit(d("500"))
	require.NoError(t, err)

	_, err = a.Withdraw(d("2000"))
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.True(t, a.Balance().Equal(d("1500")))
	assert.Len(t, a.History(), 1)
	// 被拒絕的提款不得消耗流水號
	assert.Equal(t, int64(1), seq.Current())
}

// TestWithdrawExactBalance 提領金額等於餘額時成功，餘額剛好歸零。
func TestWithdrawExactBalance(t *testing.T) {
	a := NewAccount("123456", d("1500"), nil)

	tx, err := a.Withdraw(d("1500"))
	require.NoError(t, err)
	assert.True(t, a.Balance().IsZero())
	assert.Equal(t, Withdrawal, tx.Kind)
	assert.Equal(t, "0.00", tx.BalanceAfter.StringFixed(2))
}

// TestBadAmounts 0 或負數金額一律拒絕（ErrBadAmount），且不產生紀錄。
func TestBadAmounts(t *testing.T) {
	a := NewAccount("1", d("100"), nil)

	for _, amt := range []string{"0", "-5", "-0.01"} {
		_, err := a.Deposit(d(amt))
		assert.ErrorIs(t, err, ErrBadAmount, "deposit %s", amt)
		_, err = a.Withdraw(d(amt))
		assert.ErrorIs(t, err, ErrBadAmount, "withdraw %s", amt)
	}
	assert.True(t, a.Balance().Equal(d("100")))
	assert.Empty(t, a.History())
}

// TestBalanceInvariant 任意存提款序列後：
// 餘額 = 初始 + Σ存款 − Σ成功提款 = 最後一筆紀錄的 BalanceAfter。
func TestBalanceInvariant(t *testing.T) {
	initial := d("250.75")
	a := NewAccount("1", initial, nil)

	ops := []struct {
		kind Kind
		amt  string
	}{
		{Deposit, "100.10"},
		{Withdrawal, "50.05"},
		{Withdrawal, "1000"}, // 會被拒絕
		{Deposit, "0.20"},
		{Withdrawal, "300.99"},
		{Deposit, "12.34"},
	}

	want := initial
	for _, op := range ops {
		amt := d(op.amt)
		if op.kind == Deposit {
			_, err := a.Deposit(amt)
			require.NoError(t, err)
			want = want.Add(amt)
			continue
		}
		if _, err := a.Withdraw(amt); err == nil {
			want = want.Sub(amt)
		}
	}

	h := a.History()
	require.Len(t, h, 5)
	assert.True(t, a.Balance().Equal(want), "balance=%s want=%s", a.Balance(), want)
	assert.True(t, h[len(h)-1].BalanceAfter.Equal(want))
	assert.False(t, a.Balance().IsNegative())
}

// TestSequenceAcrossAccounts 流水號跨帳戶、跨操作嚴格遞增 1。
func TestSequenceAcrossAccounts(t *testing.T) {
	seq := NewSequence()
	a1 := NewAccount("A", d("100"), seq)
	a2 := NewAccount("B", d("100"), seq)

	_, _ = a1.Deposit(d("1"))
	_, _ = a2.Withdraw(d("2"))
	_, _ = a1.Withdraw(d("3"))
	_, _ = a2.Deposit(d("4"))

	var ids []int64
	for _, tx := range append(a1.History(), a2.History()...) {
		ids = append(ids, tx.ID)
	}
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, ids)
	assert.Equal(t, int64(1), a1.History()[0].ID)
	assert.Equal(t, int64(3), a1.History()[1].ID)
	assert.Equal(t, int64(2), a2.History()[0].ID)
	assert.Equal(t, int64(4), a2.History()[1].ID)
}

// TestHistoryIsCopy 修改回傳的切片不影響帳戶內部狀態。
func TestHistoryIsCopy(t *testing.T) {
	a := NewAccount("1", d("10"), nil, WithClock(fixedClock))
	_, _ = a.Deposit(d("5"))

	h := a.History()
	h[0].Amount = d("999")
	assert.True(t, a.History()[0].Amount.Equal(d("5")))
	assert.Equal(t, fixedClock(), a.History()[0].Time)
}

// TestConcurrentDeposits 多 goroutine 同時存款仍維持一致（go test -race）。
func TestConcurrentDeposits(t *testing.T) {
	a := NewAccount("1", decimal.Zero, nil)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := a.Deposit(d("1")); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.True(t, a.Balance().Equal(decimal.NewFromInt(workers)))
	h := a.History()
	require.Len(t, h, workers)
	for i := 1; i < len(h); i++ {
		assert.Equal(t, h[i-1].ID+1, h[i].ID)
	}
}
