// internal/bank/directory.go

// Directory 為銀行目錄：以帳號為鍵索引所有持有人，並負責登入驗證。
// 沿用單一互斥鎖 (sync.Mutex) 保護 map；本程式只有一個 session，
// 但註冊介面允許多筆，鎖讓目錄在任何呼叫順序下都保持一致。

package bank

import "sync"

// Directory 管理全系統持有人。
// - holders：帳號 → 持有人。
// - order：帳號的首次註冊順序，讓 Authenticate 的掃描結果可預期。
type Directory struct {
	mu      sync.Mutex
	holders map[string]*Holder
	order   []string
}

// NewDirectory 建立空白目錄。
func NewDirectory() *Directory {
	return &Directory{holders: make(map[string]*Holder)}
}

// Register 以持有人帳戶的帳號為鍵註冊。
// 鍵已存在時直接覆蓋（不回報重複），並保留原本的掃描位置。
func (d *Directory) Register(h *Holder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := h.Account().Number()
	if _, ok := d.holders[key]; !ok {
		d.order = append(d.order, key)
	}
	d.holders[key] = h
}

// Authenticate 依註冊順序線性掃描，回傳第一位 userID 相同且 PIN 通過驗證的持有人。
// 兩個欄位必須同時吻合；否則回傳 ErrAuthFailed。
func (d *Directory) Authenticate(userID, pin string) (*Holder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, key := range d.order {
		h := d.holders[key]
		if h.UserID() == userID && h.VerifyPIN(pin) {
			return h, nil
		}
	}
	return nil, ErrAuthFailed
}

// LookupAccount 依帳號取得帳戶；不存在回傳 ErrNotFound。
func (d *Directory) LookupAccount(number string) (*Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.holders[number]
	if !ok {
		return nil, ErrNotFound
	}
	return h.Account(), nil
}

// Len 回傳已註冊的持有人數量。
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.holders)
}
