// internal/bank/holder.go
//
// Holder 綁定登入身分、憑證驗證器與唯一一個帳戶。
// 憑證比對抽象為 CredentialVerifier，可在不改動 session 的前提下換成雜湊儲存。

package bank

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier 驗證使用者輸入的 PIN。
type CredentialVerifier interface {
	Verify(candidate string) bool
}

// PlainPIN 以明文完全比對。
type PlainPIN string

func (p PlainPIN) Verify(candidate string) bool {
	return string(p) == candidate
}

// BcryptPIN 僅保存 bcrypt 雜湊值，不保留明文。
type BcryptPIN struct {
	hash []byte
}

// NewBcryptPIN 以指定 cost 雜湊 PIN；cost 超出範圍時回傳 bcrypt 的錯誤。
func NewBcryptPIN(pin string, cost int) (*BcryptPIN, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptPIN{hash: h}, nil
}

func (p *BcryptPIN) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(candidate)) == nil
}

// Holder represents an account holder.
type Holder struct {
	userID  string
	pin     CredentialVerifier
	account *Account
}

// NewHolder 建立持有人；身分與 PIN 於程序存續期間不可變。
func NewHolder(userID string, pin CredentialVerifier, account *Account) *Holder {
	return &Holder{userID: userID, pin: pin, account: account}
}

// VerifyPIN 交由注入的驗證器判斷。無鎖定、無次數限制。
func (h *Holder) VerifyPIN(candidate string) bool {
	return h.pin.Verify(candidate)
}

func (h *Holder) UserID() string { return h.userID }

// Account 回傳持有人的帳戶（直接參照，非拷貝）。
func (h *Holder) Account() *Account { return h.account }
