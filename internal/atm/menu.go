// internal/atm/menu.go
//
// 本檔負責選單註冊：選項編號 → 標籤 → 處理函式。
// 與 session.go 分離，session 專注流程，menu 專注「輸入如何被導向」。
// 印出的選單文字直接由此表產生，兩者不會不同步。
package atm

import (
	"fmt"

	"atm/internal/bank"
)

// option 為單一選單項目；run 回傳 done=true 代表結束 session。
type option struct {
	key   int
	label string
	run   func(s *Session, acct *bank.Account) (done bool, err error)
}

// menu 依顯示順序列出所有選項。
func menu() []option {
	return []option{
		{1, "Show Transaction History", (*Session).showHistory},
		{2, "Withdraw", (*Session).withdraw},
		{3, "Deposit", (*Session).deposit},
		{4, "Quit", (*Session).quit},
	}
}

// printMenu 輸出空行、標題與各選項（提示文字由 PromptLine 負責）。
func (s *Session) printMenu() {
	writeLine(s.out, "")
	writeLine(s.out, msgMenuTitle)
	for _, o := range s.options {
		writeLine(s.out, fmt.Sprintf("%d. %s", o.key, o.label))
	}
}

// route 找出對應的選項；不存在時 ok=false。
func (s *Session) route(choice int) (option, bool) {
	for _, o := range s.options {
		if o.key == choice {
			return o, true
		}
	}
	return option{}, false
}
