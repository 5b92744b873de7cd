// internal/atm/prompter.go
//
// Prompter 把「印出提示、讀取一行」抽象成請求/回應介面，
// 讓 Session 不直接依賴 stdin/stdout，可以腳本化輸入進行測試。

package atm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedInput 代表需要數字的地方收到非數字內容，或單行輸入過長。
var ErrMalformedInput = errors.New("malformed input")

// 輸入上限。
const (
	// MaxLineLen 為單行位元組上限；超過時整行丟棄。
	MaxLineLen = 1024
	// 金額的十進位指數範圍與係數位元數上限。
	// 超出範圍的值（如 1e-2000000000）在加減時會觸發極大的重新縮放。
	minAmountExp  = -10
	maxAmountExp  = 18
	maxAmountBits = 128
)

// Prompter 為主控台輸入來源。
// 輸入結束時兩個方法皆回傳 io.EOF。
type Prompter interface {
	PromptLine(prompt string) (string, error)
	PromptNumber(prompt string) (decimal.Decimal, error)
}

// ConsolePrompter 以 bufio.Reader 逐行讀取，提示文字不換行。
type ConsolePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewConsolePrompter 建立讀取 r、提示寫到 w 的 Prompter。
func NewConsolePrompter(r io.Reader, w io.Writer) *ConsolePrompter {
	return &ConsolePrompter{r: bufio.NewReader(r), out: w}
}

// PromptLine 回傳整行內容（僅去除行尾 \n 與 \r），不修剪空白，
// 因此使用者代號與 PIN 會被原樣比對。
// 超過 MaxLineLen 的行會被讀完並丟棄，回傳包裝 ErrMalformedInput 的錯誤。
func (p *ConsolePrompter) PromptLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

func (p *ConsolePrompter) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := p.r.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLen+2 {
				tooLong, buf = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
			break
		}
		if err != nil {
			return "", err
		}
		break
	}
	line := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
	if tooLong || len(line) > MaxLineLen {
		return "", fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedInput, MaxLineLen)
	}
	return line, nil
}

// PromptNumber 讀取一行並解析為十進位金額。
// 格式錯誤、行過長或數值範圍過大皆回傳包裝 ErrMalformedInput 的錯誤。
func (p *ConsolePrompter) PromptNumber(prompt string) (decimal.Decimal, error) {
	line, err := p.PromptLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedInput, line)
	}
	if v.Exponent() < minAmountExp || v.Exponent() > maxAmountExp || v.Coefficient().BitLen() > maxAmountBits {
		return decimal.Zero, fmt.Errorf("%w: %q out of range", ErrMalformedInput, line)
	}
	return v, nil
}
