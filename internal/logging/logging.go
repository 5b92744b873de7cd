// Package logging 建立程序共用的 logrus logger。
// 日誌一律寫到 stderr（或呼叫端指定的 writer），不與 stdout 的主控台協定混雜。
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Formats 為支援的輸出格式。
var Formats = []string{"text", "json"}

// New 依等級與格式建立 logger。
func New(level logrus.Level, format string, w io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)

	switch format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return l, nil
}
