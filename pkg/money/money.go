// Package money 負責金額的解析與依語系格式化輸出。
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// ErrNotANumber 輸入不是合法的數字
	ErrNotANumber = errors.New("not a number")

	// ErrOutOfRange 金額超出可表示的範圍
	ErrOutOfRange = errors.New("amount out of range")
)

const (
	// MaxScale 最多 28 位小數
	MaxScale = 28
)

// MaxAmount 可接受的最大絕對值 (2^96 - 1)
var MaxAmount = decimal.RequireFromString("79228162514264337593543950335")

// 只接受一般十進位寫法，不接受指數 (1e9)、千分位或貨幣符號
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Formatter 依語系輸出金額，例如 en-US + USD => $6,500.00
type Formatter struct {
	symbol  string
	scale   int
	group   string
	decimal string
}

// NewFormatter 建立金額格式化器
//
// 參數:
//
//	locale: BCP 47 語系標籤 (e.g., "en-US")，決定千分位與小數點符號
//	code: ISO 4217 幣別代碼 (e.g., "USD")，決定小數位數
//	symbol: 金額前綴符號，空字串時改用幣別代碼
//
// 回傳值:
//
//	*Formatter: 格式化器
//	error: 語系或幣別無法解析
func NewFormatter(locale, code, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	if symbol == "" {
		symbol = unit.String() + " "
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Formatter{
		symbol:  symbol,
		scale:   scale,
		group:   group,
		decimal: dec,
	}, nil
}

// separators 由語系印出 1234567.5，取出千分位與小數點符號
// 非拉丁數字的語系取不到時退回 "," 與 "."
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	i := strings.Index(sample, "234")
	j := strings.Index(sample, "567")
	if !strings.HasPrefix(sample, "1") || i < 1 || j < i+3 || !strings.HasSuffix(sample, "5") || len(sample)-1 < j+3 {
		return ",", "."
	}
	return sample[1:i], sample[j+3 : len(sample)-1]
}

// Format 將金額四捨五入到幣別小數位數後輸出，全程不經過浮點數
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	intPart, frac, _ := strings.Cut(rounded.StringFixed(int32(f.scale)), ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.symbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(f.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// ParseAmount 解析使用者輸入的金額，只接受一般十進位數字字串 (允許前後空白)
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if !plainDecimal.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if amount.Abs().GreaterThan(MaxAmount) || -amount.Exponent() > MaxScale {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrOutOfRange, input)
	}
	return amount, nil
}
