// Package config 載入並驗證銀行模擬器的 YAML 設定。
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config 定義整個程式的設定
type Config struct {
	Currency Currency  `yaml:"currency"`
	Accounts []Account `yaml:"accounts"`
}

// Currency 金額顯示設定
type Currency struct {
	Locale string `yaml:"locale"` // BCP 47 語系 (預設 en-US)
	Code   string `yaml:"code"`   // ISO 4217 幣別 (預設 USD)
	Symbol string `yaml:"symbol"` // 金額前綴符號 (預設 $)
}

// Account 開戶種子資料
type Account struct {
	Owner   string `yaml:"owner"`
	Number  string `yaml:"number"`
	Balance string `yaml:"balance"` // 以字串保存，避免 YAML 轉成浮點數
}

var (
	ErrNoAccounts      = errors.New("config: at least one account is required")
	ErrDuplicateNumber = errors.New("config: duplicate account number")
	ErrEmptyNumber     = errors.New("config: account number must not be empty")
	ErrBadBalance      = errors.New("config: balance must be a non-negative number")
)

// Default 回傳內建設定：Alice 的三個帳戶
func Default() Config {
	return Config{
		Currency: Currency{
			Locale: "en-US",
			Code:   "USD",
			Symbol: "$",
		},
		Accounts: []Account{
			{Owner: "Alice", Number: "101", Balance: "5000"},
			{Owner: "Alice", Number: "102", Balance: "10000"},
			{Owner: "Alice", Number: "103", Balance: "20000"},
		},
	}
}

// Load 讀取設定檔；path 為空時直接使用 Default()
//
// 參數:
//
//	path: YAML 設定檔路徑
//
// 回傳值:
//
//	Config: 補全預設值並通過驗證的設定
//	error: 讀檔、解析或驗證失敗
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 內容
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) applyDefaults() {
	def := Default()
	if c.Currency.Locale == "" {
		c.Currency.Locale = def.Currency.Locale
	}
	if c.Currency.Code == "" {
		c.Currency.Code = def.Currency.Code
		if c.Currency.Symbol == "" {
			c.Currency.Symbol = def.Currency.Symbol
		}
	}
	if len(c.Accounts) == 0 {
		c.Accounts = def.Accounts
	}
}

// Validate 檢查設定是否合法
func (c Config) Validate() error {
	if _, err := language.Parse(c.Currency.Locale); err != nil {
		return fmt.Errorf("config: invalid locale %q: %w", c.Currency.Locale, err)
	}
	if _, err := currency.ParseISO(c.Currency.Code); err != nil {
		return fmt.Errorf("config: invalid currency %q: %w", c.Currency.Code, err)
	}
	if len(c.Accounts) == 0 {
		return ErrNoAccounts
	}
	seen := make(map[string]struct{}, len(c.Accounts))
	for _, a := range c.Accounts {
		if a.Number == "" {
			return ErrEmptyNumber
		}
		if _, ok := seen[a.Number]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateNumber, a.Number)
		}
		seen[a.Number] = struct{}{}
		if _, err := a.OpeningBalance(); err != nil {
			return err
		}
	}
	return nil
}

// OpeningBalance 解析開戶餘額
func (a Account) OpeningBalance() (decimal.Decimal, error) {
	if a.Balance == "" {
		return decimal.Zero, nil
	}
	balance, err := decimal.NewFromString(a.Balance)
	if err != nil || balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: account %s has %q", ErrBadBalance, a.Number, a.Balance)
	}
	return balance, nil
}
