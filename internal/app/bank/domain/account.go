package domain

import "github.com/shopspring/decimal"

// Account 帳戶
// 帳號建立後不可變更，餘額只能透過 Deposit / Withdraw 異動，且永不為負。
type Account struct {
	owner   string
	number  string
	balance decimal.Decimal
}

// Statement 帳戶快照，交給呼叫端使用，避免外部拿到內部指標
type Statement struct {
	Owner   string
	Number  string
	Balance decimal.Decimal
}

// NewAccount 建立帳戶
//
// 參數:
//
//	owner: 戶名
//	number: 帳號 (唯一識別)
//	balance: 開戶餘額
//
// 回傳:
//
//	*Account: 帳戶
//	error: 帳號為空或開戶餘額為負
func NewAccount(owner, number string, balance decimal.Decimal) (*Account, error) {
	if number == "" {
		return nil, ErrInvalidAccountNumber
	}
	if balance.IsNegative() {
		return nil, ErrNegativeOpeningBalance
	}
	return &Account{
		owner:   owner,
		number:  number,
		balance: balance,
	}, nil
}

func (a *Account) Owner() string { return a.owner }

func (a *Account) Number() string { return a.number }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckBalance 查詢餘額
func (a *Account) CheckBalance() Statement {
	return Statement{
		Owner:   a.owner,
		Number:  a.number,
		Balance: a.balance,
	}
}
