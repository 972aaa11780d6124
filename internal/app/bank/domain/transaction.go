package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transaction 交易
type Transaction struct {
	// Sequence: 帳本接受交易時分配的順序號 (1, 2, 3...)
	Sequence uint64
	// TransactionID: 交易追蹤號 (UUID)，用於冪等檢查
	TransactionID uuid.UUID
	// From, To: 帳號。存款只有 To，提款只有 From
	From string
	To   string
	// Amount: 金額
	Amount decimal.Decimal
	Type   TransactionType
}

// NewDeposit 建立存款交易
func NewDeposit(to string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		To:            to,
		Amount:        amount,
		Type:          TransactionTypeDeposit,
	}
}

// NewWithdraw 建立提款交易
func NewWithdraw(from string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		From:          from,
		Amount:        amount,
		Type:          TransactionTypeWithdraw,
	}
}

// NewTransfer 建立轉帳交易
func NewTransfer(from, to string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		From:          from,
		To:            to,
		Amount:        amount,
		Type:          TransactionTypeTransfer,
	}
}

// AccountNumbers 回傳交易涉及的帳號
func (t *Transaction) AccountNumbers() []string {
	ids := make([]string, 0, 2)
	switch t.Type {
	case TransactionTypeTransfer:
		ids = append(ids, t.From, t.To)
	case TransactionTypeDeposit:
		ids = append(ids, t.To)
	case TransactionTypeWithdraw:
		ids = append(ids, t.From)
	}
	return ids
}
