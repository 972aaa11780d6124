package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

// BankUseCase 是核心業務邏輯層
type BankUseCase struct {
	ledger Ledger
}

func NewBankUseCase(ledger Ledger) *BankUseCase {
	return &BankUseCase{
		ledger: ledger,
	}
}

// Deposit 存款，成功後回傳最新的帳戶快照
func (b *BankUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Statement, error) {
	if err := b.ledger.PostTransaction(ctx, domain.NewDeposit(number, amount)); err != nil {
		return domain.Statement{}, err
	}
	return b.ledger.GetAccount(ctx, number)
}

// Withdraw 提款，成功後回傳最新的帳戶快照
func (b *BankUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Statement, error) {
	if err := b.ledger.PostTransaction(ctx, domain.NewWithdraw(number, amount)); err != nil {
		return domain.Statement{}, err
	}
	return b.ledger.GetAccount(ctx, number)
}

// Transfer 轉帳 (先從 from 提款，再存入 to)
func (b *BankUseCase) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	return b.ledger.PostTransaction(ctx, domain.NewTransfer(from, to, amount))
}

// CheckBalance 查詢餘額
func (b *BankUseCase) CheckBalance(ctx context.Context, number string) (domain.Statement, error) {
	return b.ledger.GetAccount(ctx, number)
}

// FindAccount 依帳號查找帳戶，只做完全比對
func (b *BankUseCase) FindAccount(ctx context.Context, number string) (domain.Statement, error) {
	return b.ledger.GetAccount(ctx, number)
}

// Accounts 列出所有帳戶
func (b *BankUseCase) Accounts(ctx context.Context) ([]domain.Statement, error) {
	return b.ledger.ListAccounts(ctx)
}
