package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// 不分 Deposit/Withdraw/Transfer，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// GetAccount 依帳號取得帳戶快照
	GetAccount(ctx context.Context, number string) (domain.Statement, error)
	// ListAccounts 依開戶順序列出所有帳戶
	ListAccounts(ctx context.Context) ([]domain.Statement, error)
}
