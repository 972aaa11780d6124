package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
)

// Ledger 是一個純記憶體的帳本
//
// 結構:
//
//	accounts: 帳號 -> 帳戶
//	order: 開戶順序，ListAccounts 依此排序
//	mu: 保護帳戶資料
//	sequence: 最後一筆被接受交易的順序號
//	processedTransactions: 已處理過的交易
type Ledger struct {
	accounts map[string]*domain.Account
	order    []string
	mu       sync.RWMutex
	sequence uint64
	// 已處理過的交易
	processedTransactions map[uuid.UUID]uint64
}

// NewLedger 建立一個新的 Ledger 實例
//
// 參數:
//
//	accounts: 初始帳戶
//
// 回傳:
//
//	*Ledger: Ledger 實例
//	error: 帳號重複時回傳 domain.ErrAccountAlreadyExists
func NewLedger(accounts []*domain.Account) (*Ledger, error) {
	ledger := &Ledger{
		accounts:              make(map[string]*domain.Account, len(accounts)),
		order:                 make([]string, 0, len(accounts)),
		processedTransactions: make(map[uuid.UUID]uint64),
	}
	for _, account := range accounts {
		if _, ok := ledger.accounts[account.Number()]; ok {
			return nil, domain.ErrAccountAlreadyExists
		}
		ledger.accounts[account.Number()] = account
		ledger.order = append(ledger.order, account.Number())
	}
	return ledger, nil
}

// GetAccount 取得指定帳戶的快照
func (l *Ledger) GetAccount(ctx context.Context, number string) (domain.Statement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	account, ok := l.accounts[number]
	if !ok {
		return domain.Statement{}, domain.ErrAccountNotFound
	}
	return account.CheckBalance(), nil
}

// ListAccounts 依開戶順序回傳所有帳戶快照
func (l *Ledger) ListAccounts(ctx context.Context) ([]domain.Statement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Statement, 0, len(l.order))
	for _, number := range l.order {
		out = append(out, l.accounts[number].CheckBalance())
	}
	return out, nil
}

// lastSequence 回傳目前已接受的交易數
func (l *Ledger) lastSequence() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sequence
}

// PostTransaction 處理交易請求
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件，成功時會填入 Sequence
//
// 回傳:
//
//	error: 處理錯誤，失敗時不會異動任何帳戶
func (l *Ledger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.postTransactionInternal(tran)
}

// postTransactionInternal 執行交易核心邏輯 (呼叫端需持有寫鎖)
func (l *Ledger) postTransactionInternal(tran *domain.Transaction) error {
	if seq, ok := l.processedTransactions[tran.TransactionID]; ok {
		tran.Sequence = seq
		return nil
	}

	// 核心交易分發
	var err error
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		err = l.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		err = l.handleWithdraw(tran)
	case domain.TransactionTypeTransfer:
		err = l.handleTransfer(tran)
	default:
		return domain.ErrUnknownTransactionType
	}
	if err != nil {
		return err
	}

	l.sequence++
	tran.Sequence = l.sequence
	l.processedTransactions[tran.TransactionID] = l.sequence
	return nil
}

// handleDeposit 處理存款邏輯
func (l *Ledger) handleDeposit(tran *domain.Transaction) error {
	toAccount, ok := l.accounts[tran.To]
	if !ok {
		return domain.ErrAccountNotFound
	}
	return toAccount.Deposit(tran.Amount)
}

// handleWithdraw 處理提款邏輯
func (l *Ledger) handleWithdraw(tran *domain.Transaction) error {
	fromAccount, ok := l.accounts[tran.From]
	if !ok {
		return domain.ErrAccountNotFound
	}
	return fromAccount.Withdraw(tran.Amount)
}

// handleTransfer 處理轉帳邏輯
// 兩邊帳戶與餘額都檢查過才異動，失敗時不會只扣款未入帳。
func (l *Ledger) handleTransfer(tran *domain.Transaction) error {
	for _, number := range tran.AccountNumbers() {
		if _, ok := l.accounts[number]; !ok {
			return domain.ErrAccountNotFound
		}
	}
	if !tran.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	fromAccount := l.accounts[tran.From]
	toAccount := l.accounts[tran.To]
	if fromAccount.Balance().LessThan(tran.Amount) {
		return domain.ErrInsufficientFunds
	}

	if err := fromAccount.Withdraw(tran.Amount); err != nil {
		return err
	}
	return toAccount.Deposit(tran.Amount)
}

var _ usecase.Ledger = (*Ledger)(nil)
