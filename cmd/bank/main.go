package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	console_adapter "github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
	"github.com/JoeShih716/go-mem-bank/internal/config"
	"github.com/JoeShih716/go-mem-bank/pkg/money"
)

func main() {
	log.SetPrefix("bank: ")
	log.SetFlags(0)

	configPath := flag.String("config", "", "path to YAML config (optional, built-in Alice accounts when empty)")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *configPath != "" {
		log.Printf("Loaded config from %s", *configPath)
	}

	// 2. 建立帳本與 UseCase
	ctx := context.Background()
	core, err := newBankUseCase(cfg.Accounts)
	if err != nil {
		log.Fatalf("Failed to init bank: %v", err)
	}

	// 3. 確認載入的帳戶
	loaded, err := core.Accounts(ctx)
	if err != nil {
		log.Fatalf("Failed to load all accounts: %v", err)
	}
	log.Printf("Loaded %d accounts", len(loaded))

	// 4. 初始化 Console Adapter (Driving Adapter)
	formatter, err := money.NewFormatter(cfg.Currency.Locale, cfg.Currency.Code, cfg.Currency.Symbol)
	if err != nil {
		log.Fatalf("Failed to init formatter: %v", err)
	}
	session := console_adapter.NewSession(core, formatter, os.Stdin, os.Stdout)

	// 5. 進入選單迴圈
	if err := session.Run(ctx); err != nil {
		log.Fatalf("Session aborted: %v", err)
	}
}

// newBankUseCase 依開戶設定建立記憶體帳本與 UseCase
func newBankUseCase(seeds []config.Account) (*usecase.BankUseCase, error) {
	accounts, err := openAccounts(seeds)
	if err != nil {
		return nil, err
	}
	ledger, err := memory_adapter.NewLedger(accounts)
	if err != nil {
		return nil, err
	}
	return usecase.NewBankUseCase(ledger), nil
}

// openAccounts 依設定建立帳戶
func openAccounts(seeds []config.Account) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(seeds))
	for _, seed := range seeds {
		balance, err := seed.OpeningBalance()
		if err != nil {
			return nil, err
		}
		account, err := domain.NewAccount(seed.Owner, seed.Number, balance)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", seed.Number, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
