// Package console 是互動式選單的 driving adapter：讀取一行輸入，轉呼叫 BankUseCase，並把結果印回終端機。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/money"
)

// State Session 狀態
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Session 一次互動式操作
type Session struct {
	core      *usecase.BankUseCase
	formatter *money.Formatter
	in        *bufio.Scanner
	out       io.Writer
	state     State
}

func NewSession(core *usecase.BankUseCase, formatter *money.Formatter, in io.Reader, out io.Writer) *Session {
	return &Session{
		core:      core,
		formatter: formatter,
		in:        bufio.NewScanner(in),
		out:       out,
		state:     StateRunning,
	}
}

// State 回傳目前狀態
func (s *Session) State() State {
	return s.state
}

// Run 執行選單迴圈，直到使用者選擇離開或輸入結束
//
// 參數:
//
//	ctx: 上下文，傳遞給 usecase
//
// 回傳:
//
//	error: 讀取輸入失敗 (EOF 不算錯誤)
func (s *Session) Run(ctx context.Context) error {
	s.println(msgWelcome)
	for s.state == StateRunning {
		s.printMenu()
		choice, err := s.readLine()
		if err != nil {
			return s.stop(err)
		}
		if err := s.dispatch(ctx, choice); err != nil {
			return s.stop(err)
		}
	}
	return nil
}

// dispatch 依選項完全比對分派操作
func (s *Session) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case optionDeposit:
		return s.handleDeposit(ctx)
	case optionWithdraw:
		return s.handleWithdraw(ctx)
	case optionTransfer:
		return s.handleTransfer(ctx)
	case optionCheckBalance:
		return s.handleCheckBalance(ctx)
	case optionExit:
		s.state = StateTerminated
		s.println(msgGoodbye)
	default:
		s.println(msgInvalidOption)
	}
	return nil
}

func (s *Session) handleDeposit(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx, promptDepositAccount, msgAccountNotFound)
	if err != nil || !ok {
		return err
	}
	amount, ok, err := s.promptAmount(promptDepositAmount)
	if err != nil || !ok {
		return err
	}

	stmt, err := s.core.Deposit(ctx, account.Number, amount)
	switch {
	case err == nil:
		s.printf("Successfully deposited %s to account %s. New balance: %s\n",
			s.formatter.Format(amount), stmt.Number, s.formatter.Format(stmt.Balance))
	case errors.Is(err, domain.ErrInvalidAmount):
		s.println(msgDepositNotPositive)
	default:
		s.report(err)
	}
	return nil
}

func (s *Session) handleWithdraw(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx, promptWithdrawAccount, msgAccountNotFound)
	if err != nil || !ok {
		return err
	}
	amount, ok, err := s.promptAmount(promptWithdrawAmount)
	if err != nil || !ok {
		return err
	}

	stmt, err := s.core.Withdraw(ctx, account.Number, amount)
	switch {
	case err == nil:
		s.printf("Successfully withdrew %s from account %s. New balance: %s\n",
			s.formatter.Format(amount), stmt.Number, s.formatter.Format(stmt.Balance))
	case errors.Is(err, domain.ErrInsufficientFunds):
		s.println(msgInsufficientFunds)
	case errors.Is(err, domain.ErrInvalidAmount):
		s.println(msgWithdrawNotPositive)
	default:
		s.report(err)
	}
	return nil
}

// handleTransfer 來源帳號 -> 目的帳號 -> 金額，任一步失敗即中止
func (s *Session) handleTransfer(ctx context.Context) error {
	from, ok, err := s.promptAccount(ctx, promptTransferFrom, msgSourceNotFound)
	if err != nil || !ok {
		return err
	}
	to, ok, err := s.promptAccount(ctx, promptTransferTo, msgDestinationNotFound)
	if err != nil || !ok {
		return err
	}
	amount, ok, err := s.promptAmount(promptTransferAmount)
	if err != nil || !ok {
		return err
	}

	err = s.core.Transfer(ctx, from.Number, to.Number, amount)
	switch {
	case err == nil:
		s.printf("Successfully transferred %s from %s to %s.\n",
			s.formatter.Format(amount), from.Number, to.Number)
	case errors.Is(err, domain.ErrInsufficientFunds):
		s.println(msgTransferInsufficient)
	case errors.Is(err, domain.ErrInvalidAmount):
		s.println(msgTransferNotPositive)
	default:
		s.report(err)
	}
	return nil
}

func (s *Session) handleCheckBalance(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx, promptCheckAccount, msgAccountNotFound)
	if err != nil || !ok {
		return err
	}
	s.printf("Account %s owned by %s has a balance of %s\n",
		account.Number, account.Owner, s.formatter.Format(account.Balance))
	return nil
}

// promptAccount 詢問帳號並查找帳戶；找不到時印出 notFound 並回傳 ok=false
func (s *Session) promptAccount(ctx context.Context, prompt, notFound string) (domain.Statement, bool, error) {
	s.println(prompt)
	number, err := s.readLine()
	if err != nil {
		return domain.Statement{}, false, err
	}
	account, err := s.core.FindAccount(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.println(notFound)
			return domain.Statement{}, false, nil
		}
		return domain.Statement{}, false, err
	}
	return account, true, nil
}

// promptAmount 詢問金額；不是數字時印出錯誤並回傳 ok=false
func (s *Session) promptAmount(prompt string) (decimal.Decimal, bool, error) {
	s.println(prompt)
	line, err := s.readLine()
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, err := money.ParseAmount(line)
	if err != nil {
		s.println(msgInvalidAmount)
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

// readLine 讀取一行；輸入結束時回傳 io.EOF
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// stop 結束 Session；EOF 視為正常結束
func (s *Session) stop(err error) error {
	s.state = StateTerminated
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) report(err error) {
	s.printf("Operation failed: %v\n", err)
}

func (s *Session) printMenu() {
	s.println("")
	s.println(menu)
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
