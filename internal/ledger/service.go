// Package ledger holds the aggregation functions and the Service that the
// interactive and remote front ends call into.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"budget_ledger/internal/credential"
	"budget_ledger/internal/domain"
	"budget_ledger/internal/store"

	"github.com/sirupsen/logrus"
)

// Service composes the account and ledger stores. It keeps no state of its own.
type Service struct {
	accounts store.AccountStore
	ledger   store.LedgerStore
	log      *logrus.Entry
}

func NewService(accounts store.AccountStore, ledger store.LedgerStore, log *logrus.Logger) *Service {
	return &Service{accounts: accounts, ledger: ledger, log: log.WithField("component", "ledger")}
}

// Register creates an account and returns its id.
func (s *Service) Register(ctx context.Context, username, secret string) (uint, error) {
	if username == "" || secret == "" {
		return 0, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	id, err := s.accounts.Register(ctx, username, secret)
	if errors.Is(err, credential.ErrSecretTooLong) {
		return 0, fmt.Errorf("%w: password too long", domain.ErrInvalidInput)
	}
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"account_id": id, "username": username}).Info("Account registered")
	return id, nil
}

// Login resolves credentials to an account id.
func (s *Service) Login(ctx context.Context, username, secret string) (uint, error) {
	if username == "" || secret == "" {
		return 0, domain.ErrInvalidCredentials
	}
	id, err := s.accounts.Authenticate(ctx, username, secret)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.log.WithField("username", username).Warn("Login rejected")
		}
		return 0, err
	}
	return id, nil
}

// AddTransaction validates the entry before anything is written.
func (s *Service) AddTransaction(ctx context.Context, accountID uint, kind domain.Kind, amount float64, description string) (domain.Transaction, error) {
	if err := validateEntry(kind, amount, description); err != nil {
		return domain.Transaction{}, err
	}
	t, err := s.ledger.Append(ctx, accountID, kind, amount, description)
	if err != nil {
		return domain.Transaction{}, err
	}
	s.log.WithFields(logrus.Fields{
		"account_id":     accountID,
		"transaction_id": t.ID,
		"kind":           kind,
		"amount":         amount,
	}).Info("Transaction recorded")
	return t, nil
}

// ListTransactions returns the account's transactions in insertion order.
func (s *Service) ListTransactions(ctx context.Context, accountID uint) ([]domain.Transaction, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.ledger.ListForOwner(ctx, accountID)
}

// Summarize derives totals and the recent view from a single read, so the
// two always agree with each other.
func (s *Service) Summarize(ctx context.Context, accountID uint, recentN int) (domain.Summary, error) {
	txs, err := s.ListTransactions(ctx, accountID)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{Totals: Totals(txs), Recent: MostRecent(txs, recentN)}, nil
}

func (s *Service) requireAccount(ctx context.Context, accountID uint) error {
	ok, err := s.accounts.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownOwner
	}
	return nil
}

func validateEntry(kind domain.Kind, amount float64, description string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: kind must be income or expense", domain.ErrInvalidInput)
	}
	if !(amount > 0) || math.IsInf(amount, 1) {
		return fmt.Errorf("%w: amount must be a positive number", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	return nil
}
