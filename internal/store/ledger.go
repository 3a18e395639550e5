package store

import (
	"context"
	"errors"
	"fmt"

	"budget_ledger/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerStore owns transaction records. It is append-only.
type LedgerStore interface {
	Append(ctx context.Context, ownerID uint, kind domain.Kind, amount float64, description string) (domain.Transaction, error)
	ListForOwner(ctx context.Context, ownerID uint) ([]domain.Transaction, error)
}

type ledgerStore struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewLedgerStore(db *gorm.DB, log *logrus.Logger) LedgerStore {
	return &ledgerStore{db: db, log: log.WithField("store", "LedgerStore")}
}

// Append records a transaction for an existing owner. Amount and description
// rules belong to the caller; the kind is always checked here.
func (s *ledgerStore) Append(ctx context.Context, ownerID uint, kind domain.Kind, amount float64, description string) (domain.Transaction, error) {
	if !kind.Valid() {
		return domain.Transaction{}, fmt.Errorf("%w: kind %q", domain.ErrInvalidInput, kind)
	}
	t := domain.Transaction{
		UserID:      ownerID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("id = ?", ownerID).Count(&count).Error; err != nil {
			return fmt.Errorf("count owner: %w", err)
		}
		if count == 0 {
			return domain.ErrUnknownOwner
		}
		return tx.Omit(clause.Associations).Create(&t).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.Transaction{}, domain.ErrUnknownOwner
	}
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOwner) {
			return domain.Transaction{}, err
		}
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	s.log.WithFields(logrus.Fields{"account_id": ownerID, "transaction_id": t.ID}).Debug("transaction appended")
	return t, nil
}

// ListForOwner re-reads the owner's transactions in insertion order on every call.
func (s *ledgerStore) ListForOwner(ctx context.Context, ownerID uint) ([]domain.Transaction, error) {
	txs := []domain.Transaction{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id asc").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
