package store

import (
	"context"
	"errors"
	"fmt"

	"budget_ledger/internal/credential"
	"budget_ledger/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccountStore owns account records.
type AccountStore interface {
	Register(ctx context.Context, username, secret string) (uint, error)
	Authenticate(ctx context.Context, username, secret string) (uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type accountStore struct {
	db     *gorm.DB
	policy credential.Policy
	log    *logrus.Entry
}

func NewAccountStore(db *gorm.DB, policy credential.Policy, log *logrus.Logger) AccountStore {
	return &accountStore{db: db, policy: policy, log: log.WithField("store", "AccountStore")}
}

// Register inserts the account in a single statement; the unique index on
// username decides concurrent attempts, so at most one of them succeeds.
func (s *accountStore) Register(ctx context.Context, username, secret string) (uint, error) {
	sealed, err := s.policy.Seal(secret)
	if err != nil {
		return 0, err
	}
	user := domain.User{Username: username, Password: sealed}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	s.log.WithField("account_id", user.ID).Debug("account created")
	return user.ID, nil
}

// Authenticate resolves matching credentials to an account id. Unknown
// usernames and wrong secrets fail the same way.
func (s *accountStore) Authenticate(ctx context.Context, username, secret string) (uint, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.ErrInvalidCredentials
	}
	if err != nil {
		return 0, fmt.Errorf("find user: %w", err)
	}
	if user.Username != username || !s.policy.Match(user.Password, secret) {
		return 0, domain.ErrInvalidCredentials
	}
	return user.ID, nil
}

func (s *accountStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count user: %w", err)
	}
	return count > 0, nil
}
