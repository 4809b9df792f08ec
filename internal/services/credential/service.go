package credential

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/monstermint/backend/internal/dependencies/random"
	"github.com/monstermint/backend/internal/model"
)

// passcodeBytes is the entropy of a ledger passcode. Uniqueness across
// accounts comes from entropy alone; there is no collision check.
const passcodeBytes = 20

// Config holds the credential and balance policy
type Config struct {
	// OperatorAccount is the single designated account that receives an
	// elevated initial balance
	OperatorAccount model.AccountID

	// OperatorBalance and StandardBalance are the initial ledger
	// balances for the operator account and everyone else
	OperatorBalance int
	StandardBalance int

	// BcryptCost is the work factor for password hashing
	BcryptCost int
}

// DefaultConfig returns default credential configuration
func DefaultConfig() Config {
	return Config{
		OperatorBalance: 10000,
		StandardBalance: 1,
		BcryptCost:      bcrypt.DefaultCost,
	}
}

// Service handles password hashing, passcode generation, and the
// initial balance policy
type Service struct {
	random random.Random
	cfg    Config
}

// New creates a new credential service
func New(rnd random.Random, cfg Config) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	if cfg.OperatorBalance == 0 {
		cfg.OperatorBalance = DefaultConfig().OperatorBalance
	}
	if cfg.StandardBalance == 0 {
		cfg.StandardBalance = DefaultConfig().StandardBalance
	}
	return &Service{
		random: rnd,
		cfg:    cfg,
	}
}

// HashPassword returns a salted bcrypt hash of the plaintext password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored hash. A mismatch is (false, nil); a hash that is not a
// well-formed bcrypt value returns model.ErrCorruptCredential.
func (s *Service) VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", model.ErrCorruptCredential, err)
}

// GeneratePasscode returns a fresh hex-encoded ledger passcode
func (s *Service) GeneratePasscode() (string, error) {
	b, err := s.random.Bytes(passcodeBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// InitialBalance returns the initial ledger balance for the given
// account id under the configured policy
func (s *Service) InitialBalance(id model.AccountID) int {
	if id == s.cfg.OperatorAccount {
		return s.cfg.OperatorBalance
	}
	return s.cfg.StandardBalance
}

// OperatorAccount returns the configured operator account id
func (s *Service) OperatorAccount() model.AccountID {
	return s.cfg.OperatorAccount
}
