package auth

import (
	"context"
	"errors"

	"guestlink/internal/domain"
)

// Service authenticates staff credentials and issues bearer tokens.
type Service struct {
	staff  domain.StaffRepository
	tokens *TokenManager
}

func NewService(staff domain.StaffRepository, tokens *TokenManager) *Service {
	return &Service{staff: staff, tokens: tokens}
}

// Login verifies email+password and returns a signed token plus the account.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, domain.StaffAccount, error) {
	acct, err := s.staff.GetStaffByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.StaffAccount{}, domain.ErrUnauthorized
		}
		return "", domain.StaffAccount{}, err
	}
	if !CheckPassword(acct.PasswordHash, password) {
		return "", domain.StaffAccount{}, domain.ErrUnauthorized
	}
	token, err := s.tokens.Issue(acct)
	if err != nil {
		return "", domain.StaffAccount{}, err
	}
	return token, acct, nil
}
