package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/utils"
)

// AuthService handles both credential paths and the shared token format.
type AuthService struct {
	students   *repository.StudentRepository
	counselors *repository.CounselorRepository
	tokens     *repository.TokenRepository
	jwtSecret  string
	jwtTTL     time.Duration
}

func NewAuthService(
	students *repository.StudentRepository,
	counselors *repository.CounselorRepository,
	tokens *repository.TokenRepository,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		students:   students,
		counselors: counselors,
		tokens:     tokens,
		jwtSecret:  secret,
		jwtTTL:     ttl,
	}
}

// StudentLogin: the unique code is the whole secret, no password.
func (s *AuthService) StudentLogin(code string) (string, *entity.Student, error) {
	code = strings.TrimSpace(code)

	student, err := s.students.FindByCode(code)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issue(student.ID, string(entity.KindStudent))
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}

// CounselorLogin checks email + bcrypt password.
func (s *AuthService) CounselorLogin(email, password string) (string, *entity.Counselor, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	counselor, err := s.counselors.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(counselor.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issue(counselor.ID, string(entity.KindCounselor))
	if err != nil {
		return "", nil, err
	}
	return token, counselor, nil
}

// issue signs a JWT and records its jti so the token can be revoked later.
func (s *AuthService) issue(userID uint, role string) (string, error) {
	token, jti, err := utils.GenerateToken(userID, role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	record := &entity.AccessToken{
		JTI:       jti,
		UserID:    userID,
		UserKind:  role,
		ExpiresAt: time.Now().Add(s.jwtTTL),
	}
	if err := s.tokens.Create(record); err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the presented token.
func (s *AuthService) Logout(jti string) error {
	return s.tokens.Revoke(jti)
}

// Profile resolves the principal to its concrete record, dispatching on
// the explicit kind tag.
func (s *AuthService) Profile(p entity.Principal) (any, error) {
	switch p.Kind {
	case entity.KindStudent:
		student, err := s.students.FindByID(p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		return student, nil
	case entity.KindCounselor:
		counselor, err := s.counselors.FindByID(p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		return counselor, nil
	default:
		return nil, ErrNotFound
	}
}
