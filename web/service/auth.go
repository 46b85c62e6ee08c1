package service

import (
	"crypto/subtle"

	"github.com/userhub-dev/userhub/logger"
	"github.com/userhub-dev/userhub/token"
	"github.com/userhub-dev/userhub/util/common"
	"github.com/userhub-dev/userhub/web/entity"
)

var ErrInvalidCredentials = common.NewError("invalid credentials")

// AuthService handles registration and password login. Storage is delegated
// to the UserService and credential minting to the token service.
type AuthService struct {
	users  *UserService
	tokens *token.Service
}

func NewAuthService(users *UserService, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(username, password string) (entity.User, error) {
	return s.users.Create(username, password)
}

// Login checks the supplied credentials and issues a bearer token carrying
// the user's id and name. An unknown username and a wrong password are not
// distinguished. The comparison is constant-time even though passwords are
// stored verbatim.
func (s *AuthService) Login(username, password string) (string, error) {
	user, ok := s.users.FindByUsername(username)
	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Generate(user.Id, user.Username)
	if err != nil {
		logger.Warning("token generation failed:", err)
		return "", err
	}
	return tok, nil
}
