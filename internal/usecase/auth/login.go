package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	authpkg "github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/domain/user"
	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

type Login struct {
	users  user.Repository
	tokens *authpkg.TokenIssuer
	audit  *audit.Dispatcher
}

func NewLogin(
	users user.Repository,
	tokens *authpkg.TokenIssuer,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute checks the credentials and issues a bearer token. An unknown
// username and a wrong password fail the same way.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*dto.LoginResponse, error) {

	u, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrAuth("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, httperr.ErrAuth("invalid_credentials")
	}

	token, exp, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &u.ID,
		Action: audit.ActionLogin,
		Entity: "user",
	})

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User: dto.UserDTO{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
		},
	}, nil
}
