package ports

import "context"

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
