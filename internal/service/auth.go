package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/person-api/internal/server"
)

// AuthService configures Clerk for the optional write guard.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	if s.Config.Auth.Enabled {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}
	return &AuthService{
		server: s,
	}
}

// Enabled reports whether mutating routes require a Clerk session.
func (a *AuthService) Enabled() bool {
	return a.server.Config.Auth.Enabled
}
