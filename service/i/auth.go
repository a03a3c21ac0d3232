package i

import (
	dmn "github.com/amazing-mazes/maze-api/domain"
)

// Authenticator defines registration and sign-in for API users.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
