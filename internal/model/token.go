package model

// TokenManager signs and verifies identity tokens carrying the token view.
type TokenManager interface {
	Generate(view TokenView) (string, error)
	Parse(token string) (TokenView, error)
}
