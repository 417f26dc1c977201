package auth

import "time"

type Strategy interface {
	IssueToken(adminID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
