package middleware

import (
	"workspace-chat/config"
	"workspace-chat/pkg/log"
)

type Middleware struct {
	l             log.Logger
	sessionSecret string
	signInPath    string
}

func New(l log.Logger, sessionCfg config.SessionConfig) Middleware {
	return Middleware{
		l:             l,
		sessionSecret: sessionCfg.Secret,
		signInPath:    sessionCfg.SignInPath,
	}
}
