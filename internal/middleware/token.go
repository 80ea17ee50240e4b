package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"workspace-chat/internal/model"
)

var errInvalidSessionToken = errors.New("invalid session token")

type sessionClaims struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token,omitempty"`
}

// EncodeSessionToken signs session claims into a compact token. The token is
// issued by the auth collaborator in production; this exists for tests and
// local tooling.
func EncodeSessionToken(sc model.Scope, secret string) string {
	payload, _ := json.Marshal(sessionClaims{
		UserID:      sc.UserID,
		Username:    sc.Username,
		AccessToken: sc.AccessToken,
	})
	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + sign(body, secret)
}

// decodeSessionToken verifies the signature and recovers the scope.
func decodeSessionToken(token, secret string) (model.Scope, error) {
	body, sig, ok := strings.Cut(token, ".")
	if !ok || body == "" {
		return model.Scope{}, errInvalidSessionToken
	}
	if !hmac.Equal([]byte(sig), []byte(sign(body, secret))) {
		return model.Scope{}, errInvalidSessionToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return model.Scope{}, errInvalidSessionToken
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return model.Scope{}, errInvalidSessionToken
	}
	if claims.UserID == "" {
		return model.Scope{}, errInvalidSessionToken
	}

	return model.Scope{
		UserID:      claims.UserID,
		Username:    claims.Username,
		AccessToken: claims.AccessToken,
	}, nil
}

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
