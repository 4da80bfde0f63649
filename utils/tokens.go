package utils

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

const sessionTTL = 12 * time.Hour

// AccessToken is the explicit session object: who is acting and with which
// role, created at login and revoked at logout. Nothing else is ambient.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateSessionToken signs an access token for an admin or a regular user.
func CreateSessionToken(id, name, role string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), sessionTTL)

	claims := AccessToken{ID: id, Name: name, Role: role}
	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// RevokeSessionToken denylists the raw token until it would have expired.
// Without Redis revocation degrades to client-side logout only.
func RevokeSessionToken(token string) {
	if storage.Redis == nil {
		return
	}
	if err := storage.Redis.Set(bgContext, "revoked:"+token, "true", sessionTTL).Err(); err != nil {
		log.Println("token revocation failed:", err)
	}
}

// SessionRevoked reports whether the raw token was revoked by a logout.
func SessionRevoked(token string) bool {
	if storage.Redis == nil {
		return false
	}
	revoked, err := storage.Redis.Get(bgContext, "revoked:"+token).Result()
	return err == nil && revoked == "true"
}

// CurrentSession returns the verified claims for the request, if any.
func CurrentSession(ctx iris.Context) *AccessToken {
	if tok := jwt.Get(ctx); tok != nil {
		if claims, ok := tok.(*AccessToken); ok {
			return claims
		}
	}
	return nil
}
