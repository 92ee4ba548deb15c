package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ratel-online/uno-server/consts"
)

// Claims identify a player. The subject holds the player id.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type Identity struct {
	ID   int64
	Name string
}

// Verifier checks HS256 tokens issued by the account service.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

func (v *Verifier) Verify(token string) (Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(v.now))
	if err != nil {
		return Identity{}, fmt.Errorf("%w%v", consts.ErrorsAuthFail, err)
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Identity{}, consts.ErrorsAuthFail
	}
	if claims.Name == "" {
		claims.Name = fmt.Sprintf("player-%d", id)
	}
	return Identity{ID: id, Name: claims.Name}, nil
}

// Issue signs a token for the player. The server only verifies tokens; this
// is used by tooling and tests.
func (v *Verifier) Issue(identity Identity, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Name: identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
