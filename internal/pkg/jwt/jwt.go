package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(employeeID string, email string, role employee.Role, sessionID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey        string
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		secretKey:        secretKey,
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken issues an HS256 bearer token. The sid claim binds
// the token to a session row; deleting that row revokes the token.
func (j *JWTService) GenerateAccessToken(employeeID string, email string, role employee.Role, sessionID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"email":       email,
		"role":        string(role),
		"sid":         sessionID,
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
