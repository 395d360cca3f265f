package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token emitido pelo painel SaaS. Esta API apenas valida;
// a emissão acontece no serviço de autenticação.
type Claims struct {
	UsuarioID   uint   `json:"usuarioId"`
	UsuarioNome string `json:"usuarioNome"`
	EmpresaID   uint   `json:"empresaId"`
	jwt.RegisteredClaims
}

var ErrTokenInvalido = errors.New("token inválido")

// ParseAndValidate valida assinatura e expiração do token HS256.
func ParseAndValidate(tokenStr, secret string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalido
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.EmpresaID == 0 {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}

// GerarToken existe para testes e ferramentas internas.
func GerarToken(usuarioID, empresaID uint, nome, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UsuarioID:   usuarioID,
		UsuarioNome: nome,
		EmpresaID:   empresaID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
