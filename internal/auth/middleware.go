package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const ctxContexto ctxKey = "contexto"

// Contexto identifica a empresa (tenant) e o usuário de cada requisição.
// Toda operação do núcleo recebe esse valor explicitamente em vez de ler
// estado global de sessão.
type Contexto struct {
	EmpresaID   uint
	UsuarioID   uint
	UsuarioNome string
}

// MiddlewareAutenticacao valida o Bearer token e injeta o Contexto na requisição.
func MiddlewareAutenticacao(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := ParseAndValidate(raw, secret)
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxContexto, Contexto{
				EmpresaID:   claims.EmpresaID,
				UsuarioID:   claims.UsuarioID,
				UsuarioNome: claims.UsuarioNome,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextoDaRequisicao recupera o Contexto injetado pelo middleware.
func ContextoDaRequisicao(r *http.Request) (Contexto, bool) {
	c, ok := r.Context().Value(ctxContexto).(Contexto)
	return c, ok
}
