package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const segredoTeste = "segredo-de-teste"

func TestParseAndValidate(t *testing.T) {
	tok, err := GerarToken(5, 2, "Ana", segredoTeste)
	require.NoError(t, err)

	claims, err := ParseAndValidate(tok, segredoTeste)
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UsuarioID)
	assert.Equal(t, uint(2), claims.EmpresaID)
	assert.Equal(t, "Ana", claims.UsuarioNome)
}

func TestParseAndValidateSegredoErrado(t *testing.T) {
	tok, err := GerarToken(5, 2, "Ana", segredoTeste)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok, "outro-segredo")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestParseAndValidateSemEmpresa(t *testing.T) {
	tok, err := GerarToken(5, 0, "Ana", segredoTeste)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok, segredoTeste)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestMiddlewareInjetaContexto(t *testing.T) {
	tok, err := GerarToken(5, 2, "Ana", segredoTeste)
	require.NoError(t, err)

	var recebido Contexto
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := ContextoDaRequisicao(r)
		require.True(t, ok)
		recebido = ctx
	})

	req := httptest.NewRequest(http.MethodGet, "/ordens", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(segredoTeste)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Contexto{EmpresaID: 2, UsuarioID: 5, UsuarioNome: "Ana"}, recebido)
}

func TestMiddlewareSemToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria rodar sem token")
	})
	req := httptest.NewRequest(http.MethodGet, "/ordens", nil)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(segredoTeste)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareTokenInvalido(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria rodar com token inválido")
	})
	req := httptest.NewRequest(http.MethodGet, "/ordens", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(segredoTeste)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
