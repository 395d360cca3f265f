package entrega

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResponderErroLogaErroInesperado(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := &Handler{Logger: zap.New(core).Sugar()}

	rec := httptest.NewRecorder()
	h.responderErro(rec, errors.New("conexão recusada"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "erro na rota de entrega", logs.All()[0].Message)
}

func TestResponderErroNaoLogaErroDeValidacao(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := &Handler{Logger: zap.New(core).Sugar()}

	rec := httptest.NewRecorder()
	h.responderErro(rec, ErrFormaPagamentoInvalida)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, logs.Len())

	rec = httptest.NewRecorder()
	h.responderErro(rec, ErrPagamentoInsuficiente{Faltante: 5})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, logs.Len())
}
