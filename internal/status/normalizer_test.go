package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Aguardando Aprovação", "AGUARDANDO APROVACAO"},
		{"aguardando   aprovacao", "AGUARDANDO APROVACAO"},
		{"  Entregue  ", "ENTREGUE"},
		{"Orçamento\tEnviado", "ORCAMENTO ENVIADO"},
		{"REPARO CONCLUÍDO", "REPARO CONCLUIDO"},
		{"", ""},
		{"   ", ""},
		{"ção çãO", "CAO CAO"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Normalizar(c.entrada), "entrada %q", c.entrada)
	}
}

func TestNormalizarIdempotente(t *testing.T) {
	s := Normalizar("Em Reparo  Urgente")
	assert.Equal(t, s, Normalizar(s))
}
