package ordem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializarLegado(t *testing.T) {
	o := ordemComItens(
		ItemOrdem{ID: 1, Nome: "Tela iPhone 11", Preco: 350, Quantidade: 2, Tipo: ItemProduto},
		ItemOrdem{ID: 2, Nome: "Película", Preco: 25.5, Quantidade: 1, Tipo: ItemProduto},
		ItemOrdem{ID: 3, Nome: "Troca de tela", Preco: 80, Quantidade: 1, Tipo: ItemServico},
	)
	SerializarLegado(o)

	assert.Equal(t, "Tela iPhone 11 (2x) - 350.00\nPelícula (1x) - 25.50", o.Peca)
	assert.Equal(t, "Troca de tela - 80.00", o.Servico)
}

func TestReconciliarLegadoRoundTrip(t *testing.T) {
	original := ordemComItens(
		ItemOrdem{ID: 1, Nome: "Tela iPhone 11", Preco: 350, Quantidade: 2, Tipo: ItemProduto},
		ItemOrdem{ID: 2, Nome: "Troca de tela", Preco: 80, Quantidade: 1, Tipo: ItemServico},
	)
	totalOriginal := original.Totais().Geral()
	SerializarLegado(original)

	// Simula uma carga antiga: só o texto sobreviveu.
	recarregada := &OrdemServico{ID: 1, Peca: original.Peca, Servico: original.Servico}
	ReconciliarLegado(recarregada)

	require.Len(t, recarregada.Itens, 2)
	assert.Equal(t, "Tela iPhone 11", recarregada.Itens[0].Nome)
	assert.Equal(t, 2, recarregada.Itens[0].Quantidade)
	assert.Equal(t, ItemProduto, recarregada.Itens[0].Tipo)
	assert.Equal(t, "Troca de tela", recarregada.Itens[1].Nome)
	assert.Equal(t, ItemServico, recarregada.Itens[1].Tipo)
	assert.InDelta(t, totalOriginal, recarregada.Totais().Geral(), 0.001)
}

func TestReconciliarLegadoVariantesDeFormato(t *testing.T) {
	o := &OrdemServico{
		Peca:    "Bateria (1x) - R$ 120,50",
		Servico: "Diagnóstico - Valor: R$ 30,00",
	}
	ReconciliarLegado(o)

	require.Len(t, o.Itens, 2)
	assert.Equal(t, 120.5, o.Itens[0].Preco)
	assert.Equal(t, "Diagnóstico", o.Itens[1].Nome)
	assert.Equal(t, 30.0, o.Itens[1].Preco)
}

func TestReconciliarLegadoFallbackTextoLivre(t *testing.T) {
	// Texto que não casa com nenhum formato vira um único item com o
	// agregado legado, preservando o total.
	texto := strings.Repeat("troca de tela com limpeza interna ", 3)
	o := &OrdemServico{Servico: texto, ValorServico: 150, QtdServico: 1}
	ReconciliarLegado(o)

	require.Len(t, o.Itens, 1)
	assert.Equal(t, 150.0, o.Itens[0].Preco)
	assert.Equal(t, 1, o.Itens[0].Quantidade)
	assert.LessOrEqual(t, len([]rune(o.Itens[0].Nome)), legadoNomeMax+1)
	assert.True(t, strings.HasSuffix(o.Itens[0].Nome, "…"))
	assert.InDelta(t, 150.0, o.Totais().Geral(), 0.001)
}

func TestReconciliarLegadoValorSemTexto(t *testing.T) {
	o := &OrdemServico{ValorPeca: 200, QtdPeca: 2}
	ReconciliarLegado(o)

	require.Len(t, o.Itens, 1)
	assert.Equal(t, ItemProduto, o.Itens[0].Tipo)
	assert.Equal(t, 200.0, o.Itens[0].Preco)
	assert.Equal(t, 2, o.Itens[0].Quantidade)
	assert.InDelta(t, 400.0, o.Totais().Geral(), 0.001)
}

func TestReconciliarLegadoNaoTocaOrdemComItens(t *testing.T) {
	o := ordemComItens(
		ItemOrdem{ID: 1, Nome: "Tela", Preco: 100, Quantidade: 1, Tipo: ItemProduto},
	)
	o.Peca = "lixo antigo qualquer"
	ReconciliarLegado(o)
	require.Len(t, o.Itens, 1)
	assert.Equal(t, "Tela", o.Itens[0].Nome)
}

func TestReconciliarLegadoOrdemVazia(t *testing.T) {
	o := &OrdemServico{}
	ReconciliarLegado(o)
	assert.Empty(t, o.Itens)
}

func TestTruncarNomeLegado(t *testing.T) {
	curto := "Troca de tela"
	assert.Equal(t, curto, truncarNomeLegado(curto))

	longo := strings.Repeat("ç", legadoNomeMax+10)
	truncado := truncarNomeLegado(longo)
	assert.Equal(t, legadoNomeMax+1, len([]rune(truncado)))
	assert.True(t, strings.HasSuffix(truncado, "…"))
}
