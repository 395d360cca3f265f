package entrega

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/cliente"
	"github.com/ReparoFacil/api-ordens/internal/garantia"
	"github.com/ReparoFacil/api-ordens/internal/historico"
	"github.com/ReparoFacil/api-ordens/internal/ordem"
	"github.com/ReparoFacil/api-ordens/internal/status"
	"github.com/ReparoFacil/api-ordens/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Transacionador de teste: executa a função direto, sem banco. Os stubs de
// repositório ignoram o *gorm.DB recebido.
type txFake struct{}

func (txFake) Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fn(nil)
}

type ordensFake struct {
	master       *ordem.OrdemServico
	falhasVersao int
	leituras     int
}

func (f *ordensFake) Criar(db *gorm.DB, o *ordem.OrdemServico) error { return nil }

func (f *ordensFake) BuscarPorID(db *gorm.DB, empresaID, id uint) (*ordem.OrdemServico, error) {
	if f.master == nil || f.master.ID != id || f.master.EmpresaID != empresaID {
		return nil, ordem.ErrOrdemNaoEncontrada
	}
	f.leituras++
	copia := *f.master
	copia.Itens = append([]ordem.ItemOrdem(nil), f.master.Itens...)
	return &copia, nil
}

func (f *ordensFake) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]ordem.OrdemServico, error) {
	return nil, nil
}

func (f *ordensFake) Salvar(db *gorm.DB, o *ordem.OrdemServico) error {
	if f.falhasVersao > 0 {
		f.falhasVersao--
		return ordem.ErrVersaoConflito
	}
	copia := *o
	copia.Itens = append([]ordem.ItemOrdem(nil), o.Itens...)
	f.master = &copia
	return nil
}

// registroFake aceita qualquer nome e devolve a grafia recebida como
// canônica.
type registroFake struct{}

func (registroFake) BuscarNoDominio(db *gorm.DB, dominio string, empresaID uint, nome string) (*status.StatusDefinicao, error) {
	return &status.StatusDefinicao{Nome: nome, Dominio: dominio}, nil
}

type historicoFake struct {
	registros []historico.StatusHistorico
}

func (f *historicoFake) Registrar(db *gorm.DB, h *historico.StatusHistorico) error {
	f.registros = append(f.registros, *h)
	return nil
}

func (f *historicoFake) ListarPorOrdem(db *gorm.DB, empresaID, ordemID uint) ([]historico.StatusHistorico, error) {
	return f.registros, nil
}

type termosFake struct {
	existentes map[uint]bool
}

func (f *termosFake) BuscarPorID(db *gorm.DB, empresaID, id uint) (*garantia.TermoGarantia, error) {
	if !f.existentes[id] {
		return nil, garantia.ErrTermoNaoEncontrado
	}
	return &garantia.TermoGarantia{ID: id, EmpresaID: empresaID}, nil
}

type clientesFake struct{}

func (clientesFake) BuscarPorID(db *gorm.DB, empresaID, id uint) (*cliente.Cliente, error) {
	return &cliente.Cliente{ID: id, EmpresaID: empresaID, Nome: "Maria"}, nil
}

type vendasFake struct {
	criadas []venda.Venda
}

func (f *vendasFake) Criar(db *gorm.DB, v *venda.Venda) error {
	f.criadas = append(f.criadas, *v)
	return nil
}

func (f *vendasFake) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]venda.Venda, error) {
	return f.criadas, nil
}

type contadoresFake struct {
	valores map[string]int64
}

func (f *contadoresFake) ProximoNumero(db *gorm.DB, empresaID uint, nome string) (int64, error) {
	if f.valores == nil {
		f.valores = map[string]int64{}
	}
	f.valores[nome]++
	return f.valores[nome], nil
}

func ordemParaEntrega() *ordem.OrdemServico {
	o := &ordem.OrdemServico{
		ID: 1, EmpresaID: 1, NumeroOS: 10, ClienteID: 3,
		Status: "Reparo concluído", StatusTecnico: "Em andamento", Versao: 2,
		Itens: []ordem.ItemOrdem{
			{ID: 1, OrdemID: 1, Nome: "Tela", Preco: 100, Quantidade: 1, Tipo: ordem.ItemProduto},
			{ID: 2, OrdemID: 1, Nome: "Troca de tela", Preco: 50, Quantidade: 1, Tipo: ordem.ItemServico},
		},
	}
	o.RecalcularAgregados()
	return o
}

func novoServicoDeTeste(o *ordem.OrdemServico) (*Service, *ordensFake, *vendasFake, *historicoFake) {
	ordens := &ordensFake{master: o}
	vendas := &vendasFake{}
	hist := &historicoFake{}
	s := &Service{
		DB:         txFake{},
		Logger:     zap.NewNop().Sugar(),
		Ordens:     ordens,
		Maquina:    ordem.NovaMaquina(ordens, registroFake{}, hist),
		Termos:     &termosFake{existentes: map[uint]bool{7: true}},
		Clientes:   clientesFake{},
		Vendas:     vendas,
		Contadores: &contadoresFake{},
	}
	return s, ordens, vendas, hist
}

var ctxEntrega = auth.Contexto{EmpresaID: 1, UsuarioID: 5, UsuarioNome: "Ana"}

func pedidoValido(valor float64) PedidoEntrega {
	termo := uint(7)
	return PedidoEntrega{
		FormaPagamento:  PagamentoPix,
		ValorRecebido:   valor,
		TermoGarantiaID: &termo,
	}
}

func TestEntregarLiquidaOrdemECriaVenda(t *testing.T) {
	s, ordens, vendas, hist := novoServicoDeTeste(ordemParaEntrega())

	o, tr, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(150))
	require.NoError(t, err)

	require.NotNil(t, o.DataEntrega)
	require.NotNil(t, o.VencimentoGarantia)
	assert.Equal(t, o.DataEntrega.AddDate(0, 0, DiasGarantia), *o.VencimentoGarantia)
	assert.Equal(t, ordem.StatusEntregue, o.Status)
	assert.Equal(t, ordem.StatusTecnicoFinalizada, o.StatusTecnico)
	require.NotNil(t, o.TermoGarantiaID)
	assert.Equal(t, uint(7), *o.TermoGarantiaID)
	assert.True(t, ordens.master.Entregue())

	require.NotNil(t, tr)
	assert.Equal(t, ordem.StatusEntregue, tr.Para)

	require.Len(t, vendas.criadas, 1)
	v := vendas.criadas[0]
	assert.Equal(t, int64(1), v.NumeroVenda)
	assert.Equal(t, 150.0, v.Total)
	assert.Equal(t, PagamentoPix, v.FormaPagamento)
	assert.Equal(t, venda.StatusFinalizada, v.Status)
	assert.Equal(t, venda.TipoPedidoOrdemServico, v.TipoPedido)
	assert.Equal(t, "O.S. #10 - Maria", v.Observacoes)
	assert.Equal(t, uint(3), v.ClienteID)

	require.Len(t, hist.registros, 1)
	assert.Equal(t, ordem.StatusEntregue, hist.registros[0].StatusNovo)
}

func TestEntregarComDesconto(t *testing.T) {
	o := ordemParaEntrega()
	o.Desconto = 20
	o.RecalcularAgregados()
	s, _, vendas, _ := novoServicoDeTeste(o)

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(130))
	require.NoError(t, err)

	require.Len(t, vendas.criadas, 1)
	assert.Equal(t, 130.0, vendas.criadas[0].Total)
	assert.Equal(t, 20.0, vendas.criadas[0].Desconto)
}

func TestEntregarPagamentoInsuficiente(t *testing.T) {
	s, ordens, vendas, _ := novoServicoDeTeste(ordemParaEntrega())

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(149.99))
	var insuficiente ErrPagamentoInsuficiente
	require.ErrorAs(t, err, &insuficiente)
	assert.InDelta(t, 0.01, insuficiente.Faltante, 0.001)
	assert.Empty(t, vendas.criadas)
	assert.False(t, ordens.master.Entregue())
}

func TestEntregarToleraDiferencaDeCentavos(t *testing.T) {
	s, _, vendas, _ := novoServicoDeTeste(ordemParaEntrega())

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(149.996))
	require.NoError(t, err)
	require.Len(t, vendas.criadas, 1)
}

func TestEntregarFormaPagamentoInvalida(t *testing.T) {
	s, ordens, _, _ := novoServicoDeTeste(ordemParaEntrega())
	pedido := pedidoValido(150)
	pedido.FormaPagamento = "cheque"

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedido)
	assert.ErrorIs(t, err, ErrFormaPagamentoInvalida)
	assert.Zero(t, ordens.leituras)
}

func TestEntregarSemTermoGarantia(t *testing.T) {
	s, ordens, _, _ := novoServicoDeTeste(ordemParaEntrega())
	pedido := pedidoValido(150)
	pedido.TermoGarantiaID = nil

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedido)
	assert.ErrorIs(t, err, ErrTermoGarantiaInvalido)
	assert.False(t, ordens.master.Entregue())
}

func TestEntregarTermoGarantiaInexistente(t *testing.T) {
	s, ordens, _, _ := novoServicoDeTeste(ordemParaEntrega())
	termo := uint(999)
	pedido := pedidoValido(150)
	pedido.TermoGarantiaID = &termo

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedido)
	assert.ErrorIs(t, err, ErrTermoGarantiaInvalido)
	assert.False(t, ordens.master.Entregue())
}

func TestEntregarOrdemJaEntregue(t *testing.T) {
	o := ordemParaEntrega()
	hoje := time.Now()
	o.DataEntrega = &hoje
	s, _, vendas, _ := novoServicoDeTeste(o)

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(150))
	assert.ErrorIs(t, err, ordem.ErrOrdemJaEntregue)
	assert.Empty(t, vendas.criadas)
}

func TestEntregarOrdemSemValorNaoGeraVenda(t *testing.T) {
	o := &ordem.OrdemServico{ID: 1, EmpresaID: 1, NumeroOS: 11, ClienteID: 3, Status: "Aberta", Versao: 1}
	s, ordens, vendas, _ := novoServicoDeTeste(o)

	entregue, tr, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(0))
	require.NoError(t, err)
	assert.True(t, entregue.Entregue())
	assert.True(t, ordens.master.Entregue())
	assert.Empty(t, vendas.criadas)
	require.NotNil(t, tr)
}

func TestEntregarRetentaConflitoDeVersao(t *testing.T) {
	s, ordens, vendas, _ := novoServicoDeTeste(ordemParaEntrega())
	ordens.falhasVersao = 1

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(150))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ordens.leituras, 2)
	require.Len(t, vendas.criadas, 1)
	assert.True(t, ordens.master.Entregue())
}

func TestEntregarOrdemComStatusEntregueMasSemData(t *testing.T) {
	// Texto de status já diz ENTREGUE mas a liquidação nunca rodou: a data de
	// entrega é a fonte da verdade, então a entrega ainda é permitida.
	o := ordemParaEntrega()
	o.Status = ordem.StatusEntregue
	s, _, vendas, _ := novoServicoDeTeste(o)

	entregue, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(150))
	require.NoError(t, err)
	assert.True(t, entregue.Entregue())
	require.Len(t, vendas.criadas, 1)
}

func TestEntregarNumerosDeVendaSequenciais(t *testing.T) {
	s, ordens, vendas, _ := novoServicoDeTeste(ordemParaEntrega())

	_, _, err := s.Entregar(context.Background(), 1, 1, ctxEntrega, pedidoValido(150))
	require.NoError(t, err)

	segunda := ordemParaEntrega()
	segunda.ID = 2
	segunda.NumeroOS = 11
	ordens.master = segunda

	_, _, err = s.Entregar(context.Background(), 1, 2, ctxEntrega, pedidoValido(150))
	require.NoError(t, err)

	require.Len(t, vendas.criadas, 2)
	assert.Equal(t, int64(1), vendas.criadas[0].NumeroVenda)
	assert.Equal(t, int64(2), vendas.criadas[1].NumeroVenda)
}

func TestDataDeEntregaUsaDiaCivilLocal(t *testing.T) {
	// 23h30 em um fuso -03: o dia civil local ainda é 10, mesmo que em UTC já
	// seja dia 11.
	fuso := time.FixedZone("-03", -3*60*60)
	agora := time.Date(2026, 3, 10, 23, 30, 0, 0, fuso)

	data := dataDeEntrega(agora)
	assert.Equal(t, 10, data.Day())
	assert.Equal(t, time.March, data.Month())
	assert.Zero(t, data.Hour())
	assert.Equal(t, fuso, data.Location())

	assert.Equal(t, 8, data.AddDate(0, 0, DiasGarantia).Day())
	assert.Equal(t, time.June, data.AddDate(0, 0, DiasGarantia).Month())
}

func TestEntregarOrdemInexistente(t *testing.T) {
	s, _, _, _ := novoServicoDeTeste(ordemParaEntrega())

	_, _, err := s.Entregar(context.Background(), 1, 42, ctxEntrega, pedidoValido(150))
	assert.ErrorIs(t, err, ordem.ErrOrdemNaoEncontrada)
}
