package entrega

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/cliente"
	"github.com/ReparoFacil/api-ordens/internal/contador"
	"github.com/ReparoFacil/api-ordens/internal/garantia"
	"github.com/ReparoFacil/api-ordens/internal/historico"
	"github.com/ReparoFacil/api-ordens/internal/notificacao"
	"github.com/ReparoFacil/api-ordens/internal/ordem"
	"github.com/ReparoFacil/api-ordens/internal/status"
	"github.com/ReparoFacil/api-ordens/internal/venda"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DiasGarantia é o prazo padrão de garantia contado a partir da entrega.
const DiasGarantia = 90

// Tolerância para comparação de valores monetários em ponto flutuante.
const toleranciaCentavos = 0.005

// Transacionador abre uma transação e executa fn dentro dela. *gorm.DB
// satisfaz a interface; os testes injetam um fake.
type Transacionador interface {
	Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// TermosGarantia é a visão do serviço sobre o repositório de termos.
type TermosGarantia interface {
	BuscarPorID(db *gorm.DB, empresaID, id uint) (*garantia.TermoGarantia, error)
}

// Clientes é a visão do serviço sobre o repositório de clientes.
type Clientes interface {
	BuscarPorID(db *gorm.DB, empresaID, id uint) (*cliente.Cliente, error)
}

// PedidoEntrega é o que o operador informa no balcão.
type PedidoEntrega struct {
	FormaPagamento  string
	ValorRecebido   float64
	TermoGarantiaID *uint
}

// Service executa a liquidação de entrega: marca a ordem como entregue, abre a
// garantia e registra a venda, tudo em uma única transação. Perdeu a corrida
// de versão, recomeça do zero com a ordem recarregada.
type Service struct {
	DB         Transacionador
	Logger     *zap.SugaredLogger
	Ordens     ordem.Repository
	Maquina    *ordem.MaquinaStatus
	Termos     TermosGarantia
	Clientes   Clientes
	Vendas     venda.Repository
	Contadores contador.Repository
}

func NewService(db *gorm.DB, logger *zap.SugaredLogger) *Service {
	ordens := ordem.NewRepository()
	registro := status.NewRepository()
	hist := historico.NewRepository()
	return &Service{
		DB:         db,
		Logger:     logger,
		Ordens:     ordens,
		Maquina:    ordem.NovaMaquina(ordens, registro, hist),
		Termos:     garantia.NewRepository(),
		Clientes:   cliente.NewRepository(),
		Vendas:     venda.NewRepository(),
		Contadores: contador.NewRepository(),
	}
}

// Entregar liquida a ordem. Devolve a ordem atualizada e a transição de
// status para o chamador publicar depois do commit.
func (s *Service) Entregar(ctx context.Context, empresaID, ordemID uint, authCtx auth.Contexto, req PedidoEntrega) (*ordem.OrdemServico, *notificacao.Transicao, error) {
	if !FormaPagamentoValida(req.FormaPagamento) {
		return nil, nil, ErrFormaPagamentoInvalida
	}

	var (
		entregue  *ordem.OrdemServico
		transicao *notificacao.Transicao
	)
	backoff := retry.WithMaxRetries(3, retry.NewConstant(20*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		entregue, transicao = nil, nil
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			o, t, err := s.liquidar(tx, empresaID, ordemID, authCtx, req)
			if err != nil {
				return err
			}
			entregue, transicao = o, t
			return nil
		})
		if errors.Is(err, ordem.ErrVersaoConflito) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	s.Logger.Infow("ordem entregue",
		"empresa", empresaID,
		"ordem", ordemID,
		"numeroOs", entregue.NumeroOS,
		"formaPagamento", req.FormaPagamento,
		"total", entregue.ValorAPagar(),
	)
	return entregue, transicao, nil
}

// dataDeEntrega zera a hora preservando o fuso: a data gravada é o dia civil
// local da entrega. Truncar o instante absoluto mudaria o dia perto da meia
// noite em fusos negativos.
func dataDeEntrega(agora time.Time) time.Time {
	return time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
}

// liquidar roda dentro da transação: toda falha aqui desfaz tudo.
func (s *Service) liquidar(tx *gorm.DB, empresaID, ordemID uint, authCtx auth.Contexto, req PedidoEntrega) (*ordem.OrdemServico, *notificacao.Transicao, error) {
	o, err := s.Ordens.BuscarPorID(tx, empresaID, ordemID)
	if err != nil {
		return nil, nil, err
	}
	if o.Entregue() {
		return nil, nil, ordem.ErrOrdemJaEntregue
	}

	if req.TermoGarantiaID == nil {
		return nil, nil, ErrTermoGarantiaInvalido
	}
	if _, err := s.Termos.BuscarPorID(tx, empresaID, *req.TermoGarantiaID); err != nil {
		if errors.Is(err, garantia.ErrTermoNaoEncontrado) {
			return nil, nil, ErrTermoGarantiaInvalido
		}
		return nil, nil, err
	}

	valorAPagar := o.ValorAPagar()
	if req.ValorRecebido+toleranciaCentavos < valorAPagar {
		faltante := math.Round((valorAPagar-req.ValorRecebido)*100) / 100
		return nil, nil, ErrPagamentoInsuficiente{Faltante: faltante}
	}

	// A máquina grava o status ENTREGUE, força o status técnico e registra o
	// histórico; as datas de entrega e garantia vão numa segunda gravação na
	// mesma transação.
	transicao, err := s.Maquina.AplicarStatus(tx, o, ordem.StatusEntregue, authCtx, "entrega ao cliente")
	if err != nil {
		return nil, nil, err
	}

	hoje := dataDeEntrega(time.Now())
	vencimento := hoje.AddDate(0, 0, DiasGarantia)
	o.DataEntrega = &hoje
	o.VencimentoGarantia = &vencimento
	o.TermoGarantiaID = req.TermoGarantiaID
	if err := s.Ordens.Salvar(tx, o); err != nil {
		return nil, nil, err
	}

	// Ordem sem valor não gera venda; a entrega em si continua valendo.
	if valorAPagar <= 0 {
		return o, transicao, nil
	}

	numero, err := s.Contadores.ProximoNumero(tx, empresaID, contador.Vendas)
	if err != nil {
		return nil, nil, err
	}

	var clienteNome string
	if c, err := s.Clientes.BuscarPorID(tx, empresaID, o.ClienteID); err == nil {
		clienteNome = c.Nome
	}

	v := venda.Venda{
		EmpresaID:      empresaID,
		NumeroVenda:    numero,
		DataVenda:      hoje,
		ClienteID:      o.ClienteID,
		Total:          valorAPagar,
		FormaPagamento: req.FormaPagamento,
		Status:         venda.StatusFinalizada,
		Desconto:       o.Desconto,
		TipoPedido:     venda.TipoPedidoOrdemServico,
		Observacoes:    o.Referencia(clienteNome),
	}
	if err := s.Vendas.Criar(tx, &v); err != nil {
		return nil, nil, err
	}

	return o, transicao, nil
}
