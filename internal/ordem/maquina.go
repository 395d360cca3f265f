package ordem

import (
	"errors"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/historico"
	"github.com/ReparoFacil/api-ordens/internal/notificacao"
	"github.com/ReparoFacil/api-ordens/internal/status"
	"gorm.io/gorm"
)

// RegistroStatus é a visão da máquina sobre o registro de status da empresa.
type RegistroStatus interface {
	BuscarNoDominio(db *gorm.DB, dominio string, empresaID uint, nome string) (*status.StatusDefinicao, error)
}

// MaquinaStatus aplica mudanças de status mantendo o status técnico coerente
// e o histórico completo. É o único caminho que deriva statusTecnico a partir
// do status da ordem.
type MaquinaStatus struct {
	Ordens    Repository
	Registro  RegistroStatus
	Historico historico.Repository
}

func NovaMaquina(ordens Repository, registro RegistroStatus, hist historico.Repository) *MaquinaStatus {
	return &MaquinaStatus{Ordens: ordens, Registro: registro, Historico: hist}
}

// Tabela de transições: status da ordem (normalizado) → status técnico
// forçado. Qualquer outro valor preserva o status técnico atual, inclusive
// ajustes manuais feitos pelo técnico.
func statusTecnicoForcado(normalizado string) (string, bool) {
	switch normalizado {
	case "APROVADO":
		return "APROVADO", true
	case "ENTREGUE":
		return StatusTecnicoFinalizada, true
	case "AGUARDANDO APROVACAO":
		return "AGUARDANDO APROVAÇÃO", true
	}
	return "", false
}

// AplicarStatus valida o novo status contra o registro da empresa, deriva o
// status técnico, persiste a ordem com checagem de versão e registra o
// histórico — tudo contra o db recebido, que pode ser uma transação. A
// transição resultante é devolvida para o chamador publicar após o commit.
func (m *MaquinaStatus) AplicarStatus(db *gorm.DB, o *OrdemServico, novoStatus string, ctx auth.Contexto, motivo string) (*notificacao.Transicao, error) {
	if o.Entregue() {
		return nil, ErrOrdemJaEntregue
	}

	def, err := m.Registro.BuscarNoDominio(db, status.DominioOS, o.EmpresaID, novoStatus)
	if errors.Is(err, status.ErrStatusNaoEncontrado) {
		return nil, ErrStatusDesconhecido
	}
	if err != nil {
		return nil, err
	}

	anterior := o.Status
	tecnicoAnterior := o.StatusTecnico

	// Persiste a grafia do registro, não a do chamador.
	o.Status = def.Nome
	if forcado, ok := statusTecnicoForcado(status.Normalizar(def.Nome)); ok {
		o.StatusTecnico = forcado
	}

	if err := m.Ordens.Salvar(db, o); err != nil {
		return nil, err
	}

	if err := m.Historico.Registrar(db, &historico.StatusHistorico{
		OrdemID:               o.ID,
		EmpresaID:             o.EmpresaID,
		StatusAnterior:        anterior,
		StatusNovo:            o.Status,
		StatusTecnicoAnterior: tecnicoAnterior,
		StatusTecnicoNovo:     o.StatusTecnico,
		UsuarioID:             ctx.UsuarioID,
		UsuarioNome:           ctx.UsuarioNome,
		Motivo:                motivo,
	}); err != nil {
		return nil, err
	}

	t := notificacao.NovaTransicao(o.EmpresaID, o.ID, o.NumeroOS, anterior, o.Status, ctx.UsuarioNome)
	return &t, nil
}

// AplicarStatusTecnico registra um ajuste manual do status técnico,
// independente do status da ordem. Não força nada nem emite evento; o ajuste
// manual só é sobrescrito pelas transições da tabela acima.
func (m *MaquinaStatus) AplicarStatusTecnico(db *gorm.DB, o *OrdemServico, novoStatusTecnico string, ctx auth.Contexto, motivo string) error {
	if o.Entregue() {
		return ErrOrdemJaEntregue
	}

	def, err := m.Registro.BuscarNoDominio(db, status.DominioTecnico, o.EmpresaID, novoStatusTecnico)
	if errors.Is(err, status.ErrStatusNaoEncontrado) {
		return ErrStatusDesconhecido
	}
	if err != nil {
		return err
	}

	anterior := o.StatusTecnico
	o.StatusTecnico = def.Nome

	if err := m.Ordens.Salvar(db, o); err != nil {
		return err
	}

	return m.Historico.Registrar(db, &historico.StatusHistorico{
		OrdemID:               o.ID,
		EmpresaID:             o.EmpresaID,
		StatusAnterior:        o.Status,
		StatusNovo:            o.Status,
		StatusTecnicoAnterior: anterior,
		StatusTecnicoNovo:     def.Nome,
		UsuarioID:             ctx.UsuarioID,
		UsuarioNome:           ctx.UsuarioNome,
		Motivo:                motivo,
	})
}
