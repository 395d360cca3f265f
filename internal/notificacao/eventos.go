package notificacao

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tipos de notificação disparados por transições de status.
const (
	TipoOrcamentoEnviado = "orcamento_enviado"
	TipoReparoConcluido  = "reparo_concluido"
)

// Transicao descreve uma mudança de status de ordem para consumidores
// externos. O ID permite deduplicação do lado do consumidor.
type Transicao struct {
	ID          uuid.UUID `json:"id"`
	EmpresaID   uint      `json:"empresaId"`
	OrdemID     uint      `json:"ordemId"`
	NumeroOS    int64     `json:"numeroOs"`
	De          string    `json:"de"`
	Para        string    `json:"para"`
	UsuarioNome string    `json:"usuario"`
	Quando      time.Time `json:"quando"`
}

// NovaTransicao monta o evento de uma mudança de status.
func NovaTransicao(empresaID, ordemID uint, numeroOS int64, de, para, usuario string) Transicao {
	return Transicao{
		ID:          uuid.New(),
		EmpresaID:   empresaID,
		OrdemID:     ordemID,
		NumeroOS:    numeroOS,
		De:          de,
		Para:        para,
		UsuarioNome: usuario,
		Quando:      time.Now(),
	}
}

// Evento é o payload entregue ao serviço de notificações.
type Evento struct {
	EmpresaID uint   `json:"empresa_id"`
	Tipo      string `json:"tipo"`
	OrdemID   uint   `json:"os_id"`
	Mensagem  string `json:"mensagem"`
}

// TipoParaStatus mapeia um status normalizado para o tipo de notificação que
// ele dispara, quando dispara algum.
func TipoParaStatus(statusNormalizado string) (string, bool) {
	switch statusNormalizado {
	case "ORCAMENTO ENVIADO":
		return TipoOrcamentoEnviado, true
	case "REPARO CONCLUIDO":
		return TipoReparoConcluido, true
	}
	return "", false
}

func mensagemDoEvento(tipo string, numeroOS int64) string {
	switch tipo {
	case TipoOrcamentoEnviado:
		return fmt.Sprintf("Orçamento da O.S. #%d enviado ao cliente", numeroOS)
	case TipoReparoConcluido:
		return fmt.Sprintf("Reparo da O.S. #%d concluído", numeroOS)
	}
	return ""
}
