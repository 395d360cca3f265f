package status

import (
	"errors"
	"time"
)

// Domínios de status suportados pelo registro.
const (
	DominioOS      = "os"
	DominioTecnico = "tecnico"
)

var (
	// ErrStatusProtegido indica tentativa de alterar ou excluir um status fixo do sistema.
	ErrStatusProtegido = errors.New("status fixo do sistema não pode ser alterado ou excluído")
	// ErrStatusNaoEncontrado indica que o status não existe para a empresa.
	ErrStatusNaoEncontrado = errors.New("status não encontrado")
	// ErrReordenacaoInvalida indica que a lista de ids não cobre exatamente o registro combinado.
	ErrReordenacaoInvalida = errors.New("reordenação deve conter todos os status do domínio, sem repetições")
	// ErrDominioInvalido indica um domínio fora de {os, tecnico}.
	ErrDominioInvalido = errors.New("domínio de status inválido")
)

// StatusDefinicao é uma entrada do registro de status de uma empresa.
// Entradas fixas (EmpresaID nulo, Fixo=true) valem para todas as empresas e
// são imutáveis; entradas personalizadas pertencem à empresa que as criou.
type StatusDefinicao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmpresaID *uint  `gorm:"index" json:"empresaId,omitempty"`
	Nome      string `gorm:"size:80;not null" json:"nome"`
	Cor       string `gorm:"size:9" json:"cor"`
	Ordem     int    `gorm:"not null;default:0" json:"ordem"`
	Dominio   string `gorm:"size:10;not null;index" json:"dominio"`
	Fixo      bool   `gorm:"not null;default:false" json:"fixo"`
}

func (StatusDefinicao) TableName() string { return "status_definicoes" }

// DominioValido informa se o domínio é um dos suportados.
func DominioValido(d string) bool {
	return d == DominioOS || d == DominioTecnico
}
