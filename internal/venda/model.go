package venda

import "time"

// StatusFinalizada é o único status com que uma venda nasce neste núcleo.
const StatusFinalizada = "finalizada"

// TipoPedidoOrdemServico marca vendas originadas da entrega de uma O.S.
const TipoPedidoOrdemServico = "Ordem de Serviço"

// Venda é o registro financeiro criado na entrega de uma ordem. A venda
// referencia a ordem pelo texto de observações; a ordem não conhece a venda.
type Venda struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EmpresaID      uint      `gorm:"not null;uniqueIndex:idx_vendas_empresa_numero" json:"empresaId"`
	NumeroVenda    int64     `gorm:"not null;uniqueIndex:idx_vendas_empresa_numero" json:"numeroVenda"`
	DataVenda      time.Time `gorm:"not null" json:"dataVenda"`
	ClienteID      uint      `gorm:"index" json:"clienteId"`
	Total          float64   `gorm:"not null;default:0" json:"total"`
	FormaPagamento string    `gorm:"size:30;not null" json:"formaPagamento"`
	Status         string    `gorm:"size:30;not null" json:"status"`
	Desconto       float64   `gorm:"not null;default:0" json:"desconto"`
	Acrescimo      float64   `gorm:"not null;default:0" json:"acrescimo"`
	TipoPedido     string    `gorm:"size:40" json:"tipoPedido"`
	Observacoes    string    `gorm:"size:255" json:"observacoes"`
}

func (Venda) TableName() string { return "vendas" }
