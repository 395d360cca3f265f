package catalogo

import "time"

// Tipos de item do catálogo.
const (
	TipoProduto = "produto"
	TipoServico = "servico"
)

// ProdutoServico é um item selecionável do catálogo da empresa, fonte dos
// itens estruturados da ordem. O CRUD do catálogo fica no painel.
type ProdutoServico struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EmpresaID uint    `gorm:"not null;index" json:"empresaId"`
	Nome      string  `gorm:"size:255;not null" json:"nome"`
	Preco     float64 `gorm:"not null;default:0" json:"preco"`
	Tipo      string  `gorm:"size:10;not null" json:"tipo"`
}

func (ProdutoServico) TableName() string { return "produtos_servicos" }
