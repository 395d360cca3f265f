package contador

// Contador é a sequência numérica por empresa (número de O.S., número de
// venda). O valor só avança por incremento atômico dentro da transação que
// consome o número: um rollback devolve o incremento junto.
type Contador struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EmpresaID uint   `gorm:"not null;uniqueIndex:idx_contadores_empresa_nome" json:"empresaId"`
	Nome      string `gorm:"size:30;not null;uniqueIndex:idx_contadores_empresa_nome" json:"nome"`
	Valor     int64  `gorm:"not null;default:0" json:"valor"`
}

func (Contador) TableName() string { return "contadores" }

// Nomes de sequência usados pelo núcleo.
const (
	Vendas = "vendas"
	Ordens = "ordens"
)
