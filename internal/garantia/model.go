package garantia

import "time"

// TermoGarantia é o texto reutilizável de condições de cobertura referenciado
// pela ordem no momento da entrega.
type TermoGarantia struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EmpresaID uint   `gorm:"not null;index" json:"empresaId"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Conteudo  string `gorm:"type:text" json:"conteudo"`
}

func (TermoGarantia) TableName() string { return "termos_garantia" }
