package cliente

import "time"

// Cliente é uma referência somente-leitura para o núcleo de ordens;
// o CRUD de clientes vive no painel administrativo.
type Cliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EmpresaID uint   `gorm:"not null;index" json:"empresaId"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Telefone  string `gorm:"size:30" json:"telefone"`
	Email     string `gorm:"size:255" json:"email"`
}

func (Cliente) TableName() string { return "clientes" }
