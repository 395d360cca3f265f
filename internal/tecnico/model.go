package tecnico

// Tecnico é a referência usada para validar atribuições de ordem.
// O cadastro de usuários/técnicos é mantido fora deste núcleo.
type Tecnico struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EmpresaID uint   `gorm:"not null;index" json:"empresaId"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Ativo     bool   `gorm:"not null;default:true" json:"ativo"`
}

func (Tecnico) TableName() string { return "tecnicos" }
