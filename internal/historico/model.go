package historico

import "time"

// StatusHistorico é o registro imutável de uma transição de status da ordem.
// Entradas nunca são alteradas ou removidas pelo núcleo.
type StatusHistorico struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	OrdemID               uint   `gorm:"not null;index" json:"ordemId"`
	EmpresaID             uint   `gorm:"not null;index" json:"empresaId"`
	StatusAnterior        string `gorm:"size:80" json:"statusAnterior"`
	StatusNovo            string `gorm:"size:80;not null" json:"statusNovo"`
	StatusTecnicoAnterior string `gorm:"size:80" json:"statusTecnicoAnterior"`
	StatusTecnicoNovo     string `gorm:"size:80" json:"statusTecnicoNovo"`
	UsuarioID             uint   `json:"usuarioId"`
	UsuarioNome           string `gorm:"size:255" json:"usuarioNome"`
	Motivo                string `gorm:"size:255" json:"motivo,omitempty"`
}

func (StatusHistorico) TableName() string { return "status_historico" }
