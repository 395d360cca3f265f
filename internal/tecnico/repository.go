package tecnico

import (
	"errors"

	"gorm.io/gorm"
)

var ErrTecnicoNaoEncontrado = errors.New("técnico não encontrado")

type Repository struct{}

func NewRepository() *Repository { return &Repository{} }

func (r *Repository) BuscarPorID(db *gorm.DB, empresaID, id uint) (*Tecnico, error) {
	var t Tecnico
	err := db.Where("empresa_id = ? AND ativo = true", empresaID).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTecnicoNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
