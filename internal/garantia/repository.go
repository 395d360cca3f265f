package garantia

import (
	"errors"

	"gorm.io/gorm"
)

var ErrTermoNaoEncontrado = errors.New("termo de garantia não encontrado")

type Repository struct{}

func NewRepository() *Repository { return &Repository{} }

func (r *Repository) Listar(db *gorm.DB, empresaID uint) ([]TermoGarantia, error) {
	var list []TermoGarantia
	err := db.Where("empresa_id = ?", empresaID).Order("nome").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(db *gorm.DB, empresaID, id uint) (*TermoGarantia, error) {
	var t TermoGarantia
	err := db.Where("empresa_id = ?", empresaID).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTermoNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
