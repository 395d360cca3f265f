package cliente

import (
	"errors"

	"gorm.io/gorm"
)

var ErrClienteNaoEncontrado = errors.New("cliente não encontrado")

type Repository struct{}

func NewRepository() *Repository { return &Repository{} }

func (r *Repository) BuscarPorID(db *gorm.DB, empresaID, id uint) (*Cliente, error) {
	var c Cliente
	err := db.Where("empresa_id = ?", empresaID).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClienteNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
