package catalogo

import (
	"errors"

	"gorm.io/gorm"
)

var ErrItemNaoEncontrado = errors.New("item de catálogo não encontrado")

type Repository struct{}

func NewRepository() *Repository { return &Repository{} }

func (r *Repository) Listar(db *gorm.DB, empresaID uint, tipo string) ([]ProdutoServico, error) {
	var list []ProdutoServico
	q := db.Where("empresa_id = ?", empresaID)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	err := q.Order("nome").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(db *gorm.DB, empresaID, id uint) (*ProdutoServico, error) {
	var p ProdutoServico
	err := db.Where("empresa_id = ?", empresaID).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
