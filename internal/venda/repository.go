package venda

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, v *Venda) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Venda, error)
}

type repositoryImpl struct{}

func NewRepository() Repository { return &repositoryImpl{} }

func (r *repositoryImpl) Criar(db *gorm.DB, v *Venda) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Venda, error) {
	var list []Venda
	err := db.Where("empresa_id = ?", empresaID).
		Order("numero_venda DESC").
		Find(&list).Error
	return list, err
}
