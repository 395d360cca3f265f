package historico

import "gorm.io/gorm"

type Repository interface {
	Registrar(db *gorm.DB, h *StatusHistorico) error
	ListarPorOrdem(db *gorm.DB, empresaID, ordemID uint) ([]StatusHistorico, error)
}

type repositoryImpl struct{}

func NewRepository() Repository { return &repositoryImpl{} }

func (r *repositoryImpl) Registrar(db *gorm.DB, h *StatusHistorico) error {
	return db.Create(h).Error
}

func (r *repositoryImpl) ListarPorOrdem(db *gorm.DB, empresaID, ordemID uint) ([]StatusHistorico, error) {
	var list []StatusHistorico
	err := db.
		Where("empresa_id = ? AND ordem_id = ?", empresaID, ordemID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}
