package contador

import "gorm.io/gorm"

type Repository interface {
	ProximoNumero(db *gorm.DB, empresaID uint, nome string) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository { return &repositoryImpl{} }

// ProximoNumero incrementa e devolve a sequência da empresa. Upsert com
// incremento atômico: duas transações concorrentes nunca recebem o mesmo
// número, o índice único serializa o conflito no banco.
func (r *repositoryImpl) ProximoNumero(db *gorm.DB, empresaID uint, nome string) (int64, error) {
	var valor int64
	err := db.Raw(`
		INSERT INTO contadores (empresa_id, nome, valor)
		VALUES (?, ?, 1)
		ON CONFLICT (empresa_id, nome)
		DO UPDATE SET valor = contadores.valor + 1
		RETURNING valor`, empresaID, nome).Scan(&valor).Error
	if err != nil {
		return 0, err
	}
	return valor, nil
}
