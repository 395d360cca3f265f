package status

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB, dominio string, empresaID uint) ([]StatusDefinicao, error)
	Criar(db *gorm.DB, s *StatusDefinicao) error
	Atualizar(db *gorm.DB, empresaID, id uint, nome, cor string) (*StatusDefinicao, error)
	Deletar(db *gorm.DB, empresaID, id uint) error
	Reordenar(db *gorm.DB, dominio string, empresaID uint, ids []uint) error
	// BuscarNoDominio localiza um status pelo nome (comparado de forma
	// normalizada) no registro da empresa e devolve a entrada com a grafia
	// canônica; ErrStatusNaoEncontrado quando o nome não pertence ao domínio.
	BuscarNoDominio(db *gorm.DB, dominio string, empresaID uint, nome string) (*StatusDefinicao, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, dominio string, empresaID uint) ([]StatusDefinicao, error) {
	if !DominioValido(dominio) {
		return nil, ErrDominioInvalido
	}
	var list []StatusDefinicao
	err := db.
		Where("dominio = ?", dominio).
		Where("fixo = true OR empresa_id = ?", empresaID).
		Order("ordem, id").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, s *StatusDefinicao) error {
	if !DominioValido(s.Dominio) {
		return ErrDominioInvalido
	}
	// Somente entradas personalizadas nascem por aqui.
	s.Fixo = false
	var max struct{ Max int }
	if err := db.Model(&StatusDefinicao{}).
		Select("COALESCE(MAX(ordem), -1) AS max").
		Where("dominio = ?", s.Dominio).
		Where("fixo = true OR empresa_id = ?", *s.EmpresaID).
		Scan(&max).Error; err != nil {
		return err
	}
	s.Ordem = max.Max + 1
	return db.Create(s).Error
}

func (r *repositoryImpl) buscarDaEmpresa(db *gorm.DB, empresaID, id uint) (*StatusDefinicao, error) {
	var s StatusDefinicao
	err := db.Where("id = ?", id).
		Where("fixo = true OR empresa_id = ?", empresaID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStatusNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// editavel barra alterações em entradas fixas do sistema.
func editavel(s *StatusDefinicao) error {
	if s.Fixo {
		return ErrStatusProtegido
	}
	return nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, empresaID, id uint, nome, cor string) (*StatusDefinicao, error) {
	s, err := r.buscarDaEmpresa(db, empresaID, id)
	if err != nil {
		return nil, err
	}
	if err := editavel(s); err != nil {
		return nil, err
	}
	s.Nome = nome
	s.Cor = cor
	if err := db.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, empresaID, id uint) error {
	s, err := r.buscarDaEmpresa(db, empresaID, id)
	if err != nil {
		return err
	}
	if err := editavel(s); err != nil {
		return err
	}
	return db.Delete(s).Error
}

// validarReordenacao exige que a lista de ids cubra exatamente o registro
// combinado do domínio, sem repetições.
func validarReordenacao(atuais []StatusDefinicao, ids []uint) error {
	if len(ids) != len(atuais) {
		return ErrReordenacaoInvalida
	}
	conhecidos := make(map[uint]bool, len(atuais))
	for _, s := range atuais {
		conhecidos[s.ID] = true
	}
	vistos := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !conhecidos[id] || vistos[id] {
			return ErrReordenacaoInvalida
		}
		vistos[id] = true
	}
	return nil
}

// Reordenar grava as posições do espaço combinado (fixos + personalizados)
// em uma única transação: ou todas as ordens mudam, ou nenhuma.
func (r *repositoryImpl) Reordenar(db *gorm.DB, dominio string, empresaID uint, ids []uint) error {
	atuais, err := r.Listar(db, dominio, empresaID)
	if err != nil {
		return err
	}
	if err := validarReordenacao(atuais, ids); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&StatusDefinicao{}).
				Where("id = ?", id).
				Update("ordem", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// buscarNormalizado procura um nome na lista comparando de forma normalizada.
func buscarNormalizado(list []StatusDefinicao, nome string) *StatusDefinicao {
	alvo := Normalizar(nome)
	for i := range list {
		if Normalizar(list[i].Nome) == alvo {
			return &list[i]
		}
	}
	return nil
}

func (r *repositoryImpl) BuscarNoDominio(db *gorm.DB, dominio string, empresaID uint, nome string) (*StatusDefinicao, error) {
	list, err := r.Listar(db, dominio, empresaID)
	if err != nil {
		return nil, err
	}
	if s := buscarNormalizado(list, nome); s != nil {
		return s, nil
	}
	return nil, ErrStatusNaoEncontrado
}
