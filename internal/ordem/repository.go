package ordem

import (
	"errors"

	"github.com/ReparoFacil/api-ordens/internal/contador"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, o *OrdemServico) error
	BuscarPorID(db *gorm.DB, empresaID, id uint) (*OrdemServico, error)
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]OrdemServico, error)
	// Salvar grava a ordem com checagem otimista de versão: se a ordem mudou
	// desde a leitura, devolve ErrVersaoConflito e nada é gravado.
	Salvar(db *gorm.DB, o *OrdemServico) error
}

type repositoryImpl struct {
	contadores contador.Repository
}

func NewRepository() Repository {
	return &repositoryImpl{contadores: contador.NewRepository()}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *OrdemServico) error {
	return db.Transaction(func(tx *gorm.DB) error {
		numero, err := r.contadores.ProximoNumero(tx, o.EmpresaID, contador.Ordens)
		if err != nil {
			return err
		}
		o.NumeroOS = numero
		o.Versao = 1
		return tx.Create(o).Error
	})
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, empresaID, id uint) (*OrdemServico, error) {
	var o OrdemServico
	err := db.Preload("Itens").
		Where("empresa_id = ?", empresaID).
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrdemNaoEncontrada
	}
	if err != nil {
		return nil, err
	}
	ReconciliarLegado(&o)
	return &o, nil
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]OrdemServico, error) {
	var list []OrdemServico
	err := db.Preload("Itens").
		Where("empresa_id = ?", empresaID).
		Order("numero_os DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *OrdemServico) error {
	versaoLida := o.Versao
	campos := map[string]interface{}{
		"status":                o.Status,
		"status_tecnico":        o.StatusTecnico,
		"is_retorno":            o.IsRetorno,
		"cliente_id":            o.ClienteID,
		"tecnico_id":            o.TecnicoID,
		"termo_garantia_id":     o.TermoGarantiaID,
		"categoria":             o.Categoria,
		"marca":                 o.Marca,
		"modelo":                o.Modelo,
		"cor":                   o.Cor,
		"numero_serie":          o.NumeroSerie,
		"acessorios":            o.Acessorios,
		"condicoes_equipamento": o.CondicoesEquipamento,
		"relato":                o.Relato,
		"observacao":            o.Observacao,
		"valor_peca":            o.ValorPeca,
		"qtd_peca":              o.QtdPeca,
		"valor_servico":         o.ValorServico,
		"qtd_servico":           o.QtdServico,
		"desconto":              o.Desconto,
		"valor_faturado":        o.ValorFaturado,
		"peca":                  o.Peca,
		"servico":               o.Servico,
		"prazo_entrega":         o.PrazoEntrega,
		"data_entrega":          o.DataEntrega,
		"vencimento_garantia":   o.VencimentoGarantia,
		"imagens":               o.Imagens,
		"versao":                versaoLida + 1,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&OrdemServico{}).
			Where("id = ? AND empresa_id = ? AND versao = ?", o.ID, o.EmpresaID, versaoLida).
			Updates(campos)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersaoConflito
		}
		if err := r.sincronizarItens(tx, o); err != nil {
			return err
		}
		o.Versao = versaoLida + 1
		return nil
	})
}

// sincronizarItens grava a lista de itens da ordem: atualiza os existentes,
// insere os novos e remove os que saíram da lista.
func (r *repositoryImpl) sincronizarItens(tx *gorm.DB, o *OrdemServico) error {
	var atuais []ItemOrdem
	if err := tx.Where("ordem_id = ?", o.ID).Find(&atuais).Error; err != nil {
		return err
	}

	manter := make(map[uint]bool, len(o.Itens))
	for i := range o.Itens {
		item := &o.Itens[i]
		item.OrdemID = o.ID
		if item.ID == 0 {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&ItemOrdem{}).
				Where("id = ? AND ordem_id = ?", item.ID, o.ID).
				Updates(map[string]interface{}{
					"catalogo_id": item.CatalogoID,
					"nome":        item.Nome,
					"preco":       item.Preco,
					"quantidade":  item.Quantidade,
					"tipo":        item.Tipo,
				}).Error; err != nil {
				return err
			}
		}
		manter[item.ID] = true
	}

	for _, a := range atuais {
		if !manter[a.ID] {
			if err := tx.Delete(&ItemOrdem{}, a.ID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
