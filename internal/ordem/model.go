package ordem

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Valores de status gravados pelo próprio núcleo. O restante do vocabulário
// vem do registro de status da empresa.
const (
	StatusEntregue          = "ENTREGUE"
	StatusTecnicoFinalizada = "FINALIZADA"
)

var (
	// ErrOrdemNaoEncontrada indica que a ordem não existe para a empresa.
	ErrOrdemNaoEncontrada = errors.New("ordem de serviço não encontrada")
	// ErrStatusDesconhecido indica um status fora do registro da empresa.
	ErrStatusDesconhecido = errors.New("status não cadastrado para a empresa")
	// ErrOrdemJaEntregue indica tentativa de alterar uma ordem já entregue.
	ErrOrdemJaEntregue = errors.New("ordem de serviço já entregue não pode ser alterada")
	// ErrVersaoConflito indica que a ordem mudou entre a leitura e a gravação.
	ErrVersaoConflito = errors.New("a ordem foi alterada por outra operação, tente novamente")
	// ErrItemNaoEncontrado indica que o item não pertence à ordem.
	ErrItemNaoEncontrado = errors.New("item não encontrado na ordem")
	// ErrTipoItemInvalido indica um tipo de item fora de {produto, servico}.
	ErrTipoItemInvalido = errors.New("tipo de item inválido")
)

// Tipos de item da ordem.
const (
	ItemProduto = "produto"
	ItemServico = "servico"
)

// ItemOrdem é uma peça ou serviço precificado de uma ordem. Pertence a uma
// única ordem; nunca é compartilhado.
type ItemOrdem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrdemID uint `gorm:"not null;index" json:"ordemId"`

	// Identidade no catálogo, quando o item veio de lá. Produtos com o mesmo
	// CatalogoID são mesclados por quantidade em vez de duplicados.
	CatalogoID *uint `json:"catalogoId,omitempty"`

	Nome       string  `gorm:"size:255;not null" json:"nome"`
	Preco      float64 `gorm:"not null;default:0" json:"preco"`
	Quantidade int     `gorm:"not null;default:1" json:"quantidade"`
	Tipo       string  `gorm:"size:10;not null" json:"tipo"`
}

func (ItemOrdem) TableName() string { return "itens_ordem" }

// Total do item (preço × quantidade).
func (i ItemOrdem) Total() float64 {
	return i.Preco * float64(i.Quantidade)
}

// OrdemServico é a raiz do agregado: um conserto acompanhado da entrada até a
// entrega.
type OrdemServico struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmpresaID uint  `gorm:"not null;uniqueIndex:idx_ordens_empresa_numero" json:"empresaId"`
	NumeroOS  int64 `gorm:"not null;uniqueIndex:idx_ordens_empresa_numero" json:"numeroOs"`

	ClienteID       uint  `gorm:"not null;index" json:"clienteId"`
	TecnicoID       *uint `gorm:"index" json:"tecnicoId,omitempty"`
	TermoGarantiaID *uint `json:"termoGarantiaId,omitempty"`

	Status        string `gorm:"size:80;not null" json:"status"`
	StatusTecnico string `gorm:"size:80" json:"statusTecnico"`
	IsRetorno     bool   `gorm:"not null;default:false" json:"isRetorno"`

	// Descrição do aparelho; o núcleo não interpreta esses campos.
	Categoria            string `gorm:"size:80" json:"categoria"`
	Marca                string `gorm:"size:80" json:"marca"`
	Modelo               string `gorm:"size:120" json:"modelo"`
	Cor                  string `gorm:"size:40" json:"cor"`
	NumeroSerie          string `gorm:"size:120" json:"numeroSerie"`
	Acessorios           string `gorm:"size:255" json:"acessorios"`
	CondicoesEquipamento string `gorm:"type:text" json:"condicoesEquipamento"`
	Relato               string `gorm:"type:text" json:"relato"`
	Observacao           string `gorm:"type:text" json:"observacao"`

	// Agregados em cache, sempre rederiváveis a partir dos itens.
	ValorPeca     float64 `gorm:"not null;default:0" json:"valorPeca"`
	QtdPeca       int     `gorm:"not null;default:1" json:"qtdPeca"`
	ValorServico  float64 `gorm:"not null;default:0" json:"valorServico"`
	QtdServico    int     `gorm:"not null;default:1" json:"qtdServico"`
	Desconto      float64 `gorm:"not null;default:0" json:"desconto"`
	ValorFaturado float64 `gorm:"not null;default:0" json:"valorFaturado"`

	// Espelhos de texto legados dos itens, mantidos para leitores antigos.
	Peca    string `gorm:"type:text" json:"peca"`
	Servico string `gorm:"type:text" json:"servico"`

	PrazoEntrega       *time.Time `json:"prazoEntrega,omitempty"`
	DataEntrega        *time.Time `json:"dataEntrega,omitempty"`
	VencimentoGarantia *time.Time `json:"vencimentoGarantia,omitempty"`

	// Lista de URLs separadas por vírgula; ver ListaImagens/DefinirImagens.
	Imagens string `gorm:"type:text" json:"-"`

	Versao int64 `gorm:"not null;default:1" json:"versao"`

	Itens []ItemOrdem `gorm:"foreignKey:OrdemID;constraint:OnDelete:CASCADE" json:"itens"`
}

func (OrdemServico) TableName() string { return "ordens_servico" }

// Entregue informa se a ordem já passou pela entrega. A data de entrega é a
// fonte da verdade: só a liquidação a preenche, junto com a garantia.
func (o *OrdemServico) Entregue() bool {
	return o.DataEntrega != nil
}

// ListaImagens devolve as URLs de imagem, descartando segmentos vazios.
func (o *OrdemServico) ListaImagens() []string {
	if strings.TrimSpace(o.Imagens) == "" {
		return []string{}
	}
	partes := strings.Split(o.Imagens, ",")
	urls := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			urls = append(urls, p)
		}
	}
	return urls
}

// DefinirImagens serializa a lista de URLs no campo delimitado.
func (o *OrdemServico) DefinirImagens(urls []string) {
	limpas := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			limpas = append(limpas, u)
		}
	}
	o.Imagens = strings.Join(limpas, ",")
}

// Referencia é o texto usado pela venda para apontar de volta para a ordem.
func (o *OrdemServico) Referencia(clienteNome string) string {
	if clienteNome == "" {
		return fmt.Sprintf("O.S. #%d", o.NumeroOS)
	}
	return fmt.Sprintf("O.S. #%d - %s", o.NumeroOS, clienteNome)
}
