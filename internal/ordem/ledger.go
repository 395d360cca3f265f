package ordem

import (
	"math"
	"strings"
)

// Totais agrupa os subtotais de produtos e serviços da ordem.
type Totais struct {
	TotalProdutos float64 `json:"totalProdutos"`
	TotalServicos float64 `json:"totalServicos"`
}

// Geral devolve o total bruto, antes do desconto.
func (t Totais) Geral() float64 {
	return t.TotalProdutos + t.TotalServicos
}

func arredondar(v float64) float64 {
	return math.Round(v*100) / 100
}

func qtdOuUm(q int) float64 {
	if q <= 0 {
		return 1
	}
	return float64(q)
}

// Totais calcula os subtotais a partir da lista estruturada. Quando a lista
// está vazia mas a ordem carrega agregados legados não nulos (registro
// anterior aos itens estruturados), devolve o valor legado em vez de zero.
// Essa é uma regra de compatibilidade, não um default.
func (o *OrdemServico) Totais() Totais {
	if len(o.Itens) == 0 {
		return Totais{
			TotalProdutos: arredondar(o.ValorPeca * qtdOuUm(o.QtdPeca)),
			TotalServicos: arredondar(o.ValorServico * qtdOuUm(o.QtdServico)),
		}
	}
	var t Totais
	for _, item := range o.Itens {
		switch item.Tipo {
		case ItemServico:
			t.TotalServicos += item.Total()
		default:
			t.TotalProdutos += item.Total()
		}
	}
	t.TotalProdutos = arredondar(t.TotalProdutos)
	t.TotalServicos = arredondar(t.TotalServicos)
	return t
}

// ValorAPagar é o total faturável: soma dos itens menos o desconto.
func (o *OrdemServico) ValorAPagar() float64 {
	return arredondar(o.Totais().Geral() - o.Desconto)
}

// RecalcularAgregados sincroniza os campos em cache com a lista de itens.
// Só deve rodar quando existem itens estruturados; ordens puramente legadas
// mantêm os agregados originais.
func (o *OrdemServico) RecalcularAgregados() {
	t := o.Totais()
	if len(o.Itens) > 0 {
		o.ValorPeca = t.TotalProdutos
		o.QtdPeca = 1
		o.ValorServico = t.TotalServicos
		o.QtdServico = 1
	}
	o.ValorFaturado = arredondar(t.Geral() - o.Desconto)
}

func mesmaIdentidadeProduto(a, b ItemOrdem) bool {
	if a.CatalogoID != nil && b.CatalogoID != nil {
		return *a.CatalogoID == *b.CatalogoID
	}
	return strings.EqualFold(strings.TrimSpace(a.Nome), strings.TrimSpace(b.Nome)) && a.Preco == b.Preco
}

// AdicionarItem acrescenta um item à ordem. Produtos com a mesma identidade
// têm a quantidade incrementada em vez de gerar linha duplicada; serviços são
// sempre anexados como vieram.
func (o *OrdemServico) AdicionarItem(item ItemOrdem) error {
	if o.Entregue() {
		return ErrOrdemJaEntregue
	}
	if item.Tipo != ItemProduto && item.Tipo != ItemServico {
		return ErrTipoItemInvalido
	}
	if item.Quantidade <= 0 {
		item.Quantidade = 1
	}
	if item.Tipo == ItemProduto {
		for i := range o.Itens {
			if o.Itens[i].Tipo == ItemProduto && mesmaIdentidadeProduto(o.Itens[i], item) {
				o.Itens[i].Quantidade += item.Quantidade
				o.RecalcularAgregados()
				return nil
			}
		}
	}
	item.OrdemID = o.ID
	o.Itens = append(o.Itens, item)
	o.RecalcularAgregados()
	return nil
}

func (o *OrdemServico) indiceItem(itemID uint) int {
	for i := range o.Itens {
		if o.Itens[i].ID == itemID {
			return i
		}
	}
	return -1
}

// RemoverItem retira um item da ordem.
func (o *OrdemServico) RemoverItem(itemID uint) error {
	if o.Entregue() {
		return ErrOrdemJaEntregue
	}
	i := o.indiceItem(itemID)
	if i < 0 {
		return ErrItemNaoEncontrado
	}
	o.Itens = append(o.Itens[:i], o.Itens[i+1:]...)
	o.RecalcularAgregados()
	return nil
}

// EditarItem altera nome, preço e quantidade de um item existente.
func (o *OrdemServico) EditarItem(itemID uint, nome string, preco float64, quantidade int) error {
	if o.Entregue() {
		return ErrOrdemJaEntregue
	}
	if quantidade <= 0 {
		return o.RemoverItem(itemID)
	}
	i := o.indiceItem(itemID)
	if i < 0 {
		return ErrItemNaoEncontrado
	}
	o.Itens[i].Nome = nome
	o.Itens[i].Preco = preco
	o.Itens[i].Quantidade = quantidade
	o.RecalcularAgregados()
	return nil
}

// DefinirQuantidade ajusta a quantidade de um item; quantidade ≤ 0 equivale a
// remover o item.
func (o *OrdemServico) DefinirQuantidade(itemID uint, quantidade int) error {
	if o.Entregue() {
		return ErrOrdemJaEntregue
	}
	if quantidade <= 0 {
		return o.RemoverItem(itemID)
	}
	i := o.indiceItem(itemID)
	if i < 0 {
		return ErrItemNaoEncontrado
	}
	o.Itens[i].Quantidade = quantidade
	o.RecalcularAgregados()
	return nil
}
