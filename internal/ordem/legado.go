package ordem

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reconciliação com a representação de texto usada antes dos itens
// estruturados existirem. Ordens antigas carregam os campos peca/servico como
// texto livre e os agregados em cache; na carga, reconstruímos a melhor lista
// de itens possível para que essas ordens possam ser editadas pela tela de
// itens sem perda além da que o texto já tinha.

const legadoNomeMax = 50

var (
	linhaProdutoRe = regexp.MustCompile(`^(.+?)\s*\((\d+)x\)\s*-\s*R?\$?\s*(\d+(?:[.,]\d+)?)$`)
	linhaServicoRe = regexp.MustCompile(`^(.+?)\s*-\s*(?:Valor:\s*)?R?\$?\s*(\d+(?:[.,]\d+)?)$`)
)

func parsePrecoLegado(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func truncarNomeLegado(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= legadoNomeMax {
		return s
	}
	return string(runes[:legadoNomeMax]) + "…"
}

// reconstruirItens converte um campo de texto legado em itens. Linhas no
// formato canônico viram um item cada; se nada casar, o campo inteiro vira um
// único item com o valor agregado legado (reconstrução lossy proposital).
func reconstruirItens(texto, tipo string, valorLegado float64, qtdLegada int) []ItemOrdem {
	texto = strings.TrimSpace(texto)
	if texto == "" && valorLegado == 0 {
		return nil
	}

	var itens []ItemOrdem
	for _, linha := range strings.Split(texto, "\n") {
		linha = strings.TrimSpace(linha)
		if linha == "" {
			continue
		}
		if tipo == ItemProduto {
			if m := linhaProdutoRe.FindStringSubmatch(linha); m != nil {
				qtd, _ := strconv.Atoi(m[2])
				if qtd <= 0 {
					qtd = 1
				}
				itens = append(itens, ItemOrdem{
					Nome:       strings.TrimSpace(m[1]),
					Preco:      parsePrecoLegado(m[3]),
					Quantidade: qtd,
					Tipo:       ItemProduto,
				})
				continue
			}
		}
		if m := linhaServicoRe.FindStringSubmatch(linha); m != nil {
			itens = append(itens, ItemOrdem{
				Nome:       strings.TrimSpace(m[1]),
				Preco:      parsePrecoLegado(m[2]),
				Quantidade: 1,
				Tipo:       tipo,
			})
		}
	}
	if len(itens) > 0 {
		return itens
	}

	// Nada casou: um único item reconstruído com o agregado legado.
	if qtdLegada <= 0 {
		qtdLegada = 1
	}
	nome := truncarNomeLegado(texto)
	if nome == "" {
		nome = tipo
	}
	return []ItemOrdem{{
		Nome:       nome,
		Preco:      valorLegado,
		Quantidade: qtdLegada,
		Tipo:       tipo,
	}}
}

// ReconciliarLegado sintetiza itens estruturados para uma ordem carregada sem
// eles mas com representação legada presente. Não persiste nada: os itens
// reconstruídos só ganham o banco se a ordem for salva depois de editada.
func ReconciliarLegado(o *OrdemServico) {
	if len(o.Itens) > 0 {
		return
	}
	var itens []ItemOrdem
	if o.Peca != "" || o.ValorPeca != 0 {
		itens = append(itens, reconstruirItens(o.Peca, ItemProduto, o.ValorPeca, o.QtdPeca)...)
	}
	if o.Servico != "" || o.ValorServico != 0 {
		itens = append(itens, reconstruirItens(o.Servico, ItemServico, o.ValorServico, 1)...)
	}
	if len(itens) == 0 {
		return
	}
	for i := range itens {
		itens[i].OrdemID = o.ID
	}
	o.Itens = itens
}

// SerializarLegado renderiza a lista estruturada de volta para os campos de
// texto, mantendo leitores antigos funcionando enquanto a migração durar.
func SerializarLegado(o *OrdemServico) {
	var pecas, servicos []string
	for _, item := range o.Itens {
		switch item.Tipo {
		case ItemServico:
			servicos = append(servicos, fmt.Sprintf("%s - %.2f", item.Nome, item.Preco))
		default:
			pecas = append(pecas, fmt.Sprintf("%s (%dx) - %.2f", item.Nome, item.Quantidade, item.Preco))
		}
	}
	o.Peca = strings.Join(pecas, "\n")
	o.Servico = strings.Join(servicos, "\n")
}
