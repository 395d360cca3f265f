package entrega

import (
	"errors"
	"fmt"
)

// Formas de pagamento aceitas na entrega.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoPix           = "pix"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoTransferencia = "transferencia"
)

var formasPagamento = map[string]bool{
	PagamentoDinheiro:      true,
	PagamentoPix:           true,
	PagamentoCartaoDebito:  true,
	PagamentoCartaoCredito: true,
	PagamentoTransferencia: true,
}

// FormaPagamentoValida informa se a forma de pagamento pertence ao conjunto
// aceito.
func FormaPagamentoValida(f string) bool {
	return formasPagamento[f]
}

var (
	// ErrFormaPagamentoInvalida indica forma de pagamento fora do conjunto aceito.
	ErrFormaPagamentoInvalida = errors.New("forma de pagamento inválida")
	// ErrTermoGarantiaInvalido indica termo de garantia ausente ou inexistente
	// para a empresa.
	ErrTermoGarantiaInvalido = errors.New("termo de garantia obrigatório e deve existir para a empresa")
)

// ErrPagamentoInsuficiente indica valor recebido menor que o valor a pagar.
// Carrega a diferença para a mensagem ao operador.
type ErrPagamentoInsuficiente struct {
	Faltante float64
}

func (e ErrPagamentoInsuficiente) Error() string {
	return fmt.Sprintf("valor recebido insuficiente: faltam R$ %.2f", e.Faltante)
}
