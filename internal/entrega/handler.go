package entrega

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/notificacao"
	"github.com/ReparoFacil/api-ordens/internal/ordem"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler expõe a rota de entrega.
type Handler struct {
	Service *Service
	Emissor *notificacao.Emissor
	Logger  *zap.SugaredLogger
}

func NewHandler(service *Service, emissor *notificacao.Emissor) *Handler {
	return &Handler{Service: service, Emissor: emissor, Logger: service.Logger}
}

type entregarRequest struct {
	FormaPagamento  string  `json:"formaPagamento"`
	ValorRecebido   float64 `json:"valorRecebido"`
	TermoGarantiaID *uint   `json:"termoGarantiaId"`
}

// Entregar trata POST /ordens/{id}/entrega
func (h *Handler) Entregar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req entregarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	o, transicao, err := h.Service.Entregar(r.Context(), ctx.EmpresaID, uint(id), ctx, PedidoEntrega{
		FormaPagamento:  req.FormaPagamento,
		ValorRecebido:   req.ValorRecebido,
		TermoGarantiaID: req.TermoGarantiaID,
	})
	if err != nil {
		h.responderErro(w, err)
		return
	}

	if transicao != nil {
		h.Emissor.Publicar(r.Context(), *transicao)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

func (h *Handler) responderErro(w http.ResponseWriter, err error) {
	var insuficiente ErrPagamentoInsuficiente
	switch {
	case errors.Is(err, ordem.ErrOrdemNaoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ordem.ErrOrdemJaEntregue):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ordem.ErrVersaoConflito):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrFormaPagamentoInvalida), errors.Is(err, ErrTermoGarantiaInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &insuficiente):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.Logger.Errorw("erro na rota de entrega", "error", err)
		http.Error(w, "Erro ao entregar ordem", http.StatusInternalServerError)
	}
}
