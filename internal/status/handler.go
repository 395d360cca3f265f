package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository do registro de status.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type criarStatusRequest struct {
	Nome    string `json:"nome"`
	Cor     string `json:"cor"`
	Dominio string `json:"dominio"`
}

type atualizarStatusRequest struct {
	Nome string `json:"nome"`
	Cor  string `json:"cor"`
}

type reordenarRequest struct {
	Dominio string `json:"dominio"`
	IDs     []uint `json:"ids"`
}

// Listar trata GET /status?dominio=os|tecnico
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	dominio := r.URL.Query().Get("dominio")
	list, err := h.Repository.Listar(h.DB, dominio, ctx.EmpresaID)
	if err != nil {
		if errors.Is(err, ErrDominioInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao listar status", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Criar trata POST /status
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	var req criarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	empresaID := ctx.EmpresaID
	s := StatusDefinicao{
		EmpresaID: &empresaID,
		Nome:      req.Nome,
		Cor:       req.Cor,
		Dominio:   req.Dominio,
	}
	if err := h.Repository.Criar(h.DB, &s); err != nil {
		if errors.Is(err, ErrDominioInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao criar status", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

// Atualizar trata PUT /status/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	s, err := h.Repository.Atualizar(h.DB, ctx.EmpresaID, uint(id), req.Nome, req.Cor)
	if err != nil {
		h.responderErro(w, err, "Erro ao atualizar status")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// Deletar trata DELETE /status/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, ctx.EmpresaID, uint(id)); err != nil {
		h.responderErro(w, err, "Erro ao excluir status")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reordenar trata PUT /status/reordenar
func (h *Handler) Reordenar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	var req reordenarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Reordenar(h.DB, req.Dominio, ctx.EmpresaID, req.IDs); err != nil {
		if errors.Is(err, ErrReordenacaoInvalida) || errors.Is(err, ErrDominioInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao reordenar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) responderErro(w http.ResponseWriter, err error, generico string) {
	switch {
	case errors.Is(err, ErrStatusNaoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrStatusProtegido):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, generico, http.StatusInternalServerError)
	}
}
