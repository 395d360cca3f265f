package catalogo

import (
	"encoding/json"
	"net/http"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar trata GET /catalogo?tipo=produto|servico
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	list, err := h.Repository.Listar(h.DB, ctx.EmpresaID, r.URL.Query().Get("tipo"))
	if err != nil {
		http.Error(w, "Erro ao listar catálogo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
