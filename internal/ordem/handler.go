package ordem

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/catalogo"
	"github.com/ReparoFacil/api-ordens/internal/cliente"
	"github.com/ReparoFacil/api-ordens/internal/historico"
	"github.com/ReparoFacil/api-ordens/internal/notificacao"
	"github.com/ReparoFacil/api-ordens/internal/status"
	"github.com/ReparoFacil/api-ordens/internal/tecnico"
	"github.com/gorilla/mux"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler agrupa as rotas de ordem de serviço e seus colaboradores.
type Handler struct {
	DB        *gorm.DB
	Logger    *zap.SugaredLogger
	Ordens    Repository
	Clientes  *cliente.Repository
	Tecnicos  *tecnico.Repository
	Catalogo  *catalogo.Repository
	Registro  status.Repository
	Historico historico.Repository
	Maquina   *MaquinaStatus
	Emissor   *notificacao.Emissor

	// DualWriteLegado mantém os espelhos de texto peca/servico sincronizados
	// a cada gravação, enquanto houver leitores antigos.
	DualWriteLegado bool
}

func NewHandler(db *gorm.DB, logger *zap.SugaredLogger, emissor *notificacao.Emissor, dualWriteLegado bool) *Handler {
	ordens := NewRepository()
	registro := status.NewRepository()
	hist := historico.NewRepository()
	return &Handler{
		DB:              db,
		Logger:          logger,
		Ordens:          ordens,
		Clientes:        cliente.NewRepository(),
		Tecnicos:        tecnico.NewRepository(),
		Catalogo:        catalogo.NewRepository(),
		Registro:        registro,
		Historico:       hist,
		Maquina:         NovaMaquina(ordens, registro, hist),
		Emissor:         emissor,
		DualWriteLegado: dualWriteLegado,
	}
}

type itemRequest struct {
	CatalogoID *uint   `json:"catalogoId"`
	Nome       string  `json:"nome"`
	Preco      float64 `json:"preco"`
	Quantidade int     `json:"quantidade"`
	Tipo       string  `json:"tipo"`
}

type criarOrdemRequest struct {
	ClienteID uint  `json:"clienteId"`
	TecnicoID *uint `json:"tecnicoId"`
	IsRetorno bool  `json:"isRetorno"`

	Categoria            string `json:"categoria"`
	Marca                string `json:"marca"`
	Modelo               string `json:"modelo"`
	Cor                  string `json:"cor"`
	NumeroSerie          string `json:"numeroSerie"`
	Acessorios           string `json:"acessorios"`
	CondicoesEquipamento string `json:"condicoesEquipamento"`
	Relato               string `json:"relato"`
	Observacao           string `json:"observacao"`

	Desconto     float64       `json:"desconto"`
	PrazoEntrega string        `json:"prazoEntrega"`
	Imagens      []string      `json:"imagens"`
	Itens        []itemRequest `json:"itens"`
}

type atualizarOrdemRequest struct {
	Categoria            *string `json:"categoria"`
	Marca                *string `json:"marca"`
	Modelo               *string `json:"modelo"`
	Cor                  *string `json:"cor"`
	NumeroSerie          *string `json:"numeroSerie"`
	Acessorios           *string `json:"acessorios"`
	CondicoesEquipamento *string `json:"condicoesEquipamento"`
	Relato               *string `json:"relato"`
	Observacao           *string `json:"observacao"`

	Desconto     *float64  `json:"desconto"`
	PrazoEntrega *string   `json:"prazoEntrega"`
	Imagens      *[]string `json:"imagens"`
}

type mudarStatusRequest struct {
	Status string `json:"status"`
	Motivo string `json:"motivo"`
}

type mudarTecnicoRequest struct {
	TecnicoID uint `json:"tecnicoId"`
}

type quantidadeRequest struct {
	Quantidade int `json:"quantidade"`
}

// comRetentativa reexecuta a operação quando a gravação perde a corrida de
// versão. A função recebe a ordem recarregada a cada tentativa.
func (h *Handler) comRetentativa(ctx context.Context, empresaID, ordemID uint, fn func(o *OrdemServico) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewConstant(20*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		o, err := h.Ordens.BuscarPorID(h.DB, empresaID, ordemID)
		if err != nil {
			return err
		}
		if err := fn(o); err != nil {
			if errors.Is(err, ErrVersaoConflito) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

// montarItem resolve um item do payload, puxando nome, preço e tipo do
// catálogo quando o item referencia uma entrada dele.
func (h *Handler) montarItem(empresaID uint, req itemRequest) (ItemOrdem, error) {
	item := ItemOrdem{
		CatalogoID: req.CatalogoID,
		Nome:       req.Nome,
		Preco:      req.Preco,
		Quantidade: req.Quantidade,
		Tipo:       req.Tipo,
	}
	if req.CatalogoID != nil {
		p, err := h.Catalogo.BuscarPorID(h.DB, empresaID, *req.CatalogoID)
		if err != nil {
			return ItemOrdem{}, err
		}
		if item.Nome == "" {
			item.Nome = p.Nome
		}
		if item.Preco == 0 {
			item.Preco = p.Preco
		}
		if item.Tipo == "" {
			item.Tipo = p.Tipo
		}
	}
	return item, nil
}

func (h *Handler) salvarComLegado(db *gorm.DB, o *OrdemServico) error {
	if h.DualWriteLegado {
		SerializarLegado(o)
	}
	return h.Ordens.Salvar(db, o)
}

// Criar trata POST /ordens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	var req criarOrdemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.ClienteID == 0 {
		http.Error(w, "o campo 'clienteId' é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.Clientes.BuscarPorID(h.DB, ctx.EmpresaID, req.ClienteID); err != nil {
		if errors.Is(err, cliente.ErrClienteNaoEncontrado) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao validar cliente", http.StatusInternalServerError)
		return
	}
	if req.TecnicoID != nil {
		if _, err := h.Tecnicos.BuscarPorID(h.DB, ctx.EmpresaID, *req.TecnicoID); err != nil {
			if errors.Is(err, tecnico.ErrTecnicoNaoEncontrado) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Erro ao validar técnico", http.StatusInternalServerError)
			return
		}
	}

	// A ordem nasce no primeiro status do registro da empresa.
	definicoes, err := h.Registro.Listar(h.DB, status.DominioOS, ctx.EmpresaID)
	if err != nil || len(definicoes) == 0 {
		http.Error(w, "registro de status da empresa indisponível", http.StatusInternalServerError)
		return
	}

	o := OrdemServico{
		EmpresaID:            ctx.EmpresaID,
		ClienteID:            req.ClienteID,
		TecnicoID:            req.TecnicoID,
		IsRetorno:            req.IsRetorno,
		Status:               definicoes[0].Nome,
		Categoria:            req.Categoria,
		Marca:                req.Marca,
		Modelo:               req.Modelo,
		Cor:                  req.Cor,
		NumeroSerie:          req.NumeroSerie,
		Acessorios:           req.Acessorios,
		CondicoesEquipamento: req.CondicoesEquipamento,
		Relato:               req.Relato,
		Observacao:           req.Observacao,
		Desconto:             req.Desconto,
	}
	o.DefinirImagens(req.Imagens)
	if req.PrazoEntrega != "" {
		prazo, err := time.Parse("2006-01-02", req.PrazoEntrega)
		if err != nil {
			http.Error(w, "data de 'prazoEntrega' inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
		o.PrazoEntrega = &prazo
	}
	for _, ir := range req.Itens {
		item, err := h.montarItem(ctx.EmpresaID, ir)
		if err != nil {
			h.responderErro(w, err, "Erro ao resolver item do catálogo")
			return
		}
		if err := o.AdicionarItem(item); err != nil {
			h.responderErro(w, err, "Erro ao adicionar item")
			return
		}
	}
	o.RecalcularAgregados()
	if h.DualWriteLegado {
		SerializarLegado(&o)
	}

	if err := h.Ordens.Criar(h.DB, &o); err != nil {
		h.Logger.Errorw("erro ao criar ordem", "empresa", ctx.EmpresaID, "error", err)
		http.Error(w, "Erro ao criar ordem de serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(o)
}

// Listar trata GET /ordens
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	list, err := h.Ordens.ListarPorEmpresa(h.DB, ctx.EmpresaID)
	if err != nil {
		http.Error(w, "Erro ao listar ordens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Buscar trata GET /ordens/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	o, err := h.Ordens.BuscarPorID(h.DB, ctx.EmpresaID, id)
	if err != nil {
		h.responderErro(w, err, "Erro ao buscar ordem")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

// Atualizar trata PATCH /ordens/{id} — campos gerais, nunca status nem itens.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req atualizarOrdemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		if o.Entregue() {
			return ErrOrdemJaEntregue
		}
		aplicarTexto := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		aplicarTexto(&o.Categoria, req.Categoria)
		aplicarTexto(&o.Marca, req.Marca)
		aplicarTexto(&o.Modelo, req.Modelo)
		aplicarTexto(&o.Cor, req.Cor)
		aplicarTexto(&o.NumeroSerie, req.NumeroSerie)
		aplicarTexto(&o.Acessorios, req.Acessorios)
		aplicarTexto(&o.CondicoesEquipamento, req.CondicoesEquipamento)
		aplicarTexto(&o.Relato, req.Relato)
		aplicarTexto(&o.Observacao, req.Observacao)
		if req.Desconto != nil {
			o.Desconto = *req.Desconto
			o.RecalcularAgregados()
		}
		if req.PrazoEntrega != nil {
			if *req.PrazoEntrega == "" {
				o.PrazoEntrega = nil
			} else {
				prazo, err := time.Parse("2006-01-02", *req.PrazoEntrega)
				if err != nil {
					return errPrazoInvalido
				}
				o.PrazoEntrega = &prazo
			}
		}
		if req.Imagens != nil {
			o.DefinirImagens(*req.Imagens)
		}
		if err := h.salvarComLegado(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao atualizar ordem")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

var errPrazoInvalido = errors.New("data de 'prazoEntrega' inválida, use AAAA-MM-DD")

// MudarStatus trata PATCH /ordens/{id}/status
func (h *Handler) MudarStatus(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req mudarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		http.Error(w, "o campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	var (
		atualizado *OrdemServico
		transicao  *notificacao.Transicao
	)
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		return h.DB.Transaction(func(tx *gorm.DB) error {
			t, err := h.Maquina.AplicarStatus(tx, o, req.Status, ctx, req.Motivo)
			if err != nil {
				return err
			}
			atualizado = o
			transicao = t
			return nil
		})
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao mudar status")
		return
	}

	// Só publica depois do commit: transação desfeita não gera notificação.
	if transicao != nil {
		h.Emissor.Publicar(r.Context(), *transicao)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// MudarStatusTecnico trata PATCH /ordens/{id}/status-tecnico
func (h *Handler) MudarStatusTecnico(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req mudarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		http.Error(w, "o campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		return h.DB.Transaction(func(tx *gorm.DB) error {
			if err := h.Maquina.AplicarStatusTecnico(tx, o, req.Status, ctx, req.Motivo); err != nil {
				return err
			}
			atualizado = o
			return nil
		})
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao mudar status técnico")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// MudarTecnico trata PATCH /ordens/{id}/tecnico
func (h *Handler) MudarTecnico(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req mudarTecnicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Tecnicos.BuscarPorID(h.DB, ctx.EmpresaID, req.TecnicoID); err != nil {
		if errors.Is(err, tecnico.ErrTecnicoNaoEncontrado) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao validar técnico", http.StatusInternalServerError)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		if o.Entregue() {
			return ErrOrdemJaEntregue
		}
		tecnicoID := req.TecnicoID
		o.TecnicoID = &tecnicoID
		if err := h.Ordens.Salvar(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao atribuir técnico")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// AdicionarItem trata POST /ordens/{id}/itens
func (h *Handler) AdicionarItem(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		item, err := h.montarItem(ctx.EmpresaID, req)
		if err != nil {
			return err
		}
		if err := o.AdicionarItem(item); err != nil {
			return err
		}
		if err := h.salvarComLegado(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao adicionar item")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(atualizado)
}

// EditarItem trata PUT /ordens/{id}/itens/{itemId}
func (h *Handler) EditarItem(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, itemID, err := idsDeItem(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		if err := o.EditarItem(itemID, req.Nome, req.Preco, req.Quantidade); err != nil {
			return err
		}
		if err := h.salvarComLegado(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao editar item")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// MudarQuantidade trata PATCH /ordens/{id}/itens/{itemId}/quantidade
func (h *Handler) MudarQuantidade(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, itemID, err := idsDeItem(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req quantidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		if err := o.DefinirQuantidade(itemID, req.Quantidade); err != nil {
			return err
		}
		if err := h.salvarComLegado(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao mudar quantidade")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// RemoverItem trata DELETE /ordens/{id}/itens/{itemId}
func (h *Handler) RemoverItem(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, itemID, err := idsDeItem(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var atualizado *OrdemServico
	err = h.comRetentativa(r.Context(), ctx.EmpresaID, id, func(o *OrdemServico) error {
		if err := o.RemoverItem(itemID); err != nil {
			return err
		}
		if err := h.salvarComLegado(h.DB, o); err != nil {
			return err
		}
		atualizado = o
		return nil
	})
	if err != nil {
		h.responderErro(w, err, "Erro ao remover item")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// ListarHistorico trata GET /ordens/{id}/historico
func (h *Handler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	ctx, ok := auth.ContextoDaRequisicao(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Ordens.BuscarPorID(h.DB, ctx.EmpresaID, id); err != nil {
		h.responderErro(w, err, "Erro ao buscar ordem")
		return
	}
	list, err := h.Historico.ListarPorOrdem(h.DB, ctx.EmpresaID, id)
	if err != nil {
		http.Error(w, "Erro ao listar histórico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}

func idsDeItem(r *http.Request) (uint, uint, error) {
	id, err := idDaRota(r)
	if err != nil {
		return 0, 0, err
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil || itemID <= 0 {
		return 0, 0, errors.New("id inválido")
	}
	return id, uint(itemID), nil
}

func (h *Handler) responderErro(w http.ResponseWriter, err error, generico string) {
	switch {
	case errors.Is(err, ErrOrdemNaoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrItemNaoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalogo.ErrItemNaoEncontrado):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTipoItemInvalido), errors.Is(err, errPrazoInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrStatusDesconhecido):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrOrdemJaEntregue):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrVersaoConflito):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.Logger.Errorw("erro na rota de ordens", "error", err)
		http.Error(w, generico, http.StatusInternalServerError)
	}
}
