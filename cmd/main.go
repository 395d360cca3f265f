package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ReparoFacil/api-ordens/internal/auth"
	"github.com/ReparoFacil/api-ordens/internal/catalogo"
	"github.com/ReparoFacil/api-ordens/internal/cliente"
	"github.com/ReparoFacil/api-ordens/internal/config"
	"github.com/ReparoFacil/api-ordens/internal/contador"
	"github.com/ReparoFacil/api-ordens/internal/entrega"
	"github.com/ReparoFacil/api-ordens/internal/garantia"
	"github.com/ReparoFacil/api-ordens/internal/historico"
	"github.com/ReparoFacil/api-ordens/internal/notificacao"
	"github.com/ReparoFacil/api-ordens/internal/ordem"
	"github.com/ReparoFacil/api-ordens/internal/status"
	"github.com/ReparoFacil/api-ordens/internal/tecnico"
	"github.com/ReparoFacil/api-ordens/internal/utils/db"
	"github.com/ReparoFacil/api-ordens/internal/venda"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("erro ao ler configuração", "error", err)
	}

	database, err := db.ConnectDataBase(cfg.DBPort, cfg.DBHost, cfg.DBName, cfg.DBUser, cfg.DBPassword, cfg.DBSSLDisable)
	if err != nil {
		sugar.Fatalw("erro ao conectar no banco", "error", err)
	}

	if err := database.AutoMigrate(
		&status.StatusDefinicao{},
		&cliente.Cliente{},
		&tecnico.Tecnico{},
		&garantia.TermoGarantia{},
		&catalogo.ProdutoServico{},
		&ordem.OrdemServico{},
		&ordem.ItemOrdem{},
		&historico.StatusHistorico{},
		&venda.Venda{},
		&contador.Contador{},
	); err != nil {
		sugar.Fatalw("erro no AutoMigrate", "error", err)
	}
	if err := status.SeedFixos(database); err != nil {
		sugar.Fatalw("erro ao semear status fixos", "error", err)
	}

	emissor := notificacao.NovoEmissor(cfg.WebhookURL, sugar)

	// Handlers
	statusHandler := status.NewHandler(database)
	garantiaHandler := garantia.NewHandler(database)
	catalogoHandler := catalogo.NewHandler(database)
	ordemHandler := ordem.NewHandler(database, sugar, emissor, cfg.LegadoDualWrite)
	entregaHandler := entrega.NewHandler(entrega.NewService(database, sugar), emissor)
	vendaHandler := venda.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(auth.MiddlewareAutenticacao(cfg.JWTSecret))

	// Rotas do registro de status
	r.HandleFunc("/status", statusHandler.Listar).Methods("GET")
	r.HandleFunc("/status", statusHandler.Criar).Methods("POST")
	r.HandleFunc("/status/reordenar", statusHandler.Reordenar).Methods("PUT")
	r.HandleFunc("/status/{id}", statusHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/status/{id}", statusHandler.Deletar).Methods("DELETE")

	// Rotas de apoio
	r.HandleFunc("/termos-garantia", garantiaHandler.Listar).Methods("GET")
	r.HandleFunc("/catalogo", catalogoHandler.Listar).Methods("GET")
	r.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")

	// Rotas de ordens de serviço
	r.HandleFunc("/ordens", ordemHandler.Criar).Methods("POST")
	r.HandleFunc("/ordens", ordemHandler.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}", ordemHandler.Buscar).Methods("GET")
	r.HandleFunc("/ordens/{id}", ordemHandler.Atualizar).Methods("PATCH")
	r.HandleFunc("/ordens/{id}/status", ordemHandler.MudarStatus).Methods("PATCH")
	r.HandleFunc("/ordens/{id}/status-tecnico", ordemHandler.MudarStatusTecnico).Methods("PATCH")
	r.HandleFunc("/ordens/{id}/tecnico", ordemHandler.MudarTecnico).Methods("PATCH")
	r.HandleFunc("/ordens/{id}/historico", ordemHandler.ListarHistorico).Methods("GET")

	// Itens da ordem
	r.HandleFunc("/ordens/{id}/itens", ordemHandler.AdicionarItem).Methods("POST")
	r.HandleFunc("/ordens/{id}/itens/{itemId}", ordemHandler.EditarItem).Methods("PUT")
	r.HandleFunc("/ordens/{id}/itens/{itemId}", ordemHandler.RemoverItem).Methods("DELETE")
	r.HandleFunc("/ordens/{id}/itens/{itemId}/quantidade", ordemHandler.MudarQuantidade).Methods("PATCH")

	// Entrega
	r.HandleFunc("/ordens/{id}/entrega", entregaHandler.Entregar).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sugar.Infow("servidor iniciado", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("servidor encerrado com erro", "error", err)
	}
	sugar.Info("servidor encerrado")
}
