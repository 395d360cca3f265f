package notificacao

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ReparoFacil/api-ordens/internal/status"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Emissor publica transições de status para o serviço de notificações via
// webhook. Falhas de entrega são logadas e nunca desfazem a transição que as
// originou; a retentativa fica por conta do cliente HTTP e do consumidor.
type Emissor struct {
	url    string
	client *retryablehttp.Client
	logger *zap.SugaredLogger
}

func NovoEmissor(url string, logger *zap.SugaredLogger) *Emissor {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &Emissor{url: url, client: client, logger: logger}
}

// Publicar registra a transição e, quando o novo status dispara uma
// notificação, envia o evento ao webhook. Fire-and-forget: o chamador não
// espera nem vê erros de entrega.
func (e *Emissor) Publicar(ctx context.Context, t Transicao) {
	e.logger.Infow("transição de status",
		"evento", t.ID,
		"empresa", t.EmpresaID,
		"ordem", t.OrdemID,
		"de", t.De,
		"para", t.Para,
		"usuario", t.UsuarioNome,
	)

	tipo, ok := TipoParaStatus(status.Normalizar(t.Para))
	if !ok || e.url == "" {
		return
	}

	ev := Evento{
		EmpresaID: t.EmpresaID,
		Tipo:      tipo,
		OrdemID:   t.OrdemID,
		Mensagem:  mensagemDoEvento(tipo, t.NumeroOS),
	}

	go e.enviar(ev, t.ID)
}

func (e *Emissor) enviar(ev Evento, eventoID interface{}) {
	body, err := json.Marshal(ev)
	if err != nil {
		e.logger.Errorw("erro ao serializar evento de notificação", "evento", eventoID, "error", err)
		return
	}
	req, err := retryablehttp.NewRequest("POST", e.url, bytes.NewReader(body))
	if err != nil {
		e.logger.Errorw("erro ao montar requisição de notificação", "evento", eventoID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Errorw("erro ao enviar webhook de notificação", "evento", eventoID, "tipo", ev.Tipo, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		e.logger.Errorw("webhook de notificação recusado", "evento", eventoID, "tipo", ev.Tipo, "status", resp.StatusCode)
	}
}
