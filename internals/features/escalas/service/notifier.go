// file: internals/features/escalas/service/notifier.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

/* =======================================================
   Colaborador externo de notificação (WhatsApp/SMS fica do
   lado de fora). Disparado fire-and-forget após a publicação:
   falha aqui NUNCA falha o publish — só loga.
   ======================================================= */

type NotificacaoEscalado struct {
	VoluntarioNome string  `json:"voluntario_nome"`
	Telefone       *string `json:"telefone,omitempty"`
	SlotTitulo     string  `json:"slot_titulo"`
	Data           string  `json:"data"`
	Hora           string  `json:"hora"`
	Funcao         string  `json:"funcao"`
}

type EscalaPublicadaNotificacao struct {
	LinkTitulo string                `json:"link_titulo"`
	Ministerio string                `json:"ministerio"`
	Mes        int                   `json:"mes"`
	Ano        int                   `json:"ano"`
	Escalados  []NotificacaoEscalado `json:"escalados"`
}

type Notificador interface {
	EscalaPublicada(ctx context.Context, msg EscalaPublicadaNotificacao) error
}

/* =======================================================
   Implementações
   ======================================================= */

// LogNotificador só registra; útil em dev e como fallback.
type LogNotificador struct{}

func (LogNotificador) EscalaPublicada(ctx context.Context, msg EscalaPublicadaNotificacao) error {
	log.Printf("📣 Escala publicada: %s (%s %02d/%d) — %d escalados",
		msg.LinkTitulo, msg.Ministerio, msg.Mes, msg.Ano, len(msg.Escalados))
	return nil
}

// WebhookNotificador entrega o payload para o serviço de mensageria
// via POST JSON. O status de entrega serve apenas para log.
type WebhookNotificador struct {
	URL    string
	Client *http.Client
}

func NewWebhookNotificador(url string) *WebhookNotificador {
	return &WebhookNotificador{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotificador) EscalaPublicada(ctx context.Context, msg EscalaPublicadaNotificacao) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("webhook de notificação respondeu %d", res.StatusCode)
	}
	return nil
}
