package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/config"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

// endpoints de atualização do dashboard por fonte
var endpoints = map[domain.Source]string{
	domain.SourceML:     "/api/vendas/notificar-atualizacao",
	domain.SourceMagalu: "/api/vendas/notificar-atualizacao",
	domain.SourceStock:  "/api/estoque/notificar-atualizacao",
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	enabled    bool
}

func NewClient(cfg config.Dashboard) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.URL,
		enabled: cfg.Enabled,
	}
}

// Notify avisa o dashboard que os dados da fonte mudaram
func (c *Client) Notify(ctx context.Context, source domain.Source) error {
	if !c.enabled {
		return nil
	}

	route, ok := endpoints[source]
	if !ok {
		return fmt.Errorf("fonte sem endpoint de notificação: %s", source)
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, route)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	logrus.WithFields(logrus.Fields{
		"source":   source,
		"endpoint": endpoint.String(),
	}).Debug("Dashboard notificado")

	return nil
}
