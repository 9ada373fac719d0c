package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const (
	leadsPath           = "/api/analytics/leads"
	followupLeadsPath   = "/api/analytics/leads/followup"
	advogadosPath       = "/api/analytics/advogados"
	dashboardPath       = "/api/analytics/dashboard/summary"
	healthPath          = "/api/analytics/health"
	previewFollowupPath = "/api/v1/whatsapp/preview-followup/"
	massFollowupPath    = "/api/v1/whatsapp/send-mass-followup"
)

// Client fala com o backend de analytics. Sem retry e sem cache: cada chamada
// vai ao backend e o erro volta para quem chamou.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	onError func(endpoint string)
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithErrorHook é chamado a cada requisição que falhou (métricas).
func WithErrorHook(fn func(endpoint string)) Option {
	return func(c *Client) { c.onError = fn }
}

func NewClient(baseURL string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestOptions struct {
	method  string
	body    any
	headers http.Header
}

// doRequest é o helper genérico: erro de rede/HTTP vira NetworkError,
// success:false vira APIError, o resto volta decodificado como veio.
func doRequest[T any](ctx context.Context, c *Client, endpoint string, opts *requestOptions) (*T, error) {
	out, err := send[T](ctx, c, endpoint, opts)
	if err != nil {
		c.logger.Error("❌ Erro na requisição",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		if c.onError != nil {
			c.onError(endpoint)
		}
		return nil, err
	}
	return out, nil
}

func send[T any](ctx context.Context, c *Client, endpoint string, opts *requestOptions) (*T, error) {
	if opts == nil {
		opts = &requestOptions{}
	}
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.body != nil {
		payload, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar payload: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range opts.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{StatusCode: resp.StatusCode, StatusText: statusText(resp), Err: err}
	}

	var probe envelopeProbe
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("resposta inválida: %w", err)
		}
	}
	if probe.Success != nil && !*probe.Success {
		msg := probe.Message
		if msg == "" {
			msg = DefaultAPIErrorMessage
		}
		return nil, &APIError{Message: msg}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("resposta inválida: %w", err)
	}
	return &out, nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// GetLeads: GET /api/analytics/leads com filtros opcionais.
func (c *Client) GetLeads(ctx context.Context, filters entity.LeadFilters) ([]entity.Lead, error) {
	endpoint := leadsPath
	if qs := LeadsQuery(filters); qs != "" {
		endpoint += "?" + qs
	}

	resp, err := doRequest[Envelope[[]entity.Lead]](ctx, c, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.normalizeLeads(endpoint, resp.Data)
	return resp.Data, nil
}

// normalizeLeads troca enums ausentes ou desconhecidos pela variante
// desconhecida e só avisa no log; a lista volta inteira.
func (c *Client) normalizeLeads(endpoint string, leads []entity.Lead) {
	for i := range leads {
		if leads[i].Normalize() {
			c.logger.Warn("⚠️ Lead com campo enumerado desconhecido",
				zap.String("endpoint", endpoint),
				zap.String("lead_id", leads[i].ID),
			)
		}
	}
}

// LeadsQuery serializa só os filtros presentes, sempre na mesma ordem
// (start_date, end_date, status, advogado_id, limit). url.Values ordenaria as chaves.
func LeadsQuery(f entity.LeadFilters) string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
		}
	}

	add("start_date", f.StartDate)
	add("end_date", f.EndDate)
	add("status", f.Status)
	add("advogado_id", f.AdvogadoID)
	if f.Limit > 0 {
		add("limit", strconv.Itoa(f.Limit))
	}
	return strings.Join(parts, "&")
}

// GetFollowupLeads devolve os leads e o total_followups do envelope.
func (c *Client) GetFollowupLeads(ctx context.Context) ([]entity.Lead, int, error) {
	resp, err := doRequest[FollowupEnvelope](ctx, c, followupLeadsPath, nil)
	if err != nil {
		return nil, 0, err
	}
	c.normalizeLeads(followupLeadsPath, resp.Data)
	return resp.Data, resp.TotalFollowups, nil
}

func (c *Client) GetAdvogados(ctx context.Context) ([]entity.Advogado, error) {
	resp, err := doRequest[Envelope[[]entity.Advogado]](ctx, c, advogadosPath, nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	resp, err := doRequest[Envelope[entity.DashboardSummary]](ctx, c, dashboardPath, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CheckHealth nunca falha: qualquer erro vira false e não é logado.
func (c *Client) CheckHealth(ctx context.Context) bool {
	resp, err := send[HealthResponse](ctx, c, healthPath, nil)
	if err != nil {
		return false
	}
	return resp.Status == "healthy"
}

// PreviewFollowup lista quem receberia o follow-up do segmento.
func (c *Client) PreviewFollowup(ctx context.Context, segment entity.Segment) (*entity.FollowupPreview, error) {
	endpoint := previewFollowupPath + url.PathEscape(string(segment))

	resp, err := doRequest[previewResponse](ctx, c, endpoint, nil)
	if err != nil {
		return nil, err
	}
	preview := resp.preview()
	if preview.TipoLead == "" {
		preview.TipoLead = segment
	}
	return &preview, nil
}

// SendMassFollowup dispara o envio em massa; o backend só responde ao terminar.
func (c *Client) SendMassFollowup(ctx context.Context, input entity.MassFollowupRequest) (*entity.MassFollowupResult, error) {
	resp, err := doRequest[massFollowupResponse](ctx, c, massFollowupPath, &requestOptions{
		method: http.MethodPost,
		body:   input,
	})
	if err != nil {
		return nil, err
	}
	result := resp.result()
	return &result, nil
}
