package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config явная конфигурация клиента шлюза.
// Учётные данные внедряются при создании, клиент не читает окружение.
type Config struct {
	BaseURL           string
	AccessToken       string
	FrontendURL       string
	NotificationURL   string
	Currency          string
	DefaultPayerEmail string
	Sandbox           bool
	Timeout           time.Duration
}

// Client клиент для работы с Mercado Pago
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Mercado Pago
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// PaymentURL возвращает ссылку на оплату с учётом режима sandbox
func (c *Client) PaymentURL(pref *Preference) string {
	if c.cfg.Sandbox {
		return pref.SandboxInitPoint
	}
	return pref.InitPoint
}

// PayerEmail возвращает email плательщика или сконфигурированный дефолт
func (c *Client) PayerEmail(email string) string {
	if email != "" {
		return email
	}
	return c.cfg.DefaultPayerEmail
}

// BuildPreferenceRequest собирает платёжный запрос для брони
func (c *Client) BuildPreferenceRequest(title string, unitPrice string, payerEmail string, externalReference string) *PreferenceRequest {
	statusURL := c.cfg.FrontendURL + "/checkout/status"

	return &PreferenceRequest{
		Items: []PreferenceItem{
			{
				Title:      title,
				Quantity:   1,
				CurrencyID: c.cfg.Currency,
				UnitPrice:  json.Number(unitPrice),
			},
		},
		Payer: PreferencePayer{Email: c.PayerEmail(payerEmail)},
		BackURLs: BackURLs{
			Success: statusURL,
			Failure: statusURL,
			Pending: statusURL,
		},
		AutoReturn:        "approved",
		ExternalReference: externalReference,
		NotificationURL:   c.cfg.NotificationURL,
	}
}

// CreatePreference создает платёжную preference в шлюзе
func (c *Client) CreatePreference(ctx context.Context, prefReq *PreferenceRequest) (*Preference, error) {
	url := c.cfg.BaseURL + "/checkout/preferences"

	body, err := json.Marshal(prefReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal preference request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrPreferenceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrPreferenceFailed, resp.StatusCode, string(respBody))
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if pref.ID == "" {
		return nil, fmt.Errorf("%w: empty preference id", ErrPreferenceFailed)
	}

	c.log.Info("CreatePreference: created preference id=%s for external_reference=%s",
		pref.ID, prefReq.ExternalReference)

	return &pref, nil
}

// GetPayment получает данные платежа из шлюза по его идентификатору
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.cfg.BaseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var info PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &info, nil
}
