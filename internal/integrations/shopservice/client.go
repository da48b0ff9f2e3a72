package shopservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ShopService (салоны, процедуры, владельцы)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ShopService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetShop получает салон по ID вместе с недельным расписанием работы
// и идентификатором владельца
func (c *Client) GetShop(ctx context.Context, shopID string) (*Shop, error) {
	endpoint := fmt.Sprintf("%s/internal/shops/%s", c.baseURL, url.PathEscape(shopID))

	var shop Shop
	if err := c.getJSON(ctx, endpoint, &shop, ErrShopNotFound); err != nil {
		return nil, err
	}

	return &shop, nil
}

// GetTreatment получает процедуру по ID (включая салон и длительность)
func (c *Client) GetTreatment(ctx context.Context, treatmentID string) (*Treatment, error) {
	endpoint := fmt.Sprintf("%s/internal/treatments/%s", c.baseURL, url.PathEscape(treatmentID))

	var treatment Treatment
	if err := c.getJSON(ctx, endpoint, &treatment, ErrTreatmentNotFound); err != nil {
		return nil, err
	}

	return &treatment, nil
}

// getJSON выполняет GET запрос и декодирует ответ.
// notFoundErr возвращается на 404 от сервиса.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
