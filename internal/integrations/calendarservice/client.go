package calendarservice

import (
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

// MonthRow лёгкая строка проекции занятости: (зал, дата, слот) без деталей
// бронирования. slotId = -1 означает "занят весь день"
type MonthRow struct {
	HallID    int64  `json:"hallId"`
	Date      string `json:"date"` // YYYY-MM-DD
	SlotID    int64  `json:"slotId"`
	BookingID int64  `json:"bookingId"`
}

// Client клиент read-проекции месячной сетки занятости
// Проекция предзаполняет месячный календарь без полной детализации бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента проекции
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMonth возвращает строки занятости месяца для зала
func (c *Client) GetMonth(ctx context.Context, scope string, year, month int, hallID int64) ([]MonthRow, error) {
	url := fmt.Sprintf("%s/internal/calendar/%s/%04d/%02d?hallId=%d", c.baseURL, scope, year, month, hallID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rows []MonthRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return rows, nil
}
