package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/fieldalias"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент каталогов мастер-данных (залы, слоты, типы мероприятий, клиенты)
// Сервис отдаёт сырые легаси-строки; поля разрешаются через списки псевдонимов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента мастер-данных
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHalls возвращает каталог залов
func (c *Client) GetHalls(ctx context.Context) ([]domain.Hall, error) {
	rows, err := c.fetchRows(ctx, "/internal/catalog/halls")
	if err != nil {
		return nil, err
	}

	halls := make([]domain.Hall, 0, len(rows))
	for _, row := range rows {
		id, ok := fieldalias.FirstInt64(row, hallIDAliases...)
		if !ok {
			c.log.Warn("GetHalls: skipping hall row without id")
			continue
		}
		halls = append(halls, domain.Hall{
			ID:       id,
			Name:     fieldalias.First(row, hallNameAliases...),
			Location: fieldalias.First(row, hallLocationAliases...),
			Active:   parseActive(fieldalias.First(row, hallActiveAliases...)),
		})
	}

	return halls, nil
}

// GetSlots возвращает каталог слотов в порядке каталога
// Пустой каталог - валидный ответ: вызывающая сторона переходит на
// фиксированные легаси-периоды дня
func (c *Client) GetSlots(ctx context.Context) ([]domain.Slot, error) {
	rows, err := c.fetchRows(ctx, "/internal/catalog/slots")
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(rows))
	for _, row := range rows {
		id, ok := fieldalias.FirstInt64(row, slotIDAliases...)
		if !ok {
			c.log.Warn("GetSlots: skipping slot row without id")
			continue
		}

		start, err := types.NewTimeStringFromString(normalizeClock(fieldalias.First(row, slotStartAliases...)))
		if err != nil {
			c.log.Warn("GetSlots: skipping slot id=%d with bad start time: %v", id, err)
			continue
		}
		end, err := types.NewTimeStringFromString(normalizeClock(fieldalias.First(row, slotEndAliases...)))
		if err != nil {
			c.log.Warn("GetSlots: skipping slot id=%d with bad end time: %v", id, err)
			continue
		}

		slots = append(slots, domain.Slot{
			ID:        id,
			Name:      fieldalias.First(row, slotNameAliases...),
			StartTime: start,
			EndTime:   end,
		})
	}

	return slots, nil
}

// GetEventTypes возвращает каталог типов мероприятий
func (c *Client) GetEventTypes(ctx context.Context) ([]domain.EventType, error) {
	rows, err := c.fetchRows(ctx, "/internal/catalog/event-types")
	if err != nil {
		return nil, err
	}

	eventTypes := make([]domain.EventType, 0, len(rows))
	for _, row := range rows {
		id, ok := fieldalias.FirstInt64(row, eventTypeIDAliases...)
		if !ok {
			continue
		}
		eventTypes = append(eventTypes, domain.EventType{
			ID:   id,
			Name: fieldalias.First(row, eventTypeNameAliases...),
		})
	}

	return eventTypes, nil
}

// GetCustomer возвращает клиента по id
func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	url := fmt.Sprintf("%s/internal/catalog/customers/%d", c.baseURL, customerID)

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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	row := rowFromRaw(raw)
	id, ok := fieldalias.FirstInt64(row, customerIDAliases...)
	if !ok {
		return nil, fmt.Errorf("%w: customer row without id", ErrInvalidResponse)
	}

	return &domain.Customer{
		ID:    id,
		Name:  fieldalias.First(row, customerNameAliases...),
		Phone: fieldalias.First(row, customerPhoneAliases...),
	}, nil
}

// fetchRows выполняет GET и декодирует массив сырых строк
func (c *Client) fetchRows(ctx context.Context, path string) ([]fieldalias.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
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

	var raw []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	rows := make([]fieldalias.Row, len(raw))
	for i, r := range raw {
		rows[i] = rowFromRaw(r)
	}

	return rows, nil
}

// rowFromRaw приводит декодированный JSON-объект к строковой записи
// Числа в легаси-выгрузках приходят и числами, и строками
func rowFromRaw(raw map[string]interface{}) fieldalias.Row {
	row := make(fieldalias.Row, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			row[k] = val
		case float64:
			row[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			row[k] = strconv.FormatBool(val)
		default:
			row[k] = fmt.Sprint(val)
		}
	}
	return row
}

// parseActive трактует исторические варианты флага активности
func parseActive(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "active", "y":
		return true
	default:
		return false
	}
}

// normalizeClock обрезает секунды в "HH:MM:SS"
func normalizeClock(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
