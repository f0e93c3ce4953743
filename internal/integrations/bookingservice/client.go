package bookingservice

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
	"time"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BookingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListActivities получает активности за период для набора агентов.
// Ответ приходит сгруппированным agentId → dateKey → slotCode;
// возвращается плоский список доменных активностей
func (c *Client) ListActivities(ctx context.Context, req *ListActivitiesRequest) ([]domain.Activity, error) {
	query := url.Values{}
	query.Set("dateFrom", req.DateFrom.UTC().Format(domain.DateFormat))
	query.Set("durationInDays", strconv.Itoa(req.DurationInDays))
	if len(req.AgentIDs) > 0 {
		query.Set("agentIds", joinIDs(req.AgentIDs))
	}
	if len(req.ProductModelIDs) > 0 {
		query.Set("productModelIds", joinIDs(req.ProductModelIDs))
	}

	endpoint := fmt.Sprintf("%s/internal/activities?%s", c.baseURL, query.Encode())

	var payload ActivitiesResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0)
	for _, byDate := range payload.Activities {
		for _, bySlot := range byDate {
			for _, cell := range bySlot {
				for i := range cell {
					activity, err := cell[i].ToDomain()
					if err != nil {
						return nil, fmt.Errorf("%w: activity id=%d: %v", ErrInvalidResponse, cell[i].ID, err)
					}
					activities = append(activities, activity)
				}
			}
		}
	}
	return activities, nil
}

// ListTimeSlots получает справочник временных слотов
func (c *Client) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	endpoint := fmt.Sprintf("%s/internal/time-slots", c.baseURL)

	var payload struct {
		TimeSlots []TimeSlot `json:"timeSlots"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(payload.TimeSlots))
	for i := range payload.TimeSlots {
		slots = append(slots, payload.TimeSlots[i].ToDomain())
	}
	return slots, nil
}

// UpdateActivity выполняет частичное обновление активности.
// Используется координатором перемещений: одна активность — один вызов
func (c *Client) UpdateActivity(ctx context.Context, activityID int64, req *UpdateActivityRequest) error {
	endpoint := fmt.Sprintf("%s/internal/activities/%d", c.baseURL, activityID)

	body, err := json.Marshal(req.payload())
	if err != nil {
		return fmt.Errorf("%w: marshal update payload: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrActivityNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: activity id=%d: %s", ErrUpdateRejected, activityID, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// ListRentalUnits получает средства размещения, доступные группе
// в контексте продукта
func (c *Client) ListRentalUnits(ctx context.Context, groupID, productModelID int64) ([]domain.RentalUnit, error) {
	endpoint := fmt.Sprintf("%s/internal/groups/%d/rental-units?productModelId=%d",
		c.baseURL, groupID, productModelID)

	var payload struct {
		RentalUnits []RentalUnit `json:"rentalUnits"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	units := make([]domain.RentalUnit, 0, len(payload.RentalUnits))
	for i := range payload.RentalUnits {
		units = append(units, payload.RentalUnits[i].ToDomain())
	}
	return units, nil
}

// GetProductModel получает продукт по ID
func (c *Client) GetProductModel(ctx context.Context, productModelID int64) (*domain.ProductModel, error) {
	endpoint := fmt.Sprintf("%s/internal/product-models/%d", c.baseURL, productModelID)

	var payload ProductModel
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	model := payload.ToDomain()
	return &model, nil
}

// CreateRentalUnitAssignment создает назначение средства размещения группе
func (c *Client) CreateRentalUnitAssignment(ctx context.Context, req *CreateRentalUnitAssignmentRequest) error {
	endpoint := fmt.Sprintf("%s/internal/rental-unit-assignments", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: marshal assignment payload: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return ErrGroupNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unit id=%d: %s", ErrUpdateRejected, req.RentalUnitID, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// getJSON выполняет GET запрос и декодирует ответ
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
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
		return c.notFoundError(endpoint)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// notFoundError подбирает sentinel-ошибку по виду endpoint-а
func (c *Client) notFoundError(endpoint string) error {
	switch {
	case strings.Contains(endpoint, "/product-models/"):
		return ErrProductModelNotFound
	case strings.Contains(endpoint, "/groups/"):
		return ErrGroupNotFound
	default:
		return ErrActivityNotFound
	}
}

// joinIDs сериализует список ID в значение query-параметра
func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}
