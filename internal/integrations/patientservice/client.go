package patientservice

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
	Error(format string, v ...interface{})
}

// Client клиент для работы с PatientService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PatientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPatient получает карточку пациента по ID
func (c *Client) GetPatient(ctx context.Context, patientID int64) (*Patient, error) {
	url := fmt.Sprintf("%s/internal/patients/%d", c.baseURL, patientID)

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
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid patient ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPatientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var patient Patient
	if err := json.NewDecoder(resp.Body).Decode(&patient); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &patient, nil
}

// GetPatientWithGracefulDegradation получает карточку пациента с graceful degradation
// При недоступности PatientService возвращает ErrServiceDegraded, что позволяет
// usecase создать приём с контактными данными из черновика
func (c *Client) GetPatientWithGracefulDegradation(ctx context.Context, patientID int64) (*Patient, error) {
	c.log.Info("Fetching patient for patient_id=%d", patientID)

	patient, err := c.GetPatient(ctx, patientID)
	if err != nil {
		// Критичная бизнес-ошибка (пациент не найден) пробрасывается дальше
		if err == ErrPatientNotFound {
			c.log.Info("No patient found for patient_id=%d", patientID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("PatientService unavailable, applying graceful degradation for patient_id=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: patient_id=%d, error=%v", ErrServiceDegraded, patientID, err)
	}

	c.log.Info("Successfully fetched patient for patient_id=%d", patientID)
	return patient, nil
}
