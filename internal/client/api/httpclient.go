package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/common"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/logging"
)

// HTTPClient implements Remote over JSON/HTTP. Every call is a fresh round
// trip with an explicit timeout; there are no retries and no caching.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  *TokenStore
	timeout time.Duration
	log     logging.Logger
}

var _ Remote = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the backend at baseURL. The token store
// is shared with the session, which writes it on login and logout.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens *TokenStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		timeout: timeout,
		log:     log.With("component", "api"),
	}
}

// do issues one request against baseURL+endpoint. body (if non-nil) is JSON
// encoded; a 2xx response body is decoded into out (if non-nil). Transport
// failures come back wrapped in common.ErrUnavailable, non-2xx statuses as
// *Error. Never panics.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp.StatusCode, data)
		c.log.Debug(ctx, "request rejected", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Auth endpoints.

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisteredUser, error) {
	var out models.RegisteredUser
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := models.ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/auth/change-password", req, nil)
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Appointment endpoints.

func (c *HTTPClient) GetAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) RescheduleAppointment(ctx context.Context, id int64, update *models.AppointmentUpdate) (*models.Appointment, error) {
	var out models.Appointment
	endpoint := fmt.Sprintf("/appointments/%d/reschedule", id)
	if err := c.do(ctx, http.MethodPut, endpoint, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) StartConsultation(ctx context.Context, id int64) (*models.Appointment, error) {
	var out models.Appointment
	endpoint := fmt.Sprintf("/appointments/%d/start-consultation", id)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lab endpoints.

func (c *HTTPClient) GetLabTests(ctx context.Context) ([]models.LabTest, error) {
	var out []models.LabTest
	if err := c.do(ctx, http.MethodGet, "/lab/tests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateTestStatus(ctx context.Context, id int64, status string) (*models.LabTest, error) {
	var out models.LabTest
	endpoint := fmt.Sprintf("/lab/tests/%d/status", id)
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	if err := c.do(ctx, http.MethodPut, endpoint, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GenerateTestReport(ctx context.Context, id int64) (*models.LabReport, error) {
	var out models.LabReport
	endpoint := fmt.Sprintf("/lab/tests/%d/generate-report", id)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hospital endpoints.

func (c *HTTPClient) GetHospitals(ctx context.Context) ([]models.Hospital, error) {
	var out []models.Hospital
	if err := c.do(ctx, http.MethodGet, "/hospitals/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ApproveHospital(ctx context.Context, id int64) (*models.Hospital, error) {
	var out models.Hospital
	endpoint := fmt.Sprintf("/hospitals/%d/approve", id)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RejectHospital(ctx context.Context, id int64, reason string) (*models.Hospital, error) {
	var out models.Hospital
	endpoint := fmt.Sprintf("/hospitals/%d/reject", id)
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	if err := c.do(ctx, http.MethodPost, endpoint, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pharmacy endpoints.

func (c *HTTPClient) GetMedicines(ctx context.Context) ([]models.Medicine, error) {
	var out []models.Medicine
	if err := c.do(ctx, http.MethodGet, "/pharmacy/medicines", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ToggleMedicineAvailability(ctx context.Context, id int64) (*models.Medicine, error) {
	var out models.Medicine
	endpoint := fmt.Sprintf("/pharmacy/medicines/%d/toggle-availability", id)
	if err := c.do(ctx, http.MethodPut, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ExportPharmacyData(ctx context.Context) (*models.PharmacyExport, error) {
	var out models.PharmacyExport
	if err := c.do(ctx, http.MethodPost, "/pharmacy/export-data", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes GET /health.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
