package remote

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"siesta/config"
	"siesta/infras/jwt"
	"siesta/infras/otel"
	"siesta/shared/constant"
	"siesta/shared/failure"
	"siesta/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	pathBatchCreate = "/v1/bookings/batch"
	pathCheckout    = "/v1/bookings/checkout"
	pathSettings    = "/v1/settings"
	pathTiers       = "/v1/pricing-tiers"
	pathReconcile   = "/v1/bookings/reconcile"
)

// Client talks to the authoritative remote booking service. All calls have a
// bounded timeout and are safe to repeat: the create endpoint answers conflict
// for an already-known booking id, which callers here see as success.
type Client interface {
	CreateBookings(ctx context.Context, bookings []Booking) error
	CheckoutBooking(ctx context.Context, checkout Checkout) error
	FetchSettings(ctx context.Context, adminID string) (Settings, error)
	FetchTiers(ctx context.Context, adminID string) ([]Tier, error)
	FetchCompleted(ctx context.Context, adminID, workerID string) ([]Completion, error)
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	jwt        jwt.JWT
	config     *config.Config
	otel       otel.Otel
}

func New(cfg *config.Config, tokens jwt.JWT, ot otel.Otel) Client {
	timeout := cfg.Remote.TimeoutSeconds
	if timeout == 0 {
		timeout = constant.DefaultRemoteCallTimeoutSeconds
	}

	return &clientImpl{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:    cfg.Remote.BaseURL,
		jwt:        tokens,
		config:     cfg,
		otel:       ot,
	}
}

func (c *clientImpl) CreateBookings(ctx context.Context, bookings []Booking) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRemoteScopeName, constant.OtelRemoteScopeName+".CreateBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("batch_size", len(bookings))

	resp, err := c.post(ctx, pathBatchCreate, bookings)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The remote answers conflict when every record of the batch is already
	// known; a retried batch is then complete, not failed.
	if resp.StatusCode == http.StatusConflict {
		log.Info().Int("count", len(bookings)).Msg("remote already knows batch, treating as accepted")

		return nil
	}

	return c.checkStatus(resp)
}

func (c *clientImpl) CheckoutBooking(ctx context.Context, checkout Checkout) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRemoteScopeName, constant.OtelRemoteScopeName+".CheckoutBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking_id", checkout.BookingID)

	resp, err := c.post(ctx, pathCheckout, checkout)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *clientImpl) FetchSettings(ctx context.Context, adminID string) (settings Settings, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRemoteScopeName, constant.OtelRemoteScopeName+".FetchSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	resp, err := c.get(ctx, pathSettings, adminID)
	if err != nil {
		return settings, err
	}
	defer resp.Body.Close()

	if err = c.checkStatus(resp); err != nil {
		return settings, err
	}

	if err = validator.ValidateResponse(resp.Body, resp.StatusCode, &settings); err != nil {
		return settings, err //nolint:wrapcheck
	}

	return settings, nil
}

func (c *clientImpl) FetchTiers(ctx context.Context, adminID string) (tiers []Tier, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRemoteScopeName, constant.OtelRemoteScopeName+".FetchTiers")
	defer scope.End()
	defer scope.TraceIfError(err)

	resp, err := c.get(ctx, pathTiers, adminID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err = c.checkStatus(resp); err != nil {
		return nil, err
	}

	if err = decodeList(resp.Body, resp.StatusCode, &tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}

func (c *clientImpl) FetchCompleted(ctx context.Context, adminID, workerID string) (completions []Completion, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRemoteScopeName, constant.OtelRemoteScopeName+".FetchCompleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	resp, err := c.post(ctx, pathReconcile, reconcileRequest{AdminID: adminID, WorkerID: workerID})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err = c.checkStatus(resp); err != nil {
		return nil, err
	}

	if err = decodeList(resp.Body, resp.StatusCode, &completions); err != nil {
		return nil, err
	}

	return completions, nil
}

func (c *clientImpl) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal remote payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build remote request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	return c.do(req)
}

func (c *clientImpl) get(ctx context.Context, path, adminID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build remote request: %w", err)
	}

	req.URL.RawQuery = url.Values{"admin_id": []string{adminID}}.Encode()

	return c.do(req)
}

func (c *clientImpl) do(req *http.Request) (*http.Response, error) {
	token, err := c.jwt.DeviceToken(c.config.App.AdminID, c.config.App.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign device token: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: transient, retried on the next cycle.
		return nil, fmt.Errorf("remote call failed: %w", err)
	}

	return resp, nil
}

func (c *clientImpl) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	log.Error().
		Int("status", resp.StatusCode).
		Str("path", resp.Request.URL.Path).
		Str("body", string(body)).
		Msg("remote rejected request")

	return failure.RemoteRejected(resp.StatusCode, fmt.Sprintf("remote rejected request: %s", resp.Status)) //nolint:wrapcheck
}

// decodeList decodes a flat JSON array response and validates every element.
func decodeList[T any](r io.Reader, code int, list *[]T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(list); err != nil {
		return failure.RemoteRejected(code, fmt.Sprintf("malformed remote response: %v", err)) //nolint:wrapcheck
	}

	for i := range *list {
		if err := validator.ValidateStruct(&(*list)[i]); err != nil {
			return failure.RemoteRejected(code, fmt.Sprintf("invalid remote response element %d: %v", i, err)) //nolint:wrapcheck
		}
	}

	return nil
}
