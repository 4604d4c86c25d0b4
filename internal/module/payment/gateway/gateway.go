package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

type Charge struct {
	BookingID int64           `json:"booking_id"`
	MethodID  int64           `json:"method_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type Result struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason,omitempty"`
}

// Gateway charges a booking. A declined charge is a Result, not an error.
type Gateway interface {
	Charge(ctx context.Context, charge Charge) (Result, error)
}

type stub struct{}

// NewStub approves every charge.
func NewStub() Gateway {
	return stub{}
}

func (stub) Charge(_ context.Context, _ Charge) (Result, error) {
	return Result{Approved: true, TransactionID: strings.ReplaceAll(uuid.NewString(), "-", "")}, nil
}

type httpGateway struct {
	url    string
	client *circuit.HTTPClient
	log    log.Logger
}

// NewHTTP posts charges to <baseURL>/charges through the circuit breaker client.
func NewHTTP(baseURL string, client *circuit.HTTPClient, log log.Logger) Gateway {
	return &httpGateway{
		url:    strings.TrimRight(baseURL, "/") + "/charges",
		client: client,
		log:    log,
	}
}

func (g *httpGateway) Charge(ctx context.Context, charge Charge) (Result, error) {
	span, ctx := apm.StartSpan(ctx, "POST payment-gateway/charges", "external.http")
	defer span.End()

	body, err := json.Marshal(charge)
	if err != nil {
		return Result{}, errors.InternalServerError("error encode charge")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.InternalServerError("error build charge request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error(ctx, "error call payment gateway", err)
		apm.CaptureError(ctx, err).Send()
		return Result{}, errors.ServiceUnavailable("payment gateway is unavailable, try again later")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		g.log.Error(ctx, fmt.Sprintf("payment gateway answered %d", resp.StatusCode))
		return Result{}, errors.ServiceUnavailable("payment gateway is unavailable, try again later")
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		g.log.Error(ctx, "error decode payment gateway response", err)
		return Result{}, errors.InternalServerError("error decode payment gateway response")
	}

	if result.TransactionID == "" {
		result.TransactionID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return result, nil
}
