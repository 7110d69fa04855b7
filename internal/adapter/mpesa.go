// Package adapter holds clients for external HTTP services consumed by the
// gallery API. Currently this is the Safaricom Daraja (M-Pesa) API used for
// STK push payments.
package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// PaymentGateway initiates mobile-money payments against an external
// provider.
type PaymentGateway interface {
	InitiateSTKPush(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error)
}

// mpesaGateway is the Daraja-backed implementation of [PaymentGateway].
type mpesaGateway struct {
	client *resty.Client

	consumerKey    string
	consumerSecret string
	shortcode      string
	passkey        string
	callbackURL    string

	// now is injectable for deterministic password derivation in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewMpesaGateway constructs a [PaymentGateway] talking to the Daraja API
// configured in cfg.
func NewMpesaGateway(cfg config.Payments, logger *logger.Logger) PaymentGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &mpesaGateway{
		client:         cli,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		shortcode:      cfg.Shortcode,
		passkey:        cfg.Passkey,
		callbackURL:    cfg.CallbackURL,
		now:            time.Now,
		logger:         logger,
	}
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// InitiateSTKPush runs the two-step Daraja flow: fetch an OAuth access
// token with the consumer credentials, then post the STK push request with
// the time-derived password base64(shortcode + passkey + timestamp).
func (g *mpesaGateway) InitiateSTKPush(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error) {
	log := logger.FromContext(ctx)

	accessToken, err := g.fetchAccessToken(ctx)
	if err != nil {
		log.Err(err).Msg("error fetching daraja access token")
		return models.PaymentResponse{}, err
	}

	timestamp := g.now().Format("20060102150405")
	payload := stkPushPayload{
		BusinessShortCode: g.shortcode,
		Password:          base64.StdEncoding.EncodeToString([]byte(g.shortcode + g.passkey + timestamp)),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount,
		PartyA:            req.PhoneNumber,
		PartyB:            g.shortcode,
		PhoneNumber:       req.PhoneNumber,
		CallBackURL:       g.callbackURL,
		AccountReference:  req.Reference,
		TransactionDesc:   req.Description,
	}

	var result models.PaymentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post("/mpesa/stkpush/v1/processrequest")
	if err != nil {
		return models.PaymentResponse{}, fmt.Errorf("stk push request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.PaymentResponse{}, fmt.Errorf("%w: status %d", ErrPaymentRejected, resp.StatusCode())
	}

	return result, nil
}

func (g *mpesaGateway) fetchAccessToken(ctx context.Context) (string, error) {
	var tokenResp accessTokenResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBasicAuth(g.consumerKey, g.consumerSecret).
		SetQueryParam("grant_type", "client_credentials").
		SetResult(&tokenResp).
		Get("/oauth/v1/generate")
	if err != nil {
		return "", fmt.Errorf("access token request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || tokenResp.AccessToken == "" {
		return "", ErrPaymentUnauthorized
	}

	return tokenResp.AccessToken, nil
}
