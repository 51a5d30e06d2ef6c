package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/httpclient"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
)

// Client delivers text messages through a WAHA style WhatsApp gateway.
// When the gateway is not configured Send logs the message and returns
// nil so callers never fail on missing credentials.
type Client interface {
	Send(ctx context.Context, phone string, text string) error
	Configured() bool
}

type client struct {
	cfg    config.WhatsAppConfig
	http   httpclient.Client
	logger *logger.Logger
}

type sendTextRequest struct {
	Session string `json:"session"`
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
}

func NewClient(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) Client {
	return &client{
		cfg:    cfg.WhatsApp,
		http:   http,
		logger: logger,
	}
}

func (c *client) Configured() bool {
	return c.cfg.Configured()
}

func (c *client) Send(ctx context.Context, phone string, text string) error {
	if !c.Configured() {
		c.logger.Infow("whatsapp gateway not configured, skipping send",
			"phone", phone,
			"text_length", len(text),
		)
		return nil
	}

	chatID, err := ChatID(phone)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendTextRequest{
		Session: c.cfg.Session,
		ChatID:  chatID,
		Text:    text,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode gateway payload").
			Mark(ierr.ErrSystem)
	}

	req := &httpclient.Request{
		Method: http.MethodPost,
		URL:    strings.TrimSuffix(c.cfg.GatewayURL, "/") + "/api/sendText",
		Headers: map[string]string{
			"Content-Type": "application/json",
			"X-Api-Key":    c.cfg.APIKey,
		},
		Body: payload,
	}

	resp, err := c.http.Send(ctx, req)
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			if httpErr.StatusCode == http.StatusUnauthorized {
				c.logger.Errorw("whatsapp gateway rejected credentials",
					"status_code", httpErr.StatusCode,
					"chat_id", chatID,
				)
			} else {
				c.logger.Errorw("whatsapp gateway returned error",
					"status_code", httpErr.StatusCode,
					"chat_id", chatID,
					"response", string(httpErr.Response),
				)
			}
		} else {
			c.logger.Errorw("failed to reach whatsapp gateway",
				"chat_id", chatID,
				"error", err,
			)
		}
		return ierr.WithError(err).
			WithHint("Failed to deliver whatsapp message").
			Mark(ierr.ErrHTTPClient)
	}

	c.logger.Debugw("whatsapp message delivered",
		"chat_id", chatID,
		"status_code", resp.StatusCode,
	)
	return nil
}

// NormalizePhone converts an Indonesian phone number to international
// digits only form. A leading "0" becomes "62" and any punctuation or
// spacing is stripped. The country code is never duplicated.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if normalized == "" {
		return "", ierr.NewError("phone number has no digits").
			WithHintf("Cannot normalize phone number %q", phone).
			Mark(ierr.ErrValidation)
	}

	normalized = strings.TrimPrefix(normalized, "0")
	if !strings.HasPrefix(normalized, "62") {
		normalized = "62" + normalized
	}

	return normalized, nil
}

// ChatID builds the gateway chat identifier for a phone number.
func ChatID(phone string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	return normalized + "@c.us", nil
}
