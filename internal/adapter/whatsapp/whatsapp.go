// Package whatsapp talks to the WhatsApp Business Cloud API and builds wa.me links.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/domain"
)

// Client sends text messages from the store's business number.
type Client struct {
	http          *resty.Client
	phoneNumberID string
	configured    bool
}

type textMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func New(cfg config.WhatsAppConfig) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:          rc,
		phoneNumberID: cfg.PhoneNumberID,
		configured:    cfg.Token != "" && cfg.PhoneNumberID != "",
	}
}

// SendMessage delivers text to a Brazilian phone number given as digits.
func (c *Client) SendMessage(ctx context.Context, phone, text string) error {
	if !c.configured {
		return fmt.Errorf("whatsapp is not configured")
	}

	var failure apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("phoneNumberID", c.phoneNumberID).
		SetBody(textMessage{
			MessagingProduct: "whatsapp",
			To:               domain.WhatsAppNumber(phone),
			Type:             "text",
			Text:             textBody{Body: text},
		}).
		SetError(&failure).
		Post("/{phoneNumberID}/messages")
	if err != nil {
		return fmt.Errorf("http.Post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp status=%d code=%d: %s", resp.StatusCode(), failure.Error.Code, failure.Error.Message)
	}

	return nil
}

// ChatLink returns a wa.me link opening a chat with phone prefilled with text.
func ChatLink(phone, text string) string {
	link := "https://wa.me/" + domain.WhatsAppNumber(domain.OnlyDigits(phone))
	if text == "" {
		return link
	}
	// encodeURIComponent style, wa.me does not decode '+' as a space everywhere
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// LinkHandoff completes a checkout by opening a chat with the store.
type LinkHandoff struct {
	storePhone string
	open       func(link string) error
}

// NewLinkHandoff builds a checkout channel. open receives the wa.me link, e.g. to print it.
func NewLinkHandoff(storePhone string, open func(link string) error) (*LinkHandoff, error) {
	if domain.OnlyDigits(storePhone) == "" {
		return nil, fmt.Errorf("store phone is empty")
	}
	if open == nil {
		return nil, fmt.Errorf("open is nil")
	}

	return &LinkHandoff{storePhone: storePhone, open: open}, nil
}

func (h *LinkHandoff) Handoff(_ context.Context, summary string) error {
	if err := h.open(ChatLink(h.storePhone, summary)); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	return nil
}
