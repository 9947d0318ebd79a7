package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"unicode/utf8"
)

// Discord caps plain webhook content at 2000 characters and embed
// descriptions at 4096; the embed limit is held at 4000 to match the other
// alert channels.
const (
	maxContentLength = 2000
	maxEmbedLength   = 4000

	embedColor  = 0x4CAF50
	embedFooter = "Option Scanner Pro"
)

// Client posts alert messages to a Discord channel through a webhook.
type Client struct {
	WebhookURL string

	client *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		WebhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientFromEnv builds a client from DISCORD_WEBHOOK_URL.
func NewClientFromEnv() (*Client, error) {
	webhookURL := os.Getenv("DISCORD_WEBHOOK_URL")
	if webhookURL == "" {
		return nil, fmt.Errorf("NewClientFromEnv: DISCORD_WEBHOOK_URL not set")
	}

	return NewClient(webhookURL), nil
}

type embed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Footer      embedFooterDTO `json:"footer"`
}

type embedFooterDTO struct {
	Text string `json:"text"`
}

// SendMessage posts msg as plain webhook content, truncated to the Discord
// content limit.
func (c *Client) SendMessage(msg string) error {
	payload := map[string]interface{}{
		"content": truncate(msg, maxContentLength),
	}

	if err := c.post(payload); err != nil {
		return fmt.Errorf("SendMessage: %w", err)
	}

	return nil
}

// SendEmbed posts msg as a titled embed, truncated to the embed limit.
func (c *Client) SendEmbed(title, msg string) error {
	payload := map[string]interface{}{
		"embeds": []embed{{
			Title:       title,
			Description: truncate(msg, maxEmbedLength),
			Color:       embedColor,
			Footer:      embedFooterDTO{Text: embedFooter},
		}},
	}

	if err := c.post(payload); err != nil {
		return fmt.Errorf("SendEmbed: %w", err)
	}

	return nil
}

// SendTop10Alert ships the top-N scan text as an embed under its alert title.
func (c *Client) SendTop10Alert(alertText string) error {
	return c.SendEmbed("Top 10 high-liquidity contracts", alertText)
}

func (c *Client) post(payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("post (Marshal): %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.WebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("post (NewRequest): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post (Do): %w", err)
	}

	defer res.Body.Close()

	// webhooks answer 204 without a body, 200 with one
	if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusNoContent {
		return nil
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("post (ReadAll): %w", err)
	}

	return fmt.Errorf("post: discord rejected message (%d): %s", res.StatusCode, string(resBody))
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
