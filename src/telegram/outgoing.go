package telegram

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

// Telegram caps messages at 4096 characters; chunk below that to leave a
// safety margin.
const maxMessageLength = 4000

const defaultAPIBaseURL = "https://api.telegram.org"

// Client posts alert messages to a Telegram chat.
type Client struct {
	BotToken string
	ChatID   string

	baseURL string
	client  *http.Client
}

func NewClient(botToken, chatID string) *Client {
	return &Client{
		BotToken: botToken,
		ChatID:   chatID,
		baseURL:  defaultAPIBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientFromEnv builds a client from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID.
func NewClientFromEnv() (*Client, error) {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")

	if botToken == "" || chatID == "" {
		return nil, fmt.Errorf("NewClientFromEnv: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set")
	}

	return NewClient(botToken, chatID), nil
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts msg to the configured chat, splitting messages longer
// than the Telegram limit into sequential parts.
func (c *Client) SendMessage(msg string) error {
	for i, part := range chunkMessage(msg, maxMessageLength) {
		if err := c.postMessage(part); err != nil {
			return fmt.Errorf("SendMessage: part %d: %w", i+1, err)
		}
	}

	return nil
}

// SendTop10Alert prefixes the top-N scan text with its alert header.
func (c *Client) SendTop10Alert(alertText string) error {
	return c.SendMessage("Top 10 high-liquidity contracts\n\n" + alertText)
}

func (c *Client) postMessage(text string) error {
	body := map[string]interface{}{
		"chat_id": c.ChatID,
		"text":    text,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("postMessage (Marshal): %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.BotToken)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("postMessage (NewRequest): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("postMessage (Do): %w", err)
	}

	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("postMessage (ReadAll): %w", err)
	}

	var dto sendMessageResponse
	if err := json.Unmarshal(bodyBytes, &dto); err != nil {
		return fmt.Errorf("postMessage (Unmarshal): %w", err)
	}

	if !dto.OK {
		return fmt.Errorf("postMessage: telegram rejected message: %s", dto.Description)
	}

	return nil
}

// chunkMessage splits msg into parts of at most max bytes, never cutting a
// rune in half: a multi-byte rune straddling the limit moves whole into the
// next part.
func chunkMessage(msg string, max int) []string {
	if len(msg) <= max {
		return []string{msg}
	}

	var parts []string
	for len(msg) > max {
		cut := max
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}

		if cut == 0 {
			cut = max
		}

		parts = append(parts, msg[:cut])
		msg = msg[cut:]
	}

	return append(parts, msg)
}
