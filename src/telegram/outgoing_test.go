package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestChunkMessage(t *testing.T) {
	t.Run("short messages stay whole", func(t *testing.T) {
		require.Equal(t, []string{"hello"}, chunkMessage("hello", 10))
	})

	t.Run("long messages split at the limit", func(t *testing.T) {
		parts := chunkMessage(strings.Repeat("a", 25), 10)
		require.Equal(t, []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 5)}, parts)
	})

	t.Run("exact multiple has no empty tail", func(t *testing.T) {
		parts := chunkMessage(strings.Repeat("a", 20), 10)
		require.Len(t, parts, 2)
	})

	t.Run("empty message is a single empty part", func(t *testing.T) {
		require.Equal(t, []string{""}, chunkMessage("", 10))
	})

	t.Run("multi-byte rune at the seam moves whole into the next part", func(t *testing.T) {
		// the em dash is three bytes and starts one byte before the limit
		parts := chunkMessage("aaaa—bb", 5)
		require.Equal(t, []string{"aaaa", "—bb"}, parts)
	})

	t.Run("every part of a chunked report stays valid UTF-8", func(t *testing.T) {
		msg := strings.Repeat("a", maxMessageLength-1) + "—tail"

		parts := chunkMessage(msg, maxMessageLength)
		for i, part := range parts {
			require.True(t, utf8.ValidString(part), "part %d is not valid UTF-8", i+1)
		}

		require.Equal(t, msg, strings.Join(parts, ""))
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("posts each chunk in order", func(t *testing.T) {
		var received []string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "chat-42", body["chat_id"])

			received = append(received, body["text"].(string))
			fmt.Fprint(w, `{"ok":true}`)
		}))
		defer server.Close()

		client := NewClient("test-token", "chat-42")
		client.baseURL = server.URL

		require.NoError(t, client.SendMessage(strings.Repeat("x", maxMessageLength+5)))
		require.Len(t, received, 2)
		require.Len(t, received[0], maxMessageLength)
		require.Len(t, received[1], 5)
	})

	t.Run("telegram rejection surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"ok":false,"description":"chat not found"}`)
		}))
		defer server.Close()

		client := NewClient("test-token", "chat-42")
		client.baseURL = server.URL

		err := client.SendMessage("hello")
		require.Error(t, err)
		require.Contains(t, err.Error(), "chat not found")
	})
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("missing credentials disable the client", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		t.Setenv("TELEGRAM_CHAT_ID", "")

		_, err := NewClientFromEnv()
		require.Error(t, err)
	})

	t.Run("credentials build a client", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("TELEGRAM_CHAT_ID", "chat")

		client, err := NewClientFromEnv()
		require.NoError(t, err)
		require.Equal(t, "token", client.BotToken)
	})
}
