// Package telegram provides a small client for delivering notifications
// through the Telegram Bot API.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.telegram.org"

// Client sends messages on behalf of a bot.
type Client struct {
	token  string
	apiURL string
	client *http.Client
}

// NewClient creates a Client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:  token,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest is the payload for the sendMessage API method.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send delivers msg to the chat identified by to. It returns an error
// if the request fails or the API responds with a non-200 status.
func (c *Client) Send(to string, msg string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    to,
		Text:      msg,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
