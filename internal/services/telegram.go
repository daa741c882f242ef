package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
)

// ChatSender is the chat alert contract used by the notification dispatcher.
type ChatSender interface {
	Send(text string) error
	IsConfigured() bool
}

const telegramAPIBase = "https://api.telegram.org"

// TelegramService sends chat alerts through the Telegram Bot API
type TelegramService struct {
	cfg     *config.TelegramConfig
	client  *http.Client
	apiBase string
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(cfg *config.TelegramConfig) *TelegramService {
	return &TelegramService{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiBase: telegramAPIBase,
	}
}

// IsConfigured reports whether both the bot token and destination chat are
// set. The channel is skipped entirely when either is missing.
func (s *TelegramService) IsConfigured() bool {
	return s.cfg.BotToken != "" && s.cfg.ChatID != ""
}

// Send delivers a Markdown-formatted message to the configured chat
func (s *TelegramService) Send(text string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("telegram not configured")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.cfg.BotToken)

	payload := map[string]string{
		"chat_id":    s.cfg.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorResp)
		return fmt.Errorf("telegram API error (status %d): %v", resp.StatusCode, errorResp)
	}

	return nil
}
