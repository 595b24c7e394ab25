package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"
)

var ErrMissingChatAPIBaseURL = errors.New("missing CHAT_API_BASE_URL")
var ErrChatFeedGatewayNotConfigured = errors.New("chat feed gateway not configured")

// FeedGateway fetches recent messages from a chat space over the chat
// service's REST API. With CHAT_GATEWAY_MOCK enabled it serves a canned
// transcript instead, which keeps local runs free of credentials.
type FeedGateway struct {
	baseURL  string
	token    string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IChatFeedGateway = (*FeedGateway)(nil)

func NewFeedGateway() (*FeedGateway, error) {
	if isChatGatewayMockEnabled() {
		log.Printf("[chat][gateway] feed mock mode enabled")
		return &FeedGateway{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(os.Getenv("CHAT_API_BASE_URL"), "/")
	if baseURL == "" {
		log.Printf("[chat][gateway] missing CHAT_API_BASE_URL")
		return nil, ErrMissingChatAPIBaseURL
	}

	return &FeedGateway{
		baseURL: baseURL,
		token:   os.Getenv("CHAT_API_TOKEN"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type feedMessage struct {
	Sender struct {
		DisplayName string `json:"displayName"`
	} `json:"sender"`
	Text string `json:"text"`
}

type feedResponse struct {
	Messages []feedMessage `json:"messages"`
}

func (g *FeedGateway) FetchMessages(ctx context.Context, spaceID string, limit int) ([]entities.ChatMessage, error) {
	if g != nil && g.mockMode {
		log.Printf("[chat][gateway] mock fetch space=%s limit=%d", spaceID, limit)
		return mockTranscript(), nil
	}

	if g == nil || g.client == nil {
		return nil, ErrChatFeedGatewayNotConfigured
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/messages?pageSize=%d", g.baseURL, url.PathEscape(spaceID), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[chat][gateway] fetch failed space=%s err=%v", spaceID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[chat][gateway] fetch status=%d space=%s", resp.StatusCode, spaceID)
		return nil, fmt.Errorf("chat api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	messages := make([]entities.ChatMessage, 0, len(parsed.Messages))
	for _, m := range parsed.Messages {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			continue
		}
		messages = append(messages, entities.ChatMessage{
			Sender: m.Sender.DisplayName,
			Text:   text,
		})
	}
	return messages, nil
}

func mockTranscript() []entities.ChatMessage {
	return []entities.ChatMessage{
		{Sender: "Dana", Text: "Rolled the new triage workflow out to the on-call rotation this morning."},
		{Sender: "Priya", Text: "Nice. Ticket backlog dropped below 20 for the first time this quarter."},
		{Sender: "Dana", Text: "Still seeing duplicate alerts from the staging environment, will file a follow-up."},
		{Sender: "Marcos", Text: "I can pair on that Thursday if it helps."},
	}
}

func isChatGatewayMockEnabled() bool {
	for _, key := range []string{"CHAT_GATEWAY_MOCK", "CHAT_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
