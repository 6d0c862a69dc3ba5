// Package graphiti is the HTTP client for the Graphiti-style knowledge
// store. Delivery is fire-and-forget: one attempt against the messages
// endpoint, one fallback attempt against the add-memory endpoint with a
// restructured payload, then give up.
package graphiti

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hemanths/smriti/config"
)

// Message is one ingestion record for the knowledge store.
type Message struct {
	Content           string `json:"content"`
	Name              string `json:"name"`
	RoleType          string `json:"role_type"`
	Role              string `json:"role"`
	Timestamp         string `json:"timestamp"`
	SourceDescription string `json:"source_description"`
	GroupID           string `json:"group_id"`
}

// messagesPayload is the body for the primary /messages endpoint.
type messagesPayload struct {
	Messages []messageEntry `json:"messages"`
	GroupID  string         `json:"group_id"`
}

type messageEntry struct {
	Content           string `json:"content"`
	RoleType          string `json:"role_type"`
	Role              string `json:"role"`
	Name              string `json:"name"`
	SourceDescription string `json:"source_description"`
	Timestamp         string `json:"timestamp"`
}

// memoryPayload is the restructured body for the /add-memory fallback.
type memoryPayload struct {
	Messages []memoryEntry `json:"messages"`
}

type memoryEntry struct {
	Role     string         `json:"role"`
	Content  string         `json:"content"`
	Metadata memoryMetadata `json:"metadata"`
}

type memoryMetadata struct {
	AgentID   string `json:"agent_id"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Name      string `json:"name"`
}

// Client posts messages to the knowledge store.
type Client struct {
	baseURL string
	groupID string
	http    *http.Client
}

// NewClient creates a Client from the loaded configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.GraphitiURL,
		groupID: cfg.GroupID,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Send delivers one message: primary endpoint first, fallback once on any
// failure. The returned error is for caller-side logging only; there is no
// retry queue.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.GroupID == "" {
		msg.GroupID = c.groupID
	}
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().Format(time.RFC3339)
	}

	err := c.sendMessages(ctx, msg)
	if err == nil {
		log.Info("delivered to knowledge store", "name", msg.Name)
		return nil
	}
	log.Error("messages endpoint failed, trying add-memory", "err", err)

	if err := c.sendMemory(ctx, msg); err != nil {
		return fmt.Errorf("fallback endpoint: %w", err)
	}
	log.Info("delivered via add-memory fallback", "name", msg.Name)
	return nil
}

func (c *Client) sendMessages(ctx context.Context, msg Message) error {
	payload := messagesPayload{
		Messages: []messageEntry{{
			Content:           msg.Content,
			RoleType:          msg.RoleType,
			Role:              msg.Role,
			Name:              msg.Name,
			SourceDescription: msg.SourceDescription,
			Timestamp:         msg.Timestamp,
		}},
		GroupID: msg.GroupID,
	}
	// 202 = accepted for async processing.
	return c.post(ctx, "/messages", payload, http.StatusOK, http.StatusAccepted)
}

func (c *Client) sendMemory(ctx context.Context, msg Message) error {
	payload := memoryPayload{
		Messages: []memoryEntry{{
			Role:    msg.RoleType,
			Content: msg.Content,
			Metadata: memoryMetadata{
				AgentID:   msg.GroupID,
				Timestamp: msg.Timestamp,
				Source:    msg.SourceDescription,
				Name:      msg.Name,
			},
		}},
	}
	return c.post(ctx, "/add-memory", payload, http.StatusOK)
}

func (c *Client) post(ctx context.Context, path string, payload any, okStatuses ...int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	for _, status := range okStatuses {
		if resp.StatusCode == status {
			return nil
		}
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, detail)
}
