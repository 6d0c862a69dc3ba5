package graphiti

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hemanths/smriti/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(&config.Config{
		GraphitiURL:    url,
		TimeoutSeconds: 2,
		GroupID:        "test_group",
	})
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestSendPrimaryEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = decodeBody(t, r)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := testClient(srv.URL).Send(context.Background(), Message{
		Content:           "Claude modified file: auth.py",
		Name:              "Claude_Edit_2026-03-01T10:00:00Z",
		RoleType:          "system",
		Role:              "claude_code",
		Timestamp:         "2026-03-01T10:00:00Z",
		SourceDescription: "Claude Code conversation",
	})
	require.NoError(t, err)

	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, "test_group", gotBody["group_id"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 1)
	entry := messages[0].(map[string]any)
	assert.Equal(t, "Claude modified file: auth.py", entry["content"])
	assert.Equal(t, "system", entry["role_type"])
	assert.Equal(t, "claude_code", entry["role"])
}

func TestSendFallsBackToAddMemory(t *testing.T) {
	var paths []string
	var memoryBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/messages":
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		case "/add-memory":
			memoryBody = decodeBody(t, r)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	err := testClient(srv.URL).Send(context.Background(), Message{
		Content:   "session summary text",
		Name:      "Claude_SessionSummary_s1",
		RoleType:  "system",
		Role:      "claude_code",
		Timestamp: "2026-03-01T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/messages", "/add-memory"}, paths)

	messages := memoryBody["messages"].([]any)
	require.Len(t, messages, 1)
	entry := messages[0].(map[string]any)
	assert.Equal(t, "system", entry["role"])
	assert.Equal(t, "session summary text", entry["content"])

	meta := entry["metadata"].(map[string]any)
	assert.Equal(t, "test_group", meta["agent_id"])
	assert.Equal(t, "Claude_SessionSummary_s1", meta["name"])
}

func TestSendBothEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := testClient(srv.URL).Send(context.Background(), Message{Content: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add-memory")
}

func TestSendUnreachableServer(t *testing.T) {
	err := testClient("http://127.0.0.1:1").Send(context.Background(), Message{Content: "x"})
	assert.Error(t, err)
}

func TestSendFillsTimestamp(t *testing.T) {
	var entry map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		entry = body["messages"].([]any)[0].(map[string]any)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, testClient(srv.URL).Send(context.Background(), Message{Content: "x"}))
	assert.NotEmpty(t, entry["timestamp"])
}
