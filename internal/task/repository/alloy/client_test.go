package alloy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-task-bridge/internal/task/repository/alloy"
)

func newTestClient(baseURL string) *alloy.Client {
	return alloy.NewClient(alloy.Config{
		BaseURL:      baseURL,
		APIVersion:   "2024-03",
		APIKey:       "test-key",
		UserID:       "user-1",
		CredentialID: "cred-1",
	})
}

func TestConnectorClient(t *testing.T) {
	var deleteHits int

	mux := http.NewServeMux()

	mux.HandleFunc("/2024-03/one/crm/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid API key"})
			return
		}
		if r.URL.Query().Get("userId") != "user-1" || r.URL.Query().Get("credentialId") != "cred-1" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "missing identifiers"})
			return
		}

		if r.Method == http.MethodPost {
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{"task": map[string]any{
				"id":            "100",
				"Subject":       payload["Subject"],
				"Status":        payload["Status"],
				"Priority":      payload["Priority"],
				"Description":   payload["Description"],
				"Due_Date":      payload["Due_Date"],
				"Owner":         payload["Owner"],
				"Created_Time":  "2024-05-01T10:00:00+02:00",
				"Modified_Time": "2024-05-01T10:00:00+02:00",
			}})
			return
		}

		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{"tasks": []alloy.Task{
				{ID: "1", Subject: "first"},
				{ID: "2", Subject: "second"},
				{ID: "3", Subject: "third"},
			}})
			return
		}
	})

	mux.HandleFunc("/2024-03/one/crm/tasks/42", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"task": alloy.Task{ID: "42", Subject: "detail"}})
		case http.MethodPut:
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			if _, ok := payload["Subject"]; ok {
				t.Errorf("partial update must not carry unsupplied Subject: %v", payload)
			}
			json.NewEncoder(w).Encode(map[string]any{"task": alloy.Task{ID: "42", Status: "Completed"}})
		case http.MethodDelete:
			deleteHits++
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}
	})

	mux.HandleFunc("/2024-03/one/crm/tasks/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "the record is not available"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newTestClient(ts.URL)
	ctx := context.Background()

	t.Run("CreateTask forwards fields unchanged", func(t *testing.T) {
		created, err := client.CreateTask(ctx, alloy.TaskPayload{
			Subject:     "Write docs",
			Status:      "In Progress",
			Priority:    "High",
			Description: "the notes",
			DueDate:     "2024-06-01",
			Owner:       &alloy.Owner{Name: "Pat"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "100" || created.Subject != "Write docs" || created.Priority != "High" {
			t.Errorf("unexpected created task: %+v", created)
		}
		if created.Owner == nil || created.Owner.Name != "Pat" {
			t.Errorf("owner not echoed back: %+v", created.Owner)
		}
	})

	t.Run("ListTasks preserves upstream order", func(t *testing.T) {
		tasks, err := client.ListTasks(ctx, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(tasks))
		}
		for i, want := range []string{"1", "2", "3"} {
			if tasks[i].ID != want {
				t.Errorf("task %d: expected id %s, got %s", i, want, tasks[i].ID)
			}
		}
	})

	t.Run("GetTask", func(t *testing.T) {
		got, err := client.GetTask(ctx, "42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subject != "detail" {
			t.Errorf("unexpected task: %+v", got)
		}
	})

	t.Run("UpdateTask sends only supplied fields", func(t *testing.T) {
		updated, err := client.UpdateTask(ctx, "42", alloy.TaskPayload{Status: "Completed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != "Completed" {
			t.Errorf("unexpected status: %s", updated.Status)
		}
	})

	t.Run("DeleteTask issues exactly one upstream delete", func(t *testing.T) {
		deleteHits = 0
		if err := client.DeleteTask(ctx, "42"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleteHits != 1 {
			t.Errorf("expected exactly 1 upstream delete, got %d", deleteHits)
		}
	})

	t.Run("NotFound surfaces upstream message", func(t *testing.T) {
		_, err := client.GetTask(ctx, "missing")
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr, ok := err.(*alloy.APIError)
		if !ok {
			t.Fatalf("expected *alloy.APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "the record is not available" {
			t.Errorf("unexpected API error: %+v", apiErr)
		}
	})

	t.Run("BadCredential surfaces message without retry", func(t *testing.T) {
		badKey := alloy.NewClient(alloy.Config{
			BaseURL:      ts.URL,
			APIVersion:   "2024-03",
			APIKey:       "wrong",
			UserID:       "user-1",
			CredentialID: "cred-1",
		})
		_, err := badKey.ListTasks(ctx, 0, 0)
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr, ok := err.(*alloy.APIError)
		if !ok || apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("unexpected error: %v", err)
		}
		if apiErr.Message != "invalid API key" {
			t.Errorf("upstream message not surfaced: %q", apiErr.Message)
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := newTestClient("http://localhost:59999")
		_, err := badClient.GetTask(ctx, "42")
		if err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestConnectorClientNoRetry(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "upstream exploded"})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.ListTasks(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if hits != 1 {
		t.Errorf("expected exactly 1 upstream call (no retries), got %d", hits)
	}
}
