package gworkspace_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workspace-chat/pkg/gworkspace"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *http.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return tsClient
}

func TestTokenRequired(t *testing.T) {
	ctx := context.Background()
	if _, err := gworkspace.NewDriveFromToken(ctx, ""); err == nil {
		t.Error("drive: expected error for empty token")
	}
	if _, err := gworkspace.NewTasksFromToken(ctx, ""); err == nil {
		t.Error("tasks: expected error for empty token")
	}
	if _, err := gworkspace.NewYouTubeFromToken(ctx, ""); err == nil {
		t.Error("youtube: expected error for empty token")
	}
	if _, err := gworkspace.NewGmailFromToken(ctx, ""); err == nil {
		t.Error("gmail: expected error for empty token")
	}
}

func TestListRecentFiles(t *testing.T) {
	httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/drive/v3/files") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("orderBy") != "modifiedTime desc" {
			t.Errorf("unexpected orderBy: %q", q.Get("orderBy"))
		}
		if q.Get("pageSize") != "10" {
			t.Errorf("unexpected pageSize: %q", q.Get("pageSize"))
		}
		w.Write([]byte(`{
			"files": [
				{
					"id": "f1",
					"name": "notes.txt",
					"mimeType": "text/plain",
					"webViewLink": "https://drive.google.com/f1",
					"modifiedTime": "2024-03-01T12:00:00Z",
					"size": "2048"
				}
			]
		}`))
	})

	client, err := gworkspace.NewDriveFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	files, err := client.ListRecentFiles(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecentFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Name != "notes.txt" || files[0].Size != 2048 {
		t.Errorf("unexpected file: %+v", files[0])
	}
	if files[0].ModifiedTime.IsZero() {
		t.Error("expected modified time parsed")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "-"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := gworkspace.FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestTasks(t *testing.T) {
	httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/users/@me/lists"):
			w.Write([]byte(`{"items":[{"id":"l1","title":"Inbox"},{"id":"l2","title":"Work"}]}`))
		case strings.Contains(r.URL.Path, "/lists/l1/tasks"):
			w.Write([]byte(`{"items":[{"id":"t1","title":"Buy milk","status":"needsAction"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client, err := gworkspace.NewTasksFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	lists, err := client.ListTaskLists(context.Background())
	if err != nil {
		t.Fatalf("ListTaskLists failed: %v", err)
	}
	if len(lists) != 2 || lists[0].Title != "Inbox" {
		t.Errorf("unexpected lists: %+v", lists)
	}

	items, err := client.ListTasks(context.Background(), "l1")
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Buy milk" {
		t.Errorf("unexpected tasks: %+v", items)
	}
}

func TestListPlaylists(t *testing.T) {
	httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("mine") != "true" {
			t.Errorf("expected mine=true, got %q", q.Get("mine"))
		}
		w.Write([]byte(`{
			"items": [
				{
					"id": "pl1",
					"snippet": {
						"title": "Go Talks",
						"description": "conference talks",
						"thumbnails": {"default": {"url": "https://i.ytimg.com/pl1.jpg"}}
					},
					"contentDetails": {"itemCount": 12}
				}
			]
		}`))
	})

	client, err := gworkspace.NewYouTubeFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	playlists, err := client.ListPlaylists(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPlaylists failed: %v", err)
	}
	if len(playlists) != 1 {
		t.Fatalf("expected 1 playlist, got %d", len(playlists))
	}
	pl := playlists[0]
	if pl.Title != "Go Talks" || pl.ItemCount != 12 || pl.Thumbnail == "" {
		t.Errorf("unexpected playlist: %+v", pl)
	}
}

func TestListRecentMessages(t *testing.T) {
	httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/messages"):
			if q := r.URL.Query().Get("maxResults"); q != "5" {
				t.Errorf("unexpected maxResults: %q", q)
			}
			w.Write([]byte(`{"messages":[{"id":"m1"},{"id":"m2"}]}`))
		case strings.HasSuffix(r.URL.Path, "/messages/m1"):
			w.Write([]byte(`{
				"id": "m1",
				"snippet": "hello there",
				"payload": {"headers": [
					{"name": "From", "value": "alice@example.com"},
					{"name": "Subject", "value": "Hi"},
					{"name": "Date", "value": "Mon, 1 Jan 2024 10:00:00 +0000"}
				]}
			}`))
		case strings.HasSuffix(r.URL.Path, "/messages/m2"):
			w.Write([]byte(`{"id":"m2","snippet":"second","payload":{"headers":[{"name":"Subject","value":"Re: Hi"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client, err := gworkspace.NewGmailFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	messages, err := client.ListRecentMessages(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecentMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].From != "alice@example.com" || messages[0].Subject != "Hi" {
		t.Errorf("unexpected first message: %+v", messages[0])
	}
	if messages[1].Subject != "Re: Hi" {
		t.Errorf("unexpected second message: %+v", messages[1])
	}
}

func TestListRecentMessagesPartialFailure(t *testing.T) {
	httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/messages"):
			w.Write([]byte(`{"messages":[{"id":"ok"},{"id":"bad"}]}`))
		case strings.HasSuffix(r.URL.Path, "/messages/ok"):
			w.Write([]byte(`{"id":"ok","snippet":"fine"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	client, err := gworkspace.NewGmailFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.ListRecentMessages(context.Background(), 0)
	if err == nil {
		t.Fatal("expected error when one message fetch fails")
	}
}
