package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Chemistry News</title>
    <item>
      <title>New catalyst cuts solvent waste</title>
      <link>https://news.example.com/catalyst</link>
      <pubDate>Mon, 24 Aug 2026 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Reagent storage guidance updated</title>
      <link>https://news.example.com/storage</link>
      <pubDate>Tue, 25 Aug 2026 10:30:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	items := NewService(srv.URL).Fetch(context.Background())
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "New catalyst cuts solvent waste" {
		t.Fatalf("unexpected first title: %q", items[0].Title)
	}
	if items[1].Link != "https://news.example.com/storage" {
		t.Fatalf("unexpected second link: %q", items[1].Link)
	}
}

func TestFetchUpstreamErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	items := NewService(srv.URL).Fetch(context.Background())
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}

func TestFetchUnreachableHostReturnsEmpty(t *testing.T) {
	items := NewService("http://127.0.0.1:1").Fetch(context.Background())
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}

func TestFetchMalformedFeedReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not rss</html"))
	}))
	defer srv.Close()

	items := NewService(srv.URL).Fetch(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}
