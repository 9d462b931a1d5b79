// Package news fetches the external chemistry news feed shown on the
// dashboard. The feed is decoration: any failure degrades to an empty
// list rather than surfacing an error.
package news

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const fetchTimeout = 5 * time.Second

// Item is one news entry
type Item struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

type Service struct {
	client  *resty.Client
	feedURL string
}

func NewService(feedURL string) *Service {
	return &Service{
		client:  resty.New().SetTimeout(fetchTimeout),
		feedURL: feedURL,
	}
}

// Fetch returns the latest feed items, or an empty slice on any
// failure. It never returns an error to the caller.
func (s *Service) Fetch(ctx context.Context) []Item {
	res, err := s.client.R().SetContext(ctx).Get(s.feedURL)
	if err != nil {
		logrus.WithError(err).Warn("news: feed fetch failed")
		return []Item{}
	}
	if res.StatusCode() != http.StatusOK {
		logrus.WithField("status", res.StatusCode()).Warn("news: feed fetch failed")
		return []Item{}
	}

	var feed rssFeed
	if err := xml.Unmarshal(res.Body(), &feed); err != nil {
		logrus.WithError(err).Warn("news: feed parse failed")
		return []Item{}
	}

	items := make([]Item, 0, len(feed.Channel.Items))
	for _, entry := range feed.Channel.Items {
		items = append(items, Item{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.PubDate,
		})
	}
	return items
}
