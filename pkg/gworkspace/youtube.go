package gworkspace

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClient wraps the YouTube Data API service.
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeFromToken creates a YouTube client from a user OAuth access token.
func NewYouTubeFromToken(ctx context.Context, accessToken string) (*YouTubeClient, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTubeClient{service: svc}, nil
}

// NewYouTubeFromHTTP creates a YouTube client from a pre-configured HTTP client.
func NewYouTubeFromHTTP(ctx context.Context, httpClient *http.Client) (*YouTubeClient, error) {
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTubeClient{service: svc}, nil
}

// ListPlaylists lists the user's own playlists.
func (c *YouTubeClient) ListPlaylists(ctx context.Context, maxResults int64) ([]Playlist, error) {
	if maxResults == 0 {
		maxResults = 10
	}

	result, err := c.service.Playlists.List([]string{"snippet", "contentDetails"}).
		Mine(true).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	playlists := make([]Playlist, 0, len(result.Items))
	for _, p := range result.Items {
		pl := Playlist{ID: p.Id}
		if p.Snippet != nil {
			pl.Title = p.Snippet.Title
			pl.Description = p.Snippet.Description
			if p.Snippet.Thumbnails != nil && p.Snippet.Thumbnails.Default != nil {
				pl.Thumbnail = p.Snippet.Thumbnails.Default.Url
			}
		}
		if p.ContentDetails != nil {
			pl.ItemCount = p.ContentDetails.ItemCount
		}
		playlists = append(playlists, pl)
	}
	return playlists, nil
}
