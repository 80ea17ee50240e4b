package gworkspace

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailClient wraps the Gmail API service.
type GmailClient struct {
	service *gmail.Service
}

// NewGmailFromToken creates a Gmail client from a user OAuth access token.
func NewGmailFromToken(ctx context.Context, accessToken string) (*GmailClient, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &GmailClient{service: svc}, nil
}

// NewGmailFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewGmailFromHTTP(ctx context.Context, httpClient *http.Client) (*GmailClient, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &GmailClient{service: svc}, nil
}

// ListRecentMessages lists the newest inbox messages with their headers.
// The message list endpoint only returns IDs, so each message is fetched
// concurrently; any single failure fails the whole call.
func (c *GmailClient) ListRecentMessages(ctx context.Context, maxResults int64) ([]EmailMessage, error) {
	if maxResults == 0 {
		maxResults = 5
	}

	list, err := c.service.Users.Messages.List("me").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]EmailMessage, len(list.Messages))
	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range list.Messages {
		i, ref := i, ref
		g.Go(func() error {
			msg, err := c.service.Users.Messages.Get("me", ref.Id).
				Format("metadata").
				MetadataHeaders("From", "Subject", "Date").
				Context(ctx).
				Do()
			if err != nil {
				return fmt.Errorf("failed to get message %s: %w", ref.Id, err)
			}
			messages[i] = fromAPIMessage(msg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return messages, nil
}

func fromAPIMessage(msg *gmail.Message) EmailMessage {
	em := EmailMessage{ID: msg.Id, Snippet: msg.Snippet}
	if msg.Payload == nil {
		return em
	}
	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "From":
			em.From = h.Value
		case "Subject":
			em.Subject = h.Value
		case "Date":
			em.Date = h.Value
		}
	}
	return em
}
