package gworkspace

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// TasksClient wraps the Google Tasks API service.
type TasksClient struct {
	service *tasks.Service
}

// NewTasksFromToken creates a Tasks client from a user OAuth access token.
func NewTasksFromToken(ctx context.Context, accessToken string) (*TasksClient, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := tasks.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &TasksClient{service: svc}, nil
}

// NewTasksFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewTasksFromHTTP(ctx context.Context, httpClient *http.Client) (*TasksClient, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &TasksClient{service: svc}, nil
}

// ListTaskLists lists the user's task lists.
func (c *TasksClient) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(result.Items))
	for _, l := range result.Items {
		lists = append(lists, TaskList{ID: l.Id, Title: l.Title})
	}
	return lists, nil
}

// ListTasks lists the tasks in one task list.
func (c *TasksClient) ListTasks(ctx context.Context, listID string) ([]Task, error) {
	result, err := c.service.Tasks.List(listID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for list %s: %w", listID, err)
	}

	items := make([]Task, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, Task{
			ID:     t.Id,
			Title:  t.Title,
			Notes:  t.Notes,
			Status: t.Status,
			Due:    t.Due,
		})
	}
	return items, nil
}
