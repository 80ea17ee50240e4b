package gworkspace

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveClient wraps the Google Drive API service.
type DriveClient struct {
	service *drive.Service
}

// NewDriveFromToken creates a Drive client from a user OAuth access token.
func NewDriveFromToken(ctx context.Context, accessToken string) (*DriveClient, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveClient{service: svc}, nil
}

// NewDriveFromHTTP creates a Drive client from a pre-configured HTTP client.
func NewDriveFromHTTP(ctx context.Context, httpClient *http.Client) (*DriveClient, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveClient{service: svc}, nil
}

// ListRecentFiles lists the most recently modified files.
func (c *DriveClient) ListRecentFiles(ctx context.Context, maxResults int64) ([]DriveFile, error) {
	if maxResults == 0 {
		maxResults = 10
	}

	result, err := c.service.Files.List().
		PageSize(maxResults).
		OrderBy("modifiedTime desc").
		Fields("files(id,name,mimeType,webViewLink,thumbnailLink,modifiedTime,size)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list drive files: %w", err)
	}

	files := make([]DriveFile, 0, len(result.Files))
	for _, f := range result.Files {
		file := DriveFile{
			ID:            f.Id,
			Name:          f.Name,
			MimeType:      f.MimeType,
			WebViewLink:   f.WebViewLink,
			ThumbnailLink: f.ThumbnailLink,
			Size:          f.Size,
		}
		if f.ModifiedTime != "" {
			if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
				file.ModifiedTime = t
			}
		}
		files = append(files, file)
	}
	return files, nil
}

// FormatSize renders a byte count the way file listings usually do.
func FormatSize(size int64) string {
	switch {
	case size <= 0:
		return "-"
	case size < 1024:
		return strconv.FormatInt(size, 10) + " B"
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
	}
}
