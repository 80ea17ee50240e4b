package http

import (
	"time"

	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/gworkspace"
)

type fileResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mime_type"`
	WebViewLink   string `json:"web_view_link,omitempty"`
	ThumbnailLink string `json:"thumbnail_link,omitempty"`
	ModifiedTime  string `json:"modified_time,omitempty"`
	Size          string `json:"size"`
}

type driveResp struct {
	Files []fileResp `json:"files"`
}

func (h handler) newDriveResp(out workspace.RecentFilesOutput) driveResp {
	resp := driveResp{Files: make([]fileResp, 0, len(out.Files))}
	for _, f := range out.Files {
		fr := fileResp{
			ID:            f.ID,
			Name:          f.Name,
			MimeType:      f.MimeType,
			WebViewLink:   f.WebViewLink,
			ThumbnailLink: f.ThumbnailLink,
			Size:          gworkspace.FormatSize(f.Size),
		}
		if !f.ModifiedTime.IsZero() {
			fr.ModifiedTime = f.ModifiedTime.Format(time.RFC3339)
		}
		resp.Files = append(resp.Files, fr)
	}
	return resp
}

type taskResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Notes  string `json:"notes,omitempty"`
	Status string `json:"status"`
	Due    string `json:"due,omitempty"`
}

type taskGroupResp struct {
	ListID string     `json:"list_id"`
	Title  string     `json:"title"`
	Tasks  []taskResp `json:"tasks"`
}

type tasksResp struct {
	Groups []taskGroupResp `json:"groups"`
}

func (h handler) newTasksResp(out workspace.TaskOverviewOutput) tasksResp {
	resp := tasksResp{Groups: make([]taskGroupResp, 0, len(out.Groups))}
	for _, g := range out.Groups {
		group := taskGroupResp{
			ListID: g.List.ID,
			Title:  g.List.Title,
			Tasks:  make([]taskResp, 0, len(g.Tasks)),
		}
		for _, t := range g.Tasks {
			group.Tasks = append(group.Tasks, taskResp{
				ID:     t.ID,
				Title:  t.Title,
				Notes:  t.Notes,
				Status: t.Status,
				Due:    t.Due,
			})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp
}

type upcomingEventResp struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	HtmlLink string `json:"html_link,omitempty"`
}

type upcomingResp struct {
	Events []upcomingEventResp `json:"events"`
}

func (h handler) newUpcomingResp(out workspace.UpcomingEventsOutput) upcomingResp {
	resp := upcomingResp{Events: make([]upcomingEventResp, 0, len(out.Events))}
	for _, ev := range out.Events {
		resp.Events = append(resp.Events, upcomingEventResp{
			ID:       ev.ID,
			Summary:  ev.Summary,
			Location: ev.Location,
			Start:    ev.StartTime.Format(time.RFC3339),
			End:      ev.EndTime.Format(time.RFC3339),
			HtmlLink: ev.HtmlLink,
		})
	}
	return resp
}

type playlistResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ItemCount   int64  `json:"item_count"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type youtubeResp struct {
	Playlists []playlistResp `json:"playlists"`
}

func (h handler) newYouTubeResp(out workspace.PlaylistsOutput) youtubeResp {
	resp := youtubeResp{Playlists: make([]playlistResp, 0, len(out.Playlists))}
	for _, p := range out.Playlists {
		resp.Playlists = append(resp.Playlists, playlistResp{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			ItemCount:   p.ItemCount,
			Thumbnail:   p.Thumbnail,
		})
	}
	return resp
}

type emailResp struct {
	ID      string `json:"id"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject,omitempty"`
	Date    string `json:"date,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

type emailListResp struct {
	Messages []emailResp `json:"messages"`
}

func (h handler) newEmailResp(out workspace.RecentEmailOutput) emailListResp {
	resp := emailListResp{Messages: make([]emailResp, 0, len(out.Messages))}
	for _, m := range out.Messages {
		resp.Messages = append(resp.Messages, emailResp{
			ID:      m.ID,
			From:    m.From,
			Subject: m.Subject,
			Date:    m.Date,
			Snippet: m.Snippet,
		})
	}
	return resp
}
