package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"workspace-chat/internal/middleware"
	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/response"
)

func (h *handler) respond(c *gin.Context, err error, data any) {
	if err != nil {
		if errors.Is(err, workspace.ErrMissingGoogleToken) {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(c.Request.Context(), "workspace delivery: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, data)
}

// Drive godoc
// @Summary     Recent Drive files
// @Description Lists the user's most recently modified Drive files.
// @Tags        Workspace
// @Produce     json
// @Success     200 {object} driveResp
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/workspace/drive [GET]
func (h *handler) Drive(c *gin.Context) {
	out, err := h.uc.RecentFiles(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		h.respond(c, err, nil)
		return
	}
	h.respond(c, nil, h.newDriveResp(out))
}

// Tasks godoc
// @Summary     Task overview
// @Description Lists every task list with its tasks.
// @Tags        Workspace
// @Produce     json
// @Success     200 {object} tasksResp
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/workspace/tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	out, err := h.uc.TaskOverview(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		h.respond(c, err, nil)
		return
	}
	h.respond(c, nil, h.newTasksResp(out))
}

// Calendar godoc
// @Summary     Upcoming events
// @Description Lists the next calendar events from now.
// @Tags        Workspace
// @Produce     json
// @Success     200 {object} upcomingResp
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/workspace/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	out, err := h.uc.UpcomingEvents(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		h.respond(c, err, nil)
		return
	}
	h.respond(c, nil, h.newUpcomingResp(out))
}

// YouTube godoc
// @Summary     YouTube playlists
// @Description Lists the user's YouTube playlists.
// @Tags        Workspace
// @Produce     json
// @Success     200 {object} youtubeResp
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/workspace/youtube [GET]
func (h *handler) YouTube(c *gin.Context) {
	out, err := h.uc.Playlists(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		h.respond(c, err, nil)
		return
	}
	h.respond(c, nil, h.newYouTubeResp(out))
}

// Email godoc
// @Summary     Recent email
// @Description Lists the newest Gmail messages with their headers.
// @Tags        Workspace
// @Produce     json
// @Success     200 {object} emailListResp
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/workspace/email [GET]
func (h *handler) Email(c *gin.Context) {
	out, err := h.uc.RecentEmail(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		h.respond(c, err, nil)
		return
	}
	h.respond(c, nil, h.newEmailResp(out))
}
