package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/middleware"
	"workspace-chat/pkg/response"
)

// GetWeek godoc
// @Summary     Weekly calendar view
// @Description Returns the expanded events and time grid for one week, selected by a signed offset from the current week.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       offset query int false "Week offset from the current week (default: 0)"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Google sign-in required"
// @Router      /api/v1/calendar/week [GET]
func (h *handler) GetWeek(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	output, err := h.uc.WeeklyAgenda(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, calendar.ErrMissingGoogleToken) {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.WeeklyAgenda: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// InvalidateWeek godoc
// @Summary     Drop a cached week
// @Description Removes the cached expansion for one week offset so the next request re-fetches from the calendar source.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       offset query int false "Week offset from the current week (default: 0)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/week/cache [DELETE]
func (h *handler) InvalidateWeek(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	h.uc.InvalidateWeek(ctx, sc, req.Offset)

	response.OK(c, nil)
}
