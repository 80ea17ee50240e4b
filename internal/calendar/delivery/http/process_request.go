package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-chat/internal/calendar"
)

type getWeekReq struct {
	Offset int
}

func (h handler) processGetWeekReq(c *gin.Context) (getWeekReq, error) {
	raw := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return getWeekReq{}, errInvalidOffset
	}
	return getWeekReq{Offset: offset}, nil
}

func (req getWeekReq) toInput() calendar.WeeklyAgendaInput {
	return calendar.WeeklyAgendaInput{WeekOffset: req.Offset}
}
