package api

import (
	"net/http"

	"crm-service/internal/handler/httperr"
	"crm-service/internal/jobs"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	runner *jobs.Runner
}

func NewJobHandler(runner *jobs.Runner) *JobHandler {
	return &JobHandler{runner: runner}
}

// @Summary Run job
// @Description Run a scheduled job once, outside its schedule
// @Tags jobs
// @Produce json
// @Param name path string true "Job name" Enums(heartbeat, report, reminders, restock)
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{name}/run [post]
func (h *JobHandler) Run(c *gin.Context) {
	name := c.Param("name")
	if err := h.runner.Trigger(c.Request.Context(), name); err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown job", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job " + name + " completed",
	})
}
