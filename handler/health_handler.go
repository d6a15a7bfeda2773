package handler

import (
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness and basic system load
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime":         utils.Uptime().String(),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
