package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/reports"
	"Backend-ECW-B2S/src/utils"
)

// GetDashboardSummary godoc
// @Summary      Overview dashboard stats
// @Description  Totals, today's count, distinct volunteers/directorates, and chart histograms
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  reports.Stats
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/summary [get]
func GetDashboardSummary(c *fiber.Ctx) error {
	stats, err := reports.Summary(c.Context())
	if err != nil {
		// the dashboard renders its zero state from an error, never crashes
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(stats)
}

// GetDetailedDashboard godoc
// @Summary      Filtered dashboard with paginated activity table
// @Tags         dashboard
// @Produce      json
// @Param        directorate query string false "Directorate filter"  default(all)
// @Param        volunteer   query string false "Volunteer filter"    default(all)
// @Param        startDate   query string false "Inclusive start date (YYYY-MM-DD)"
// @Param        endDate     query string false "Inclusive end date (YYYY-MM-DD)"
// @Param        page        query int    false "Page number"         default(1)
// @Param        limit       query int    false "Rows per page"       default(10)
// @Success      200  {object}  reports.DetailedDashboard
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/detailed [get]
func GetDetailedDashboard(c *fiber.Ctx) error {
	var criteria reports.Criteria
	if err := c.QueryParser(&criteria); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid filters: "+err.Error())
	}

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	view, err := reports.Detailed(c.Context(), criteria, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(view)
}
