package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Backend-ECW-B2S/src/services/exports"
	"Backend-ECW-B2S/src/services/reports"
	"Backend-ECW-B2S/src/utils"
)

// ExportRows godoc
// @Summary      Download the filtered activity rows
// @Description  Same filters as the detailed dashboard; the file contains exactly what the view shows
// @Tags         exports
// @Produce      octet-stream
// @Param        format      query string true  "csv, xlsx or pdf"
// @Param        directorate query string false "Directorate filter" default(all)
// @Param        volunteer   query string false "Volunteer filter"   default(all)
// @Param        startDate   query string false "Inclusive start date (YYYY-MM-DD)"
// @Param        endDate     query string false "Inclusive end date (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /exports/rows [get]
func ExportRows(c *fiber.Ctx) error {
	format := exports.Format(c.Query("format", string(exports.FormatCSV)))

	var criteria reports.Criteria
	if err := c.QueryParser(&criteria); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid filters: "+err.Error())
	}

	rows, err := reports.FilteredRows(c.Context(), criteria)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	result, err := exports.Export(rows, format)
	if err != nil {
		if errors.Is(err, exports.ErrPDFDependencyMissing) {
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	c.Set(fiber.HeaderContentType, result.MimeType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}
