package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/grid"
	submissionSvc "Backend-ECW-B2S/src/services/submissions"
	"Backend-ECW-B2S/src/utils"
)

// GetGridRows godoc
// @Summary      Current materialized grid rows
// @Description  Served from the live row set kept in sync by the change stream
// @Tags         grid
// @Produce      json
// @Success      200  {array}  models.FlatRow
// @Router       /grid/rows [get]
func GetGridRows(c *fiber.Ctx) error {
	return c.JSON(grid.Rows())
}

// UpdateGridActivity godoc
// @Summary      Inline-edit one grid row
// @Description  Patches the activity and the parent's directorate/volunteer, then rewrites the submission. Last write wins.
// @Tags         grid
// @Accept       json
// @Produce      json
// @Param        id    path string true "Submission ID"
// @Param        index path int    true "Activity index"
// @Param        body  body models.FlatRow true "Edited row"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grid/{id}/activities/{index} [put]
func UpdateGridActivity(c *fiber.Ctx) error {
	id, index, err := gridTarget(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	var row models.FlatRow
	if err := c.BodyParser(&row); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := submissionSvc.UpdateActivity(c.Context(), id, index, row)
	if err != nil {
		return gridError(c, err)
	}
	return c.JSON(updated)
}

// DeleteGridActivity godoc
// @Summary      Delete one activity row
// @Description  Deleting the last remaining activity deletes the whole submission
// @Tags         grid
// @Produce      json
// @Param        id    path string true "Submission ID"
// @Param        index path int    true "Activity index"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grid/{id}/activities/{index} [delete]
func DeleteGridActivity(c *fiber.Ctx) error {
	id, index, err := gridTarget(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := submissionSvc.DeleteActivity(c.Context(), id, index); err != nil {
		return gridError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}

func gridTarget(c *fiber.Ctx) (primitive.ObjectID, int, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, 0, errors.New("invalid submission ID")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return primitive.NilObjectID, 0, errors.New("invalid activity index")
	}
	return id, index, nil
}

func gridError(c *fiber.Ctx, err error) error {
	if errors.Is(err, submissionSvc.ErrSubmissionNotFound) || errors.Is(err, submissionSvc.ErrActivityNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
}
