package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/drafts"
	submissionSvc "Backend-ECW-B2S/src/services/submissions"
	"Backend-ECW-B2S/src/utils"
)

// CreateSubmission godoc
// @Summary      Submit a collection form
// @Description  Appends the form snapshot to remote storage; a bound draft is removed on success
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body body models.Submission true "Form snapshot"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions [post]
func CreateSubmission(c *fiber.Ctx) error {
	var submission models.Submission
	if err := c.BodyParser(&submission); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := submissionSvc.Create(c.Context(), &submission)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return utils.HandleError(c, fiber.StatusBadRequest, "A submission needs at least one activity")
		}
		// the snapshot is still in the caller's hands (form or draft); retry is manual
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit: "+err.Error())
	}

	// The remote copy exists now, so the originating draft has served its
	// purpose. A failed delete only leaves a stale draft behind.
	if created.DraftID != "" {
		if err := drafts.Delete(c.Context(), created.DraftID); err != nil && !errors.Is(err, drafts.ErrDraftNotFound) {
			log.Printf("[submissions] delete draft %s after submit: %v", created.DraftID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetSubmissions godoc
// @Summary      Get every submission keyed by id
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  map[string]models.Submission
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions [get]
func GetSubmissions(c *fiber.Ctx) error {
	subs, err := submissionSvc.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(subs)
}

// GetLatestSubmissions godoc
// @Summary      Get the most recent submissions
// @Tags         submissions
// @Produce      json
// @Param        limit query int false "Number of submissions" default(20)
// @Success      200  {array}  models.Submission
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions/latest [get]
func GetLatestSubmissions(c *fiber.Ctx) error {
	limit := int64(20)
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	subs, err := submissionSvc.GetLatest(c.Context(), limit)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(subs)
}

// GetSubmission godoc
// @Summary      Get one submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func GetSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	submission, err := submissionSvc.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
	}
	return c.JSON(submission)
}

// DeleteSubmission godoc
// @Summary      Delete a whole submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [delete]
func DeleteSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := submissionSvc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, submissionSvc.ErrSubmissionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
