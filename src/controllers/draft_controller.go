package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/drafts"
	"Backend-ECW-B2S/src/utils"
)

// SaveDraft godoc
// @Summary      Save the current form snapshot as a draft
// @Description  Without a draftId the snapshot gets a fresh key; with one it overwrites that key
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body body models.Submission true "Form snapshot"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /drafts [post]
func SaveDraft(c *fiber.Ctx) error {
	var submission models.Submission
	if err := c.BodyParser(&submission); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	key, err := drafts.Save(c.Context(), &submission)
	if err != nil {
		// the form still holds the snapshot, the user retries explicitly
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save draft: "+err.Error())
	}

	return c.JSON(fiber.Map{"draftId": key, "savedAt": submission.SavedAt})
}

// ListDrafts godoc
// @Summary      List saved drafts
// @Tags         drafts
// @Produce      json
// @Success      200  {array}  drafts.Draft
// @Failure      500  {object}  models.ErrorResponse
// @Router       /drafts [get]
func ListDrafts(c *fiber.Ctx) error {
	list, err := drafts.List(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// GetDraft godoc
// @Summary      Load one draft to hydrate the form
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft key"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drafts/{id} [get]
func GetDraft(c *fiber.Ctx) error {
	sub, err := drafts.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, drafts.ErrDraftNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Draft not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(sub)
}

// DeleteDraft godoc
// @Summary      Delete a draft
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft key"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /drafts/{id} [delete]
func DeleteDraft(c *fiber.Ctx) error {
	if err := drafts.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, drafts.ErrDraftNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Draft not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Draft deleted successfully"})
}
