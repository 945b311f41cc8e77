package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokemonreview/internal/service"
)

// UploadSprite stores an image for a pokemon (multipart/form-data, field name: file).
//
//	@Summary	Upload pokemon sprite
//	@Tags		sprite
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		int		true	"pokemon id"
//	@Param		file	formData	file	true	"image"
//	@Success	201		{object}	service.SpriteInfo
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/api/pokemon/{id}/sprite [post]
func UploadSprite(svc service.SpriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		info, err := svc.Upload(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}

// GetSprite redirects to a short-lived download URL for the sprite.
//
//	@Summary	Download pokemon sprite
//	@Tags		sprite
//	@Param		id	path	int	true	"pokemon id"
//	@Success	307
//	@Failure	404	{object}	errorPayload
//	@Router		/api/pokemon/{id}/sprite [get]
func GetSprite(svc service.SpriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.URL(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}
