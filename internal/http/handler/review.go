package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/service"
)

// reviewIDs reads :pokemonId and, when withReview is set, :id.
func reviewIDs(c *fiber.Ctx, withReview bool) (pokemonID, reviewID int, ok bool) {
	if pokemonID, ok = paramID(c, "pokemonId"); !ok {
		return 0, 0, false
	}
	if !withReview {
		return pokemonID, 0, true
	}
	if reviewID, ok = paramID(c, "id"); !ok {
		return 0, 0, false
	}
	return pokemonID, reviewID, true
}

// CreateReview attaches a review to a pokemon.
//
//	@Summary	Create review
//	@Tags		review
//	@Accept		json
//	@Produce	json
//	@Param		pokemonId	path		int				true	"pokemon id"
//	@Param		body		body		dto.ReviewDto	true	"review"
//	@Success	201			{object}	dto.ReviewDto
//	@Failure	400			{object}	errorPayload
//	@Failure	404			{object}	errorPayload
//	@Router		/api/pokemon/{pokemonId}/reviews [post]
func CreateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, _, ok := reviewIDs(c, false)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in dto.ReviewDto
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
		rv, err := svc.Create(c.UserContext(), pokemonID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rv)
	}
}

// ListReviews returns the reviews of a pokemon.
//
//	@Summary	List reviews of a pokemon
//	@Tags		review
//	@Produce	json
//	@Param		pokemonId	path	int	true	"pokemon id"
//	@Success	200			{array}	dto.ReviewDto
//	@Router		/api/pokemon/{pokemonId}/reviews [get]
func ListReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, _, ok := reviewIDs(c, false)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.ListByPokemon(c.UserContext(), pokemonID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetReview returns one review of a pokemon.
//
//	@Summary	Get review
//	@Tags		review
//	@Produce	json
//	@Param		pokemonId	path		int	true	"pokemon id"
//	@Param		id			path		int	true	"review id"
//	@Success	200			{object}	dto.ReviewDto
//	@Failure	404			{object}	errorPayload
//	@Router		/api/pokemon/{pokemonId}/reviews/{id} [get]
func GetReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, reviewID, ok := reviewIDs(c, true)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rv, err := svc.Get(c.UserContext(), reviewID, pokemonID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rv)
	}
}

// UpdateReview overwrites title, content and stars of a review.
//
//	@Summary	Update review
//	@Tags		review
//	@Accept		json
//	@Produce	json
//	@Param		pokemonId	path		int				true	"pokemon id"
//	@Param		id			path		int				true	"review id"
//	@Param		body		body		dto.ReviewDto	true	"review"
//	@Success	200			{object}	dto.ReviewDto
//	@Failure	400			{object}	errorPayload
//	@Failure	404			{object}	errorPayload
//	@Router		/api/pokemon/{pokemonId}/reviews/{id} [put]
func UpdateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, reviewID, ok := reviewIDs(c, true)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in dto.ReviewDto
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
		rv, err := svc.Update(c.UserContext(), pokemonID, reviewID, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rv)
	}
}

// DeleteReview removes a review of a pokemon.
//
//	@Summary	Delete review
//	@Tags		review
//	@Produce	json
//	@Param		pokemonId	path		int	true	"pokemon id"
//	@Param		id			path		int	true	"review id"
//	@Success	200			{object}	messagePayload
//	@Failure	404			{object}	errorPayload
//	@Router		/api/pokemon/{pokemonId}/reviews/{id} [delete]
func DeleteReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, reviewID, ok := reviewIDs(c, true)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), pokemonID, reviewID); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(messagePayload{Message: "Review deleted successfully"})
	}
}
