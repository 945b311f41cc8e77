package handler

import (
	"github.com/gofiber/fiber/v2"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/service"
)

// ListPokemon returns one page of pokemon.
//
//	@Summary	List pokemon
//	@Tags		pokemon
//	@Produce	json
//	@Param		pageNo		query		int	false	"zero based page number"	default(0)
//	@Param		pageSize	query		int	false	"page size"					default(10)
//	@Success	200			{object}	dto.PokemonPage
//	@Router		/api/pokemon [get]
func ListPokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNo := c.QueryInt("pageNo", 0)
		pageSize := c.QueryInt("pageSize", service.DefaultPageSize)

		page, err := svc.List(c.UserContext(), pageNo, pageSize)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetPokemon returns a pokemon by id.
//
//	@Summary	Get pokemon
//	@Tags		pokemon
//	@Produce	json
//	@Param		id	path		int	true	"pokemon id"
//	@Success	200	{object}	dto.PokemonDto
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/pokemon/{id} [get]
func GetPokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetPokemonByType returns the first pokemon of a type.
//
//	@Summary	Get pokemon by type
//	@Tags		pokemon
//	@Produce	json
//	@Param		type	path		string	true	"pokemon type"
//	@Success	200		{object}	dto.PokemonDto
//	@Failure	404		{object}	errorPayload
//	@Router		/api/pokemon/type/{type} [get]
func GetPokemonByType(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetByType(c.UserContext(), c.Params("type"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// CreatePokemon stores a new pokemon.
//
//	@Summary	Create pokemon
//	@Tags		pokemon
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.PokemonDto	true	"pokemon"
//	@Success	201		{object}	dto.PokemonDto
//	@Failure	400		{object}	errorPayload
//	@Router		/api/pokemon/create [post]
func CreatePokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.PokemonDto
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePokemon overwrites name and type of a pokemon.
//
//	@Summary	Update pokemon
//	@Tags		pokemon
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"pokemon id"
//	@Param		body	body		dto.PokemonDto	true	"pokemon"
//	@Success	200		{object}	dto.PokemonDto
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/api/pokemon/{id}/update [put]
func UpdatePokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in dto.PokemonDto
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
		p, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// DeletePokemon removes a pokemon together with its reviews.
//
//	@Summary	Delete pokemon
//	@Tags		pokemon
//	@Produce	json
//	@Param		id	path		int	true	"pokemon id"
//	@Success	200	{object}	messagePayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/pokemon/{id}/delete [delete]
func DeletePokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(messagePayload{Message: "Pokemon deleted"})
	}
}
