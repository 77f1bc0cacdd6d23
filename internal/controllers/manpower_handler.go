package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"next-target-mock/config"
	"next-target-mock/dto"
	"next-target-mock/internal/services"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// writeLookupError maps lookup failures to the {success:false} envelope.
func writeLookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingPersonalID):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPersonNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GetFront godoc
// @Summary      Get the stored record of a person
// @Description  Returns the stored document exactly as kept in the store (including _id and __v), without an envelope
// @Tags         manpower
// @Produce      json
// @Param        pid  query     string  true  "Personal ID"
// @Success      200  {object}  models.Person
// @Failure      400  {object}  dto.ErrorResponse  "missing pid"
// @Failure      404  {object}  dto.ErrorResponse  "person not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manpower/front [get]
func GetFront(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.GetFront(c.Context(), c.Query("pid"))
		if err != nil {
			return writeLookupError(c, err)
		}
		return c.JSON(doc)
	}
}

// GetByPersonalID godoc
// @Summary      Get a person (legacy shape)
// @Description  Returns a reduced person object wrapped in {success, person}
// @Tags         manpower
// @Produce      json
// @Param        pid  path      string  true  "Personal ID"
// @Success      200  {object}  dto.LegacyPersonResponse
// @Failure      404  {object}  dto.ErrorResponse  "person not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manpowers/{pid} [get]
func GetByPersonalID(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		person, err := svc.GetByID(c.Context(), c.Params("pid"))
		if err != nil {
			return writeLookupError(c, err)
		}
		return c.JSON(dto.LegacyPersonResponse{Success: true, Person: *person})
	}
}

// CreatePerson godoc
// @Summary      Create a person
// @Description  Inserts one record. personalId must be unique.
// @Tags         manpower
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePersonRequest  true  "Person"
// @Success      201   {object}  dto.CreatePersonResponse
// @Failure      400   {object}  dto.ErrorResponse  "invalid body, missing field or duplicate personalId"
// @Router       /api/manpowers [post]
func CreatePerson(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreatePersonRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}

		person, err := svc.Create(c.Context(), body)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(dto.CreatePersonResponse{Success: true, Person: *person})
	}
}

// ListPeople godoc
// @Summary      List all people
// @Description  Returns every record ordered by lastName ascending
// @Tags         manpower
// @Produce      json
// @Success      200  {object}  dto.ListPeopleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manpowers [get]
func ListPeople(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		people, err := svc.List(c.Context())
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(dto.ListPeopleResponse{Success: true, Count: len(people), People: people})
	}
}

// SeedFixed godoc
// @Summary      Reset to the demo roster
// @Description  Deletes every record, then inserts the fixed set of 20 people
// @Tags         seed
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seed [post]
func SeedFixed(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.SeedFixed(c.Context())
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(dto.SeedResponse{Success: true, Message: services.SeedMessage(n), Count: n})
	}
}

// DeleteAll godoc
// @Summary      Delete all people
// @Tags         manpower
// @Produce      json
// @Success      200  {object}  dto.DeleteAllResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manpowers [delete]
func DeleteAll(svc *services.ManpowerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.DeleteAll(c.Context())
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(dto.DeleteAllResponse{Success: true, Message: services.DeleteMessage(n), DeletedCount: n})
	}
}

// SeedHeavy godoc
// @Summary      Bulk-generate synthetic people
// @Description  Adds synthetic records in sequential batches without clearing existing data. A failed batch stops the run; earlier batches are kept.
// @Tags         seed
// @Produce      json
// @Param        count      query     int  false  "Records to create (default 5000)"
// @Param        batchSize  query     int  false  "Records per bulk insert (default 1000)"
// @Success      200  {object}  dto.SeedResponse
// @Failure      400  {object}  dto.ErrorResponse  "invalid count or batchSize"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seed-heavy [post]
func SeedHeavy(svc *services.ManpowerService, defaults config.SeedConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := positiveQuery(c, "count", defaults.BulkCount)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		batchSize, err := positiveQuery(c, "batchSize", defaults.BulkBatchSize)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}

		n, err := svc.SeedBulk(c.Context(), count, batchSize)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return fail(c, fiber.StatusBadRequest, err.Error())
			}
			return fail(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(dto.SeedResponse{Success: true, Message: services.SeedMessage(n), Count: n})
	}
}

func positiveQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return n, nil
}

// Capabilities godoc
// @Summary      List the mock's endpoints
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.CapabilitiesResponse
// @Router       / [get]
func Capabilities() fiber.Handler {
	resp := dto.CapabilitiesResponse{
		Message: "Next-Target Mock API is running",
		Endpoints: dto.Endpoints{
			Front:     "GET /api/manpower/front?pid=XXX",
			Search:    "GET /api/manpowers/:pid",
			List:      "GET /api/manpowers",
			Create:    "POST /api/manpowers",
			Seed:      "POST /api/seed",
			SeedHeavy: "POST /api/seed-heavy",
			DeleteAll: "DELETE /api/manpowers",
		},
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(resp)
	}
}
