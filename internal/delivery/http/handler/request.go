package handler

import (
	"errors"
	"strconv"
	"strings"

	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	fields := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, err)
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameter: "+key, nil, err)
	}
	return v, nil
}

func paramUUID(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

func callerFrom(c fiber.Ctx) (usecase.Caller, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return usecase.Caller{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return caller, nil
}
