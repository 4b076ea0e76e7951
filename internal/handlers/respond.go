package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strconv"

	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// bodyError reports a request body that could not be decoded.
type bodyError struct {
	err    error
	fields map[string]string
}

func (e *bodyError) Error() string { return "invalid request body: " + e.err.Error() }

func (e *bodyError) Unwrap() error { return e.err }

// parseBody decodes the request body into out. JSON type mismatches are
// reported against the offending field.
func parseBody(c *fiber.Ctx, out any) error {
	err := c.BodyParser(out)
	if err == nil {
		return nil
	}
	be := &bodyError{err: err}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		be.fields = map[string]string{
			typeErr.Field: fmt.Sprintf("Incorrect type. Expected %s, but got %s.", typeErr.Type, typeErr.Value),
		}
	}
	return be
}

// parseID reads the :id route parameter. Anything that is not a positive
// integer cannot name a record and is reported as not found.
func parseID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("no record with ID %q: %w", raw, repositories.ErrNotFound)
	}
	return uint(id), nil
}

// writeError maps a handler error to its HTTP response.
func writeError(c *fiber.Ctx, err error) error {
	var (
		verr *services.ValidationError
		berr *bodyError
	)
	switch {
	case errors.As(err, &berr):
		body := fiber.Map{
			"message": "Invalid request body",
			"error":   berr.err.Error(),
		}
		if len(berr.fields) > 0 {
			body["errors"] = berr.fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrUserExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Registration failed",
			"error":   err.Error(),
		})
	}

	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"error", err,
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// created writes the 201 envelope used by every create endpoint.
func created(c *fiber.Ctx, entity string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status_code": fiber.StatusCreated,
		"message":     entity + " was created successfully.",
		"data":        data,
	})
}

// formUpload opens the file submitted under field, if any. The returned
// close function is always safe to call.
func formUpload(form *multipart.Form, field string) (*services.Upload, func(), error) {
	noop := func() {}
	files := form.File[field]
	if len(files) == 0 {
		return nil, noop, nil
	}
	f, err := files[0].Open()
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open uploaded %s: %w", field, err)
	}
	return &services.Upload{Filename: files[0].Filename, Body: f}, func() { f.Close() }, nil
}

// multipartForm parses a multipart request body.
func multipartForm(c *fiber.Ctx) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, &bodyError{err: err}
	}
	return form, nil
}
