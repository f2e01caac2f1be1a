package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"psdgrader/internal/service"
)

// ListBatches returns archived batches newest first.
//
// @Summary List archived batches
// @Tags batches
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.BatchListResult
// @Failure 400 {object} errorPayload
// @Router /batches [get]
func ListBatches(svc service.BatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetBatch returns an archived batch with its report.
//
// @Summary Get an archived batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} service.BatchDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /batches/{id} [get]
func GetBatch(svc service.BatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return batchError(c, err)
		}
		return c.JSON(detail)
	}
}

// ExportBatchCSV returns the results of an archived batch as CSV.
//
// @Summary Export an archived batch as CSV
// @Tags batches
// @Produce text/csv
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /batches/{id}/export.csv [get]
func ExportBatchCSV(svc service.BatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return batchError(c, err)
		}
		return sendCSV(c, detail.Report)
	}
}

// DeleteBatch removes an archived batch and its report.
//
// @Summary Delete an archived batch
// @Tags batches
// @Param id path string true "Batch ID (UUID)"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /batches/{id} [delete]
func DeleteBatch(svc service.BatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return batchError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func batchError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "batch not found")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
