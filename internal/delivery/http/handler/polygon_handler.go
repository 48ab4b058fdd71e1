package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/pkg/utils"
	"github.com/annotation-microservice/internal/usecase"
	"github.com/annotation-microservice/internal/usecase/dto"
)

// PolygonHandler serves the component polygon collection endpoints.
type PolygonHandler struct {
	polygonUC *usecase.PolygonUseCase
	logger    *zap.Logger
}

func NewPolygonHandler(polygonUC *usecase.PolygonUseCase, logger *zap.Logger) *PolygonHandler {
	return &PolygonHandler{
		polygonUC: polygonUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List all component polygons
// @Description Returns the full component polygon collection as a bare JSON array, with legacy labels normalized. The collection version is exposed in the ETag header.
// @Tags Polygons
// @Produce json
// @Success 200 {array} domain.ComponentPolygon
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/polygons [get]
func (h *PolygonHandler) List(c *fiber.Ctx) error {
	records, version, err := h.polygonUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list polygons", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderETag, `"`+version+`"`)
	return c.JSON(records)
}

// Replace godoc
// @Summary Replace the component polygon collection
// @Description Replaces the entire persisted collection. Placeholder ids are replaced with durable UUIDs; reference records (from_osm) must be carried over unchanged.
// @Tags Polygons
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/polygons [post]
func (h *PolygonHandler) Replace(c *fiber.Ctx) error {
	var records []domain.ComponentPolygon
	if err := c.BodyParser(&records); err != nil {
		return utils.SendError(c, apperrors.ErrValidation.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		}))
	}

	version, err := h.polygonUC.ReplaceAll(
		c.Context(),
		records,
		ifMatchVersion(c),
		c.Get("X-Annotator"),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Polygon collection replaced",
		zap.Int("records", len(records)),
		zap.String("version", version))

	c.Set(fiber.HeaderETag, `"`+version+`"`)
	return utils.SendSuccess(c, dto.ReplaceResult{Count: len(records), Version: version}, nil)
}

// GetLabels godoc
// @Summary Component label vocabulary
// @Description Returns the controlled vocabulary of component labels, ending with the "Other" sentinel.
// @Tags Polygons
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/polygons/labels [get]
func (h *PolygonHandler) GetLabels(c *fiber.Ctx) error {
	labels := h.polygonUC.Labels()
	return utils.SendSuccess(c, labels, &utils.Meta{Total: len(labels)})
}
