package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/pkg/utils"
	"github.com/annotation-microservice/internal/usecase"
	"github.com/annotation-microservice/internal/usecase/dto"
)

// SubstationHandler serves the substations collection endpoints.
type SubstationHandler struct {
	substationUC *usecase.SubstationUseCase
	logger       *zap.Logger
}

func NewSubstationHandler(substationUC *usecase.SubstationUseCase, logger *zap.Logger) *SubstationHandler {
	return &SubstationHandler{
		substationUC: substationUC,
		logger:       logger,
	}
}

// List godoc
// @Summary List all substations
// @Description Returns the full substation collection as a bare JSON array. The collection version is exposed in the ETag header.
// @Tags Substations
// @Produce json
// @Success 200 {array} domain.Substation
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/substations [get]
func (h *SubstationHandler) List(c *fiber.Ctx) error {
	records, version, err := h.substationUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list substations", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderETag, `"`+version+`"`)
	// The collection endpoints speak bare arrays, matching what annotation
	// clients read, modify and post back wholesale.
	return c.JSON(records)
}

// Replace godoc
// @Summary Replace the substation collection
// @Description Replaces the entire persisted collection with the posted JSON array. Send If-Match with a previously read ETag to get conflict detection.
// @Tags Substations
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/substations [post]
func (h *SubstationHandler) Replace(c *fiber.Ctx) error {
	var records []domain.Substation
	if err := c.BodyParser(&records); err != nil {
		return utils.SendError(c, apperrors.ErrValidation.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		}))
	}

	version, err := h.substationUC.ReplaceAll(
		c.Context(),
		records,
		ifMatchVersion(c),
		c.Get("X-Annotator"),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Substation collection replaced",
		zap.Int("records", len(records)),
		zap.String("version", version))

	c.Set(fiber.HeaderETag, `"`+version+`"`)
	return utils.SendSuccess(c, dto.ReplaceResult{Count: len(records), Version: version}, nil)
}

// ifMatchVersion extracts the expected collection version from an If-Match
// header; empty means the caller opted out of conflict detection.
func ifMatchVersion(c *fiber.Ctx) string {
	return strings.Trim(c.Get(fiber.HeaderIfMatch), `"`)
}
