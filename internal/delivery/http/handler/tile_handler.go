package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/pkg/utils"
	"github.com/annotation-microservice/internal/usecase"
)

// TileHandler serves pre-rendered raster tiles. Requests arrive in XYZ
// convention; the stored pyramid is TMS, so the row is flipped exactly once
// on the way to storage.
type TileHandler struct {
	tileUC *usecase.TileUseCase
	logger *zap.Logger
}

func NewTileHandler(tileUC *usecase.TileUseCase, logger *zap.Logger) *TileHandler {
	return &TileHandler{
		tileUC: tileUC,
		logger: logger,
	}
}

// GetTile godoc
// @Summary Fetch one raster tile
// @Description Returns the PNG tile at the XYZ address, or redirects to a time-limited object URL when the backend signs URLs. Missing tiles are 404: pyramids are sparse and the map client leaves those tiles blank.
// @Tags Tiles
// @Produce png
// @Param dataset path string true "Dataset (substation) identifier"
// @Param z path int true "Zoom level"
// @Param x path int true "Tile column"
// @Param y path int true "Tile row (XYZ, row 0 at the north edge)"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tiles/{dataset}/{z}/{x}/{y}.png [get]
func (h *TileHandler) GetTile(c *fiber.Ctx) error {
	addr, err := domain.ParseTileAddress(
		c.Params("dataset"),
		c.Params("z"),
		c.Params("x"),
		c.Params("y"),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	if h.tileUC.CanSignURLs() {
		url, err := h.tileUC.SignTileURL(c.Context(), addr)
		if err != nil {
			return utils.SendError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}

	data, err := h.tileUC.GetTile(c.Context(), addr)
	if err != nil {
		// Misses are routine; SendError maps them to a plain 404.
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}

// GetTileInfo godoc
// @Summary Resolve a tile address
// @Description Debug endpoint: returns the TMS row, storage key and geographic bounds for an XYZ tile address without touching tile storage.
// @Tags Tiles
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tiles/{dataset}/{z}/{x}/{y}/info [get]
func (h *TileHandler) GetTileInfo(c *fiber.Ctx) error {
	addr, err := domain.ParseTileAddress(
		c.Params("dataset"),
		c.Params("z"),
		c.Params("x"),
		c.Params("y"),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.tileUC.Info(addr), nil)
}

// Malformed catches every tile path that did not decompose into exactly
// four segments. Wrong shape is the client's fault, not a lookup miss.
func (h *TileHandler) Malformed(c *fiber.Ctx) error {
	return utils.SendError(c, apperrors.ErrInvalidTilePath.WithDetails(map[string]interface{}{
		"path": c.Path(),
	}))
}
