package errors

import "net/http"

var (
	// ErrTileNotFound marks a sparse-pyramid miss. Expected and frequent,
	// surfaced as 404 and never logged as a server error.
	ErrTileNotFound = New(
		"TILE_NOT_FOUND",
		"No tile stored at the requested address",
		http.StatusNotFound,
	)

	ErrInvalidTilePath = New(
		"INVALID_TILE_PATH",
		"Tile path must be /api/tiles/{dataset}/{z}/{x}/{y}.png",
		http.StatusBadRequest,
	)

	ErrInvalidTileCoordinates = New(
		"INVALID_TILE_COORDINATES",
		"Invalid tile coordinates",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Payload fails collection invariants",
		http.StatusBadRequest,
	)

	ErrCollectionConflict = New(
		"COLLECTION_CONFLICT",
		"Collection was modified since it was read",
		http.StatusConflict,
	)

	ErrStorage = New(
		"STORAGE_ERROR",
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	ErrCache = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
