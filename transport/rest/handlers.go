package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const maxBodyBytes = 1 << 10

type gameUseCase interface {
	State(ctx context.Context) *entity.Snapshot
	MakeTurn(ctx context.Context, index int) (*entity.Snapshot, error)
	Reset(ctx context.Context, firstPlayer entity.Cell) *entity.Snapshot
	SwapFirst(ctx context.Context) *entity.Snapshot
}

type handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

type moveRequest struct {
	Index *int `json:"index"`
}

type resetRequest struct {
	FirstPlayer entity.Cell `json:"first_player"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (that *handlers) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, that.game.State(r.Context()))
}

func (that *handlers) move(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "move")

	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Index == nil {
		that.writeError(w, fmt.Errorf("%w: index is required", apperror.ErrInvalidInput))
		return
	}

	snapshot, err := that.game.MakeTurn(r.Context(), *req.Index)
	if err != nil {
		log.Debug("move rejected", "index", *req.Index, "error", err)
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *handlers) reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, that.game.Reset(r.Context(), req.FirstPlayer))
}

func (that *handlers) swapFirst(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, that.game.SwapFirst(r.Context()))
}

// decodeJSON - an empty body decodes to the zero value, trailing data is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := decoder.Decode(dst)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, apperror.ErrInvalidInput):
		return err
	case err != nil:
		return fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	// the body has to hold exactly one JSON value
	if err = decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the request body", apperror.ErrInvalidInput)
	}

	return nil
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	if !apperror.IsRulesError(err) {
		that.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: errorDetail(err)})
}

func errorDetail(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameLocked):
		return "Game is over"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Cell is already occupied"
	case errors.Is(err, apperror.ErrOutOfRange):
		return "Index must be between 0 and 8"
	default:
		return "Invalid request"
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
