package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
	"github.com/MouhibAssas/HotelRoomsManagement/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
	roomSvc *service.RoomService
}

func NewHandler(room *service.RoomService) *Handler {
	return &Handler{roomSvc: room}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит ошибку сервиса в HTTP-статус.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "room not found"})
	case errors.Is(err, domain.ErrInvalidCursor):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_cursor"})
	case errors.Is(err, domain.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.FromContext(r.Context()).Error("handler."+op+":", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// decode читает JSON-тело и прогоняет его через validator.
func decode(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Warn("handler."+op+".Decode:", slog.Any("err", err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func roomID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return 0, false
	}
	return id, true
}

// GET /api/rooms
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	rooms, _ := h.roomSvc.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: rooms})
}

// GET /rooms?status=&q=&limit=&cursor=
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := service.Filter{
		Status: q.Get("status"),
		Query:  q.Get("q"),
		Cursor: q.Get("cursor"),
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		f.Limit = n
	}

	page, err := h.roomSvc.ListRooms(r.Context(), f)
	if err != nil {
		writeError(w, r, "ListRooms", err)
		return
	}
	writeJSON(w, http.StatusOK, RoomsListResponse{
		Items:      page.Items,
		NextCursor: page.NextCursor,
		Source:     page.Source,
	})
}

// GET /rooms/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse(h.roomSvc.Stats(r.Context())))
}

// GET /rooms/defaults
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: h.roomSvc.Defaults()})
}

// POST /rooms/initialize
func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: h.roomSvc.Initialize(r.Context())})
}

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if !decode(w, r, "CreateRoom", &req) {
		return
	}
	room, err := h.roomSvc.CreateRoom(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, "CreateRoom", err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

// GET /rooms/{id}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}
	room, err := h.roomSvc.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, r, "GetRoom", err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// PATCH /rooms/{id}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if !decode(w, r, "UpdateRoom", &req) {
		return
	}
	room, err := h.roomSvc.UpdateRoom(r.Context(), id, req.toPatch())
	if err != nil {
		writeError(w, r, "UpdateRoom", err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// PUT /rooms/{id}/status
func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}
	var req ChangeStatusRequest
	if !decode(w, r, "ChangeStatus", &req) {
		return
	}
	room, err := h.roomSvc.ChangeStatus(r.Context(), id, domain.Status(req.Status))
	if err != nil {
		writeError(w, r, "ChangeStatus", err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// DELETE /rooms/{id}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}
	if err := h.roomSvc.DeleteRoom(r.Context(), id); err != nil {
		writeError(w, r, "DeleteRoom", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
