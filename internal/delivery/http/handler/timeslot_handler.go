package handler

import (
	"encoding/json"
	"net/http"

	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/usecase"
	"rehab-match/pkg/response"
	"rehab-match/pkg/validator"

	"github.com/gorilla/mux"
)

type TimeslotHandler struct {
	timeslotUsecase usecase.TimeslotUsecase
	validator       *validator.CustomValidator
}

func NewTimeslotHandler(timeslotUsecase usecase.TimeslotUsecase, validator *validator.CustomValidator) *TimeslotHandler {
	return &TimeslotHandler{
		timeslotUsecase: timeslotUsecase,
		validator:       validator,
	}
}

// Create handles timeslot creation
// @Summary Create a new timeslot
// @Tags Timeslots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeslotRequest true "Create Timeslot Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /timeslots [post]
func (h *TimeslotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimeslotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.timeslotUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTimeslotExists:
			response.Conflict(w, "Timeslot already exists")
		default:
			response.InternalServerError(w, "Failed to create timeslot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Timeslot created successfully", slot)
}

// GetAll handles getting all timeslots
// @Summary Get all timeslots
// @Tags Timeslots
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /timeslots [get]
func (h *TimeslotHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	slots, err := h.timeslotUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get timeslots")
		return
	}

	response.Success(w, http.StatusOK, "Timeslots retrieved successfully", slots)
}

// GetByID handles getting a timeslot by ID
// @Summary Get timeslot by ID
// @Tags Timeslots
// @Security BearerAuth
// @Produce json
// @Param id path string true "Timeslot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /timeslots/{id} [get]
func (h *TimeslotHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slot, err := h.timeslotUsecase.GetByID(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrTimeslotNotFound:
			response.NotFound(w, "Timeslot not found")
		default:
			response.InternalServerError(w, "Failed to get timeslot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Timeslot retrieved successfully", slot)
}

// Delete handles timeslot deletion
// @Summary Delete a timeslot
// @Tags Timeslots
// @Security BearerAuth
// @Produce json
// @Param id path string true "Timeslot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /timeslots/{id} [delete]
func (h *TimeslotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	err := h.timeslotUsecase.Delete(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrTimeslotNotFound:
			response.NotFound(w, "Timeslot not found")
		default:
			response.InternalServerError(w, "Failed to delete timeslot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Timeslot deleted successfully", nil)
}
