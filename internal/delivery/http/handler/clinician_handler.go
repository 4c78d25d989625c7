package handler

import (
	"encoding/json"
	"net/http"

	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/usecase"
	"rehab-match/pkg/response"
	"rehab-match/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClinicianHandler struct {
	clinicianUsecase usecase.ClinicianUsecase
	validator        *validator.CustomValidator
}

func NewClinicianHandler(clinicianUsecase usecase.ClinicianUsecase, validator *validator.CustomValidator) *ClinicianHandler {
	return &ClinicianHandler{
		clinicianUsecase: clinicianUsecase,
		validator:        validator,
	}
}

// Create handles clinician registration
// @Summary Create a new clinician
// @Tags Clinicians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateClinicianRequest true "Create Clinician Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /clinicians [post]
func (h *ClinicianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinician, err := h.clinicianUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create clinician")
		return
	}

	response.Success(w, http.StatusCreated, "Clinician created successfully", clinician)
}

// GetAll handles getting all clinicians, optionally filtered by specialty
// @Summary Get all clinicians
// @Tags Clinicians
// @Security BearerAuth
// @Produce json
// @Param specialty query string false "Filter by specialty"
// @Success 200 {object} response.Response
// @Router /clinicians [get]
func (h *ClinicianHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	var (
		clinicians *dto.ClinicianListResponse
		err        error
	)
	if specialty != "" {
		clinicians, err = h.clinicianUsecase.GetBySpecialty(r.Context(), specialty)
	} else {
		clinicians, err = h.clinicianUsecase.GetAll(r.Context())
	}
	if err != nil {
		response.InternalServerError(w, "Failed to get clinicians")
		return
	}

	response.Success(w, http.StatusOK, "Clinicians retrieved successfully", clinicians)
}

// GetByID handles getting a clinician by ID
// @Summary Get clinician by ID
// @Tags Clinicians
// @Security BearerAuth
// @Produce json
// @Param id path string true "Clinician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clinicians/{id} [get]
func (h *ClinicianHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	clinician, err := h.clinicianUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrClinicianNotFound:
			response.NotFound(w, "Clinician not found")
		default:
			response.InternalServerError(w, "Failed to get clinician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinician retrieved successfully", clinician)
}

// Update handles clinician update
// @Summary Update a clinician
// @Tags Clinicians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Clinician ID"
// @Param request body dto.UpdateClinicianRequest true "Update Clinician Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clinicians/{id} [put]
func (h *ClinicianHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	var req dto.UpdateClinicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinician, err := h.clinicianUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicianNotFound:
			response.NotFound(w, "Clinician not found")
		default:
			response.InternalServerError(w, "Failed to update clinician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinician updated successfully", clinician)
}

// Delete handles clinician deletion
// @Summary Delete a clinician
// @Tags Clinicians
// @Security BearerAuth
// @Produce json
// @Param id path string true "Clinician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clinicians/{id} [delete]
func (h *ClinicianHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	err = h.clinicianUsecase.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrClinicianNotFound:
			response.NotFound(w, "Clinician not found")
		default:
			response.InternalServerError(w, "Failed to delete clinician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinician deleted successfully", nil)
}
