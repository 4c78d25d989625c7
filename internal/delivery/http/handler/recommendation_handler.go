package handler

import (
	"net/http"

	"rehab-match/internal/usecase"
	"rehab-match/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUsecase: recommendationUsecase,
	}
}

// GetForPatient handles per-patient top-K recommendations
// @Summary Get appointment recommendations for a patient
// @Description Ranked (clinician, timeslot) recommendations plus any quality-score notification
// @Tags Recommendations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/recommendations [get]
func (h *RecommendationHandler) GetForPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	recommendation, err := h.recommendationUsecase.GetRecommendations(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get recommendations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recommendations retrieved successfully", recommendation)
}

// GetAll handles batch recommendations for every patient
// @Summary Get recommendations for all patients
// @Tags Recommendations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /recommendations [get]
func (h *RecommendationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.recommendationUsecase.GetAllRecommendations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get recommendations")
		return
	}

	response.Success(w, http.StatusOK, "Recommendations retrieved successfully", recommendations)
}
