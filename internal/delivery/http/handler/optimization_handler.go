package handler

import (
	"net/http"

	"rehab-match/internal/usecase"
	"rehab-match/pkg/response"
)

type OptimizationHandler struct {
	optimizationUsecase usecase.OptimizationUsecase
}

func NewOptimizationHandler(optimizationUsecase usecase.OptimizationUsecase) *OptimizationHandler {
	return &OptimizationHandler{
		optimizationUsecase: optimizationUsecase,
	}
}

// Optimize handles the global assignment run
// @Summary Compute a conflict-free schedule for the whole caseload
// @Description One assignment per patient, no double-booked (clinician, timeslot) pair
// @Tags Optimization
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /optimize [post]
func (h *OptimizationHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	result, err := h.optimizationUsecase.OptimizeAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to optimize schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule optimized successfully", result)
}
