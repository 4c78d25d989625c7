package dto

type OptimizeResponse struct {
	Assignments  []CandidateResponse `json:"assignments"`
	Unassigned   []string            `json:"unassigned"`
	StrategyUsed string              `json:"strategy_used"`
	Total        int                 `json:"total"`
}
