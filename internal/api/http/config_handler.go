package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guess-the-liar/internal/game"
	"guess-the-liar/internal/room"
)

// UpdateScoringRequest replaces the scoring coefficients. Zero values are
// legal; a host can switch a coefficient off entirely.
type UpdateScoringRequest struct {
	CorrectAccusation int `json:"correctAccusation"`
	PerfectDeception  int `json:"perfectDeception"`
	PerEvadedVoter    int `json:"perEvadedVoter"`
}

// GetScoringHandler returns the active scoring coefficients.
func GetScoringHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := rm.Policy()
		c.JSON(http.StatusOK, gin.H{
			"correctAccusation": p.CorrectAccusation,
			"perfectDeception":  p.PerfectDeception,
			"perEvadedVoter":    p.PerEvadedVoter,
		})
	}
}

// UpdateScoringHandler swaps in new coefficients for rounds scored after
// this call. Already-revealed rounds keep their results.
func UpdateScoringHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateScoringRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scoring payload"})
			return
		}
		if req.CorrectAccusation < 0 || req.PerfectDeception < 0 || req.PerEvadedVoter < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coefficients must be non-negative"})
			return
		}
		rm.SetPolicy(game.Policy{
			CorrectAccusation: req.CorrectAccusation,
			PerfectDeception:  req.PerfectDeception,
			PerEvadedVoter:    req.PerEvadedVoter,
		})
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
