package handler

import (
	"net/http"

	"selectz/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreditsHandler struct {
	creditsRepo *repository.CreditsRepository
}

func NewCreditsHandler(creditsRepo *repository.CreditsRepository) *CreditsHandler {
	return &CreditsHandler{creditsRepo: creditsRepo}
}

// GetBalance returns an employer's credit balance; employers who never bought
// credits get a zero balance, not a 404.
func (h *CreditsHandler) GetBalance(c *gin.Context) {
	employerID := c.Param("employer_id")
	balance, err := h.creditsRepo.GetByEmployer(employerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employer_id":     employerID,
		"balance":         balance.Balance,
		"total_purchased": balance.TotalPurchased,
	})
}
