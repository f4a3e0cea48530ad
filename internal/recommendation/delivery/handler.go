package delivery

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"

	imageusecase "watchlog-backend/internal/image/usecase"

	"github.com/gin-gonic/gin"
)

//go:embed recommendations.json
var recommendationsData []byte

// Recommendation is one entry of the built-in watch suggestion catalog.
type Recommendation struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

// RecommendationHandler serves random watch suggestions, enriched with a
// cached poster when one exists.
type RecommendationHandler struct {
	imageUsecase imageusecase.ImageUsecase
	catalog      []Recommendation
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(imageUsecase imageusecase.ImageUsecase) (*RecommendationHandler, error) {
	var catalog []Recommendation
	if err := json.Unmarshal(recommendationsData, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse recommendation catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("recommendation catalog is empty")
	}

	return &RecommendationHandler{
		imageUsecase: imageUsecase,
		catalog:      catalog,
	}, nil
}

// GetRecommendation returns a random catalog entry
// GET /api/recommendation
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	pick := h.catalog[rand.IntN(len(h.catalog))]

	// Cache-only lookup; a missing poster is fine
	img, err := h.imageUsecase.FindByName(pick.Name)
	if err != nil {
		log.Printf("[WARN] Poster lookup failed for recommendation %q: %v", pick.Name, err)
		img = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  pick.Name,
		"genre": pick.Genre,
		"year":  pick.Year,
		"img":   img,
	})
}
