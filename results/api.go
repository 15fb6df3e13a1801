package results

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

var (
	ErrInvalidLimit  = errors.New("limit must be at least 1")
	ErrInvalidOffset = errors.New("offset must not be negative")
)

// APIServer serves stored results read-only over HTTP.
type APIServer struct {
	store Store
}

// NewAPIServer creates a new API server backed by store.
func NewAPIServer(store Store) *APIServer {
	return &APIServer{
		store: store,
	}
}

// SetupRouter configures the Gin router with all results routes.
func (s *APIServer) SetupRouter() *gin.Engine {
	router := gin.Default()

	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})

	api := router.Group("/api/v1/results")
	api.GET("", s.HandleListResults)
	api.GET("/summary", s.HandleSummary)

	return router
}

// ListResultsResponse is the body of GET /api/v1/results.
type ListResultsResponse struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// SummaryResponse is the body of GET /api/v1/results/summary.
type SummaryResponse struct {
	Total         int            `json:"total"`
	ByPrimary     map[string]int `json:"by_primary"`
	BySubCategory map[string]int `json:"by_sub_category"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// HandleListResults handles GET /api/v1/results. The primary and
// sub_category query parameters are applied with Filter.
func (s *APIServer) HandleListResults(c *gin.Context) {
	all, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "Failed to list results: "+err.Error()))
		return
	}

	all = Filter(all, c.Query("primary"), c.Query("sub_category"))

	total := len(all)

	limit := defaultLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, errorResponse("invalid_parameter", "Invalid limit parameter"))
			return
		}
		limit = min(parsed, maxLimit)
	}

	offset := 0
	if offsetParam := c.Query("offset"); offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, errorResponse("invalid_parameter", "Invalid offset parameter"))
			return
		}
		offset = parsed
	}

	page, err := Paginate(all, offset, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid_parameter", err.Error()))
		return
	}

	c.JSON(http.StatusOK, ListResultsResponse{
		Results: page,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// HandleSummary handles GET /api/v1/results/summary.
func (s *APIServer) HandleSummary(c *gin.Context) {
	all, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "Failed to list results: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, Summarize(all))
}

// Summarize counts results by trimmed primary label and by sub-category.
func Summarize(all []Result) SummaryResponse {
	summary := SummaryResponse{
		Total:         len(all),
		ByPrimary:     map[string]int{},
		BySubCategory: map[string]int{},
	}

	for _, r := range all {
		summary.ByPrimary[strings.TrimSpace(r.PrimaryLabel)]++
		summary.BySubCategory[r.SubCategory]++
	}

	return summary
}

// Filter keeps results whose primary label contains primary and whose
// sub-category equals subCategory, both ignoring case. The primary label is
// the model's raw answer, hence the looser match. Empty arguments match
// everything.
func Filter(all []Result, primary, subCategory string) []Result {
	if primary == "" && subCategory == "" {
		return all
	}

	needle := strings.ToLower(primary)
	filtered := []Result{}
	for _, r := range all {
		if primary != "" && !strings.Contains(strings.ToLower(r.PrimaryLabel), needle) {
			continue
		}
		if subCategory != "" && !strings.EqualFold(r.SubCategory, subCategory) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Paginate returns the results for the given offset and limit. An offset
// past the end yields an empty page.
func Paginate(all []Result, offset, limit int) ([]Result, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	if offset >= len(all) {
		return []Result{}, nil
	}

	end := min(offset+limit, len(all))
	return all[offset:end], nil
}
