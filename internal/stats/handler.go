package stats

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httperr "github.com/pinkpig777/cinestats/internal/core/errors"
	"github.com/shopspring/decimal"
)

// overviewResponse adds the hour total the UI displays.
type overviewResponse struct {
	Overview
	TotalHours decimal.Decimal `json:"total_hours"`
}

type dashboardResponse struct {
	*Dashboard
	Overview overviewResponse `json:"overview"`
}

// RegisterRoutes registers the stats API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/stats/:user_id")
	g.GET("", s.HandleDashboard)
	g.GET("/overview", s.HandleOverview)
	g.GET("/contributors", s.HandleContributors)
	g.GET("/trends", s.HandleTrends)
	g.GET("/trend-years", s.HandleTrendYears)
	g.GET("/heatmap", s.HandleHeatmap)
	g.GET("/heatmap/years", s.HandleHeatmapYears)
	g.GET("/most-watched", s.HandleMostWatched)
}

// HandleDashboard handles GET /v1/stats/:user_id
func (s *Service) HandleDashboard(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	d, err := s.Dashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnavailableError,
			Message:   "Dashboard computation was interrupted",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{Dashboard: d, Overview: toOverviewResponse(d.Overview)})
}

// HandleOverview handles GET /v1/stats/:user_id/overview
func (s *Service) HandleOverview(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toOverviewResponse(s.CalculateOverview(c.Request.Context(), userID)))
}

// HandleContributors handles GET /v1/stats/:user_id/contributors?limit=
func (s *Service) HandleContributors(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.CalculateTopContributors(c.Request.Context(), userID, limit))
}

// HandleTrends handles GET /v1/stats/:user_id/trends?year=
// Without year the trailing twelve months are returned.
func (s *Service) HandleTrends(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	year, hasYear, ok := bindYear(c)
	if !ok {
		return
	}

	if !hasYear {
		c.JSON(http.StatusOK, s.CalculateTrends(c.Request.Context(), userID))
		return
	}

	trends, err := s.CalculateTrendsForYear(c.Request.Context(), userID, year)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// HandleTrendYears handles GET /v1/stats/:user_id/trend-years
func (s *Service) HandleTrendYears(c *gin.Context) {
	if _, ok := bindUserID(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": s.TrendYears()})
}

// HandleHeatmap handles GET /v1/stats/:user_id/heatmap?year=
// year defaults to the current year.
func (s *Service) HandleHeatmap(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	year, hasYear, ok := bindYear(c)
	if !ok {
		return
	}
	if !hasYear {
		year = s.today().Year()
	}
	c.JSON(http.StatusOK, s.CalculateHeatmap(c.Request.Context(), userID, year))
}

// HandleHeatmapYears handles GET /v1/stats/:user_id/heatmap/years
func (s *Service) HandleHeatmapYears(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": s.HeatmapYears(c.Request.Context(), userID)})
}

// HandleMostWatched handles GET /v1/stats/:user_id/most-watched?limit=
func (s *Service) HandleMostWatched(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": s.MostWatchedMovies(c.Request.Context(), userID, limit)})
}

func toOverviewResponse(o Overview) overviewResponse {
	hours := decimal.NewFromInt(int64(o.TotalMinutes)).Div(decimal.NewFromInt(60)).Round(1)
	return overviewResponse{Overview: o, TotalHours: hours}
}

func bindUserID(c *gin.Context) (int64, bool) {
	raw := c.Param("user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidParameterError,
			Message:   "Invalid path parameters",
			Details:   fmt.Sprintf("user_id must be a positive integer, got %q", raw),
		})
		return 0, false
	}
	return id, true
}

// bindLimit returns 0 when limit is absent so the service default applies.
func bindLimit(c *gin.Context) (int, bool) {
	raw, present := c.GetQuery("limit")
	if !present {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxRankingLimit {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   fmt.Sprintf("limit must be between 1 and %d, got %q", maxRankingLimit, raw),
		})
		return 0, false
	}
	return limit, true
}

func bindYear(c *gin.Context) (year int, present bool, ok bool) {
	raw, present := c.GetQuery("year")
	if !present {
		return 0, false, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   fmt.Sprintf("year must be a four-digit year, got %q", raw),
		})
		return 0, true, false
	}
	return year, true, true
}

func writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid stats query",
			Details:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   "Failed to compute stats",
		Details:   err.Error(),
	})
}
