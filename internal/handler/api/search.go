package api

import (
	"net/http"
	"slices"
	"strings"
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultRecentHours = 24

type SearchHandler struct {
	q     queries.SearchQueries
	clock clock.Clock
}

func NewSearchHandler(q queries.SearchQueries, clk clock.Clock) *SearchHandler {
	return &SearchHandler{q: q, clock: clk}
}

// @Summary Full-text booking search
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.SearchDocumentResponse]
// @Router /api/search/bookings [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var q reqdto.TextSearchQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.SearchBookings(c.Request.Context(), q.Q, q.Request())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentPage(page))
}

func (h *SearchHandler) FindByReference(c *gin.Context) {
	doc, err := h.q.FindByReference(c.Request.Context(), strings.TrimSpace(c.Param("reference")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocument(*doc))
}

// @Summary Search a user's bookings
// @Tags search
// @Produce json
// @Param id path int true "User ID"
// @Param status query []string false "Statuses"
// @Param checkInFrom query string false "YYYY-MM-DD"
// @Param checkInTo query string false "YYYY-MM-DD"
// @Param city query string false "Hotel city"
// @Success 200 {object} resdto.PageResponse[resdto.SearchDocumentResponse]
// @Router /api/search/users/{id}/bookings [get]
func (h *SearchHandler) UserBookings(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.BookingFilterQuery
	if !bindQuery(c, &q) {
		return
	}
	criteria, err := q.ToCriteria()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.SearchUserBookings(c.Request.Context(), userID, criteria, q.Request())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentPage(page))
}

func (h *SearchHandler) UpcomingHotelBookings(c *gin.Context) {
	hotelID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.UpcomingHotelBookings(c.Request.Context(), hotelID, q.Request())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentPage(page))
}

// Recent lists bookings created within the last `hours` hours (default 24).
func (h *SearchHandler) Recent(c *gin.Context) {
	var q reqdto.RecentQuery
	if !bindQuery(c, &q) {
		return
	}
	hours := q.Hours
	if hours == 0 {
		hours = defaultRecentHours
	}
	since := h.clock.Now().Add(-time.Duration(hours) * time.Hour)
	page, err := h.q.RecentBookings(c.Request.Context(), since, q.Request())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocumentPage(page))
}

func (h *SearchHandler) Overlapping(c *gin.Context) {
	hotelID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if !bindQuery(c, &q) {
		return
	}
	checkIn, err := reqdto.ParseDate("checkIn", q.CheckIn)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	checkOut, err := reqdto.ParseDate("checkOut", q.CheckOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	docs, err := h.q.OverlappingBookings(c.Request.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDocuments(docs))
}

// @Summary Booking count per status
// @Tags search
// @Produce json
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {array} resdto.StatusCountResponse
// @Router /api/search/stats/status [get]
func (h *SearchHandler) StatusHistogram(c *gin.Context) {
	var q reqdto.RangeQuery
	if !bindQuery(c, &q) {
		return
	}
	start, err := reqdto.ParseDate("start", q.Start)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	end, err := reqdto.ParseDate("end", q.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	counts, err := h.q.StatusHistogram(c.Request.Context(), start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	out := make([]resdto.StatusCountResponse, 0, len(counts))
	for status, n := range counts {
		out = append(out, resdto.StatusCountResponse{Status: status.String(), Count: n})
	}
	slices.SortFunc(out, func(a, b resdto.StatusCountResponse) int { return strings.Compare(a.Status, b.Status) })
	c.JSON(http.StatusOK, out)
}

func (h *SearchHandler) TopDestinations(c *gin.Context) {
	var q reqdto.LimitQuery
	if !bindQuery(c, &q) {
		return
	}
	cities, err := h.q.TopDestinations(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}
