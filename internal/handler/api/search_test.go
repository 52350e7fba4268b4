//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/testutil/builder"
	"hotel-booking/internal/testutil/httptest"
	indexingmock "hotel-booking/internal/testutil/mock/indexing"
	queriesmock "hotel-booking/internal/testutil/mock/queries"
	"hotel-booking/internal/usecase/indexing"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSearchQueries
	mockSync    *indexingmock.MockSyncRunner
	mockIndexer *indexingmock.MockReindexer
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSearchQueries(s.mockCtrl)
	s.mockSync = indexingmock.NewMockSyncRunner(s.mockCtrl)
	s.mockIndexer = indexingmock.NewMockReindexer(s.mockCtrl)

	h := api.NewSearchHandler(s.mockQueries, clock.NewMockClock(builder.FixedNow))
	s.router.GET("/search/bookings", h.Search)
	s.router.GET("/search/bookings/recent", h.Recent)
	s.router.GET("/search/bookings/reference/:reference", h.FindByReference)
	s.router.GET("/search/users/:id/bookings", h.UserBookings)
	s.router.GET("/search/hotels/:id/upcoming", h.UpcomingHotelBookings)
	s.router.GET("/search/hotels/:id/overlapping", h.Overlapping)
	s.router.GET("/search/stats/status", h.StatusHistogram)
	s.router.GET("/search/stats/destinations", h.TopDestinations)

	admin := api.NewAdminHandler(s.mockSync, s.mockIndexer)
	s.router.POST("/admin/search/resync", admin.Resync)
	s.router.POST("/admin/search/bookings/:id/reindex", admin.Reindex)
	s.router.DELETE("/admin/search/bookings/:id", admin.Remove)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func indexedDocument() search.Document {
	r := savedReservation()
	return search.Map(r, search.HotelInfo{Name: "Grand Hotel", City: "Paris", Country: "France"}, builder.FixedNow)
}

func onePage(docs ...search.Document) pagination.Page[search.Document] {
	return pagination.Slice(docs, pagination.NewRequest(0, 20))
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *SearchHandlerTestSuite) TestSearch() {
	s.Run("success: full text with paging", func() {
		s.mockQueries.EXPECT().SearchBookings(gomock.Any(), "alice", pagination.Request{Number: 1, Size: 5}).
			Return(onePage(indexedDocument()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/bookings?q=alice&page=1&size=5", nil, "")

		var body resdto.PageResponse[resdto.SearchDocumentResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("Paris", body.Items[0].HotelCity)
		s.Equal("2025-03-11", body.Items[0].CheckIn)
	})

	s.Run("error: 400 without query text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 503 when the search store fails", func() {
		s.mockQueries.EXPECT().SearchBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pagination.Page[search.Document]{}, errs.Mark(errors.New("connection refused"), errs.ErrSearchOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/bookings?q=alice", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})

	s.Run("error: 404 on unknown reference", func() {
		s.mockQueries.EXPECT().FindByReference(gomock.Any(), "NOPE").Return(nil, queries.ErrSearchDocumentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/bookings/reference/NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Search document not found")
	})
}

// ================================================================================
// TestUserBookings
// ================================================================================

func (s *SearchHandlerTestSuite) TestUserBookings() {
	s.Run("success: query parameters become criteria", func() {
		s.mockQueries.EXPECT().
			SearchUserBookings(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, c search.Criteria, _ pagination.Request) (pagination.Page[search.Document], error) {
				s.Equal([]booking.Status{booking.StatusConfirmed, booking.StatusPending}, c.Statuses)
				s.Require().NotNil(c.CheckInFrom)
				s.Equal(builder.Day(1), *c.CheckInFrom)
				s.Nil(c.CheckInTo)
				s.Require().NotNil(c.HotelCity)
				s.Equal("Paris", *c.HotelCity)
				s.Require().NotNil(c.MinAmountCents)
				s.Equal(int64(1000), *c.MinAmountCents)
				return onePage(indexedDocument()), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search/users/1/bookings?status=confirmed&status=PENDING&checkInFrom=2025-03-11&city=Paris&minAmountCents=1000", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/users/1/bookings?status=LOST", nil, "")
		detail := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		s.Equal("status", detail["field"])
	})

	s.Run("success: upcoming hotel bookings", func() {
		s.mockQueries.EXPECT().UpcomingHotelBookings(gomock.Any(), int64(100), pagination.NewRequest(0, 0)).
			Return(onePage(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/hotels/100/upcoming", nil, "")
		var body resdto.PageResponse[resdto.SearchDocumentResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("success: recent defaults to the last day", func() {
		s.mockQueries.EXPECT().RecentBookings(gomock.Any(), builder.FixedNow.Add(-24*time.Hour), gomock.Any()).
			Return(onePage(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/bookings/recent", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestAnalytics
// ================================================================================

func (s *SearchHandlerTestSuite) TestAnalytics() {
	s.Run("success: overlapping stays", func() {
		s.mockQueries.EXPECT().OverlappingBookings(gomock.Any(), int64(100), builder.Day(1), builder.Day(3)).
			Return([]search.Document{indexedDocument()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search/hotels/100/overlapping?checkIn=2025-03-11&checkOut=2025-03-13", nil, "")

		var body []resdto.SearchDocumentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 when a stay bound is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/hotels/100/overlapping?checkIn=2025-03-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: status histogram sorted by status", func() {
		s.mockQueries.EXPECT().StatusHistogram(gomock.Any(), builder.Day(0), builder.Day(30)).
			Return(map[booking.Status]int64{booking.StatusConfirmed: 2, booking.StatusCancelled: 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/stats/status?start=2025-03-10&end=2025-04-09", nil, "")

		var body []resdto.StatusCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.StatusCountResponse{
			{Status: "CANCELLED", Count: 1},
			{Status: "CONFIRMED", Count: 2},
		}, body)
	})

	s.Run("success: top destinations", func() {
		s.mockQueries.EXPECT().TopDestinations(gomock.Any(), 3).
			Return([]search.CityCount{{City: "Paris", Count: 4}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/stats/destinations?limit=3", nil, "")

		var body []search.CityCount
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]search.CityCount{{City: "Paris", Count: 4}}, body)
	})
}

// ================================================================================
// TestAdmin
// ================================================================================

func (s *SearchHandlerTestSuite) TestAdmin() {
	runID := uuid.New()

	s.Run("success: resync returns the report", func() {
		s.mockSync.EXPECT().Run(gomock.Any()).
			Return(indexing.Report{RunID: runID, Pages: 3, Processed: 5, Indexed: 5, Elapsed: 1500 * time.Millisecond}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/search/resync", nil, "")

		var body resdto.SyncReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(runID.String(), body.RunID)
		s.Equal(5, body.Indexed)
		s.Equal(int64(1500), body.ElapsedMs)
	})

	s.Run("error: maps sync errors to statuses", func() {
		testCases := []struct {
			name           string
			syncError      error
			expectedStatus int
		}{
			{name: "run in progress", syncError: indexing.ErrSyncInProgress, expectedStatus: http.StatusConflict},
			{name: "run failed", syncError: &indexing.SyncFailure{Page: 2, Err: errors.New("redis down")}, expectedStatus: http.StatusServiceUnavailable},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSync.EXPECT().Run(gomock.Any()).Return(indexing.Report{}, tc.syncError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/search/resync", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("success: reindex and remove a single booking", func() {
		s.mockIndexer.EXPECT().Reindex(gomock.Any(), int64(42)).Return(nil)
		s.mockIndexer.EXPECT().Remove(gomock.Any(), int64(42)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/search/bookings/42/reindex", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/search/bookings/42", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
