//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"room-booking-api/internal/handler/api"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/tests/common/builder"
	"room-booking-api/tests/common/httptest"
	"room-booking-api/tests/common/testutil"
	commandsmock "room-booking-api/tests/mock/commands"
	queriesmock "room-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = int64(100)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an Authorization header stands in for RequireAuth
	authenticated := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", testUserID)
			}
			next(c)
		}
	}

	s.router.POST("/reservations", authenticated(s.handler.CreateReservation))
	s.router.PUT("/reservations/:id", authenticated(s.handler.UpdateReservation))
	s.router.DELETE("/reservations/:id", authenticated(s.handler.DeleteReservation))
	s.router.GET("/reservations/my", authenticated(s.handler.ListMyReservations))
	s.router.GET("/reservations/room/:roomId", authenticated(s.handler.ListRoomReservations))
	s.router.GET("/reservations/:id", authenticated(s.handler.GetReservation))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateDTO()
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams(testUserID)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomID, response.RoomID)
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: end_time", mutate: testutil.Field("end_time", nil)},
			{name: "start_time is not a timestamp", mutate: testutil.Field("start_time", "not-a-time")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid time range",
				commandsError:  commands.ErrInvalidTimeRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time range",
			},
			{
				name:           "outside working hours",
				commandsError:  commands.ErrOutsideWorkingHours,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "outside the room working hours",
			},
			{
				name:           "conflict with existing reservation",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "overlaps with an existing reservation",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	url := "/reservations/1"
	reqBody := builder.NewReservationBuilder().BuildUpdateDTO()
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().UpdateTime(gomock.Any(), reqBody.ToParams(1, testUserID)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed reservation ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/abc", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "belongs to another user",
			},
			{
				name:           "conflict with existing reservation",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "overlaps with an existing reservation",
			},
			{
				name:           "outside working hours",
				commandsError:  commands.ErrOutsideWorkingHours,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "outside the room working hours",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateTime(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	url := "/reservations/1"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), testUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when deleting another user's reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), testUserID).
			Return(commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "belongs to another user")
	})

	s.Run("error: 404 when reservation does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), testUserID).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns reservation by ID", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.RoomName, response.RoomName)
	})

	s.Run("error: 404 when reservation does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListRoomReservations() {
	returnViews := []*queries.ReservationView{builder.NewReservationBuilder().BuildReadModel()}

	s.Run("success: returns reservations for the room and date", func() {
		s.mockQueries.EXPECT().ListByRoomAndDate(gomock.Any(), int64(1), "2025-06-10").
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/room/1?date=2025-06-10", nil, "bearer-token")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 when date is missing or malformed", func() {
		s.mockQueries.EXPECT().ListByRoomAndDate(gomock.Any(), int64(1), "").
			Return(nil, queries.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/room/1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 on malformed room ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/room/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})
}

func (s *ReservationHandlerTestSuite) TestListMyReservations() {
	returnViews := []*queries.ReservationView{builder.NewReservationBuilder().BuildReadModel()}

	s.Run("success: returns upcoming reservations of the current user", func() {
		s.mockQueries.EXPECT().ListMyUpcoming(gomock.Any(), testUserID).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/my", nil, "bearer-token")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/my", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
