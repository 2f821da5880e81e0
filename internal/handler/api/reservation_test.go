//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"roombook/internal/domain/user"
	"roombook/internal/handler/api"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/queries"
	"roombook/tests/common/builder"
	"roombook/tests/common/httptest"
	"roombook/tests/common/testutil"
	mock_commands "roombook/tests/mock/commands"
	mock_queries "roombook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *mock_commands.MockBookingCommands
	mockQueries  *mock_queries.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()

	// Mock middleware behavior: an Authorization header stands in for a
	// validated token.
	withActor := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.actorID)
				c.Set("user_role", user.RoleMember)
			}
			h(c)
		}
	}

	s.router.POST("/reservations", withActor(s.handler.Create))
	s.router.GET("/reservations", withActor(s.handler.List))
	s.router.DELETE("/reservations/:id", withActor(s.handler.Cancel))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 with the created reservation", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), reqBody.RoomID, gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomName, response.RoomName)
	})

	s.Run("error: 500 when actor missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on malformed body", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "room_id not a UUID", mutate: testutil.Field("room_id", "not-a-uuid")},
			{name: "start not a timestamp", mutate: testutil.Field("start", "tomorrow-ish")},
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps engine errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  errs.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid interval",
				commandsError:  errs.ErrInvalidInterval,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Start time must be before end time",
			},
			{
				name:           "past date",
				commandsError:  errs.ErrPastDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking date is in the past",
			},
			{
				name:           "outside business hours",
				commandsError:  errs.ErrOutsideBusinessHours,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "outside business hours",
			},
			{
				name:           "slot unavailable",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
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
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/reservations"

	s.Run("success: returns all reservations", func() {
		returnViews := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: filters by room", func() {
		roomID := uuid.New()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_id="+roomID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_id=banana", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID format")
	})

	s.Run("error: 400 on bad owner id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?owner_id=banana", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid owner ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/banana", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: maps engine errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  errs.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not the owner",
				commandsError:  errs.ErrNotAuthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "owner or an admin",
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
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
