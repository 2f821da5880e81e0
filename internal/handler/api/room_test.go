//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"roombook/internal/domain/user"
	"roombook/internal/handler/api"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/middleware"
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

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *mock_commands.MockRoomCommands
	mockQueries  *mock_queries.MockRoomQueries
	handler      *api.RoomHandler
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	withActor := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", uuid.New())
				c.Set("user_role", user.RoleAdmin)
			}
			h(c)
		}
	}

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.POST("/rooms", withActor(s.handler.Create))
	s.router.PATCH("/rooms/:id", withActor(s.handler.Update))
	s.router.DELETE("/rooms/:id", withActor(s.handler.Delete))
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: returns rooms", func() {
		returnViews := []*queries.RoomView{
			builder.NewRoomBuilder().BuildView(),
			builder.NewRoomBuilder().WithName("Creative Space").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Creative Space", response[1].Name)
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	returnView := builder.NewRoomBuilder().BuildView()
	url := "/rooms/" + returnView.ID.String()

	s.Run("success: returns the room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/banana", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/rooms"
	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()
	returnView := builder.NewRoomBuilder().BuildView()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Name, response.Name)
	})

	s.Run("error: 401 without auth context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(map[string]any)
			expectCode int
		}{
			{name: "name length OK (200 chars)", mutate: testutil.Field("name", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
			{name: "name length invalid (201 chars)", mutate: testutil.Field("name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: location (required)", mutate: testutil.Field("location", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
			{name: "capacity zero", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
			{name: "capacity negative", mutate: testutil.Field("capacity", -1), expectCode: http.StatusBadRequest},
			{name: "image_url not a URL", mutate: testutil.Field("image_url", "not-a-url"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not admin",
				commandsError:  errs.ErrNotAuthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Admin privileges required",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid room attributes",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create room",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/rooms/" + id.String()
	reqBody := builder.NewRoomBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the room still has reservations", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(errs.ErrRoomInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "still has reservations")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
