//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/api"
	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/httptest"
	commandsmock "gin-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	handler      *api.UserHandler
	user         *builder.UserBuilder
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands)
	s.user = builder.NewUserBuilder()
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) routerFor(identity *user.Identity) *gin.Engine {
	r := gin.New()
	r.PUT("/api/user/update-profile", asUser(identity, s.handler.UpdateProfile))
	return r
}

func (s *UserHandlerTestSuite) TestUpdateProfile() {
	url := "/api/user/update-profile"
	identity := s.user.BuildIdentity()

	s.Run("success: returns message and updated user", func() {
		snapshot := s.user.With(func(b *builder.UserBuilder) { b.Name = "Hanako" }).BuildSnapshot()
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), identity, "Hanako").Return(snapshot, nil)

		rec := httptest.PerformRequest(s.T(), s.routerFor(identity), http.MethodPut, url,
			reqdto.UpdateProfileRequest{Name: "Hanako"}, "")

		var got resdto.UpdateProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(resdto.MsgProfileUpdated, got.Message)
		s.Equal(snapshot.ID, got.User.ID)
		s.Equal("Hanako", got.User.Name)
		s.Equal(snapshot.Email, got.User.Email)
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.routerFor(nil), http.MethodPut, url,
			reqdto.UpdateProfileRequest{Name: "Hanako"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.routerFor(identity), http.MethodPut, url, "application/json", `{"name":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	cases := []struct {
		name       string
		input      string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"blank name", "   ", commands.ErrNameRequired, http.StatusBadRequest, "Name is required"},
		{"too long", strings.Repeat("a", 101), commands.ErrNameTooLong, http.StatusBadRequest, "Name must be at most 100 characters"},
		{"user row gone", "Hanako", commands.ErrProfileNotFound, http.StatusNotFound, "User not found"},
		{"store failure", "Hanako", errors.New("deadlock"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), identity, tc.input).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.routerFor(identity), http.MethodPut, url,
				reqdto.UpdateProfileRequest{Name: tc.input}, "")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

type stubUserRepository struct {
	mock.Mock
}

func (m *stubUserRepository) UpdateNameByEmail(ctx context.Context, email string, name user.DisplayName) (*commands.UserSnapshot, error) {
	args := m.Called(ctx, email, name)
	if v := args.Get(0); v != nil {
		return v.(*commands.UserSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

// Runs the handler over the real profile command so marked use case errors hit the status mapping.
func TestUpdateProfile_WithProfileCommands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	url := "/api/user/update-profile"
	u := builder.NewUserBuilder()
	identity := u.BuildIdentity()

	newRouter := func(repo *stubUserRepository) *gin.Engine {
		r := gin.New()
		h := api.NewUserHandler(commands.NewProfileCommands(repo))
		r.PUT(url, asUser(identity, h.UpdateProfile))
		return r
	}

	rejected := []struct {
		name      string
		input     string
		expectMsg string
	}{
		{"whitespace name", "   ", "Name is required"},
		{"tabs and newlines", "\t\n ", "Name is required"},
		{"over 100 characters", strings.Repeat("a", 101), "Name must be at most 100 characters"},
	}
	for _, tc := range rejected {
		t.Run("400: "+tc.name, func(t *testing.T) {
			repo := &stubUserRepository{}

			rec := httptest.PerformRequest(t, newRouter(repo), http.MethodPut, url,
				reqdto.UpdateProfileRequest{Name: tc.input}, "")

			httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, tc.expectMsg)
			repo.AssertNotCalled(t, "UpdateNameByEmail", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("404: no row for the identity's email", func(t *testing.T) {
		repo := &stubUserRepository{}
		repo.On("UpdateNameByEmail", mock.Anything, identity.Email, mock.Anything).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(t, newRouter(repo), http.MethodPut, url,
			reqdto.UpdateProfileRequest{Name: "Hanako"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "User not found")
		repo.AssertExpectations(t)
	})

	t.Run("200: stores the trimmed name", func(t *testing.T) {
		snapshot := u.With(func(b *builder.UserBuilder) { b.Name = "Hanako" }).BuildSnapshot()
		repo := &stubUserRepository{}
		repo.On("UpdateNameByEmail", mock.Anything, identity.Email,
			mock.MatchedBy(func(n user.DisplayName) bool { return n.Value() == "Hanako" })).
			Return(snapshot, nil)

		rec := httptest.PerformRequest(t, newRouter(repo), http.MethodPut, url,
			reqdto.UpdateProfileRequest{Name: "  Hanako  "}, "")

		var got resdto.UpdateProfileResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, "Hanako", got.User.Name)
		repo.AssertExpectations(t)
	})
}
