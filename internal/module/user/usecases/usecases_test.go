package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-service/internal/module/user/mocks"
	"rental-service/internal/module/user/models/entity"
	"rental-service/internal/module/user/models/request"
	"rental-service/internal/module/user/usecases"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/jwt"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	tokens   *jwt.Manager
	now      = time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC)
)

func setup() {
	repoMock = new(mocks.Repositories)
	tokens = jwt.NewManager("secret", "rental-service", "rental-clients", time.Hour)
	uc = usecases.New(repoMock, log_internal.GetLogger(), tokens, lookup.Default(),
		usecases.WithHashCost(bcrypt.MinCost),
		usecases.WithClock(func() time.Time { return now }),
	)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("always a customer", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("EmailExists", ctx, "ana@example.com").Return(false, nil)
		repoMock.On("Insert", ctx, mock.MatchedBy(func(u entity.User) bool {
			return u.RoleID == 3 && u.IsActive && u.Email == "ana@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).Return(entity.User{ID: 4, Email: "ana@example.com", RoleID: 3, IsActive: true, CreatedAt: now}, nil)

		resp, err := uc.Register(ctx, &request.Register{
			FirstName: "Ana",
			Email:     " Ana@Example.com ",
			Password:  "secret1",
			RoleID:    1,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(4), resp.ID)
		assert.Equal(t, lookup.RoleCustomer, resp.RoleName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("EmailExists", ctx, "ana@example.com").Return(true, nil)

		_, err := uc.Register(ctx, &request.Register{FirstName: "Ana", Email: "ana@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, http.StatusConflict))
		repoMock.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestRegisterWithRole(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		roleID   int64
		roleName string
		expected int64
	}{
		{"by id", 2, "", 2},
		{"by name", 0, "admin", 1},
		{"neither defaults to customer", 0, "", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			repoMock.On("EmailExists", ctx, "agent@example.com").Return(false, nil)
			repoMock.On("Insert", ctx, mock.MatchedBy(func(u entity.User) bool {
				return u.RoleID == tc.expected
			})).Return(entity.User{ID: 8, RoleID: tc.expected}, nil)

			_, err := uc.RegisterWithRole(ctx, &request.Register{
				FirstName: "Sam",
				Email:     "agent@example.com",
				Password:  "secret1",
				RoleID:    tc.roleID,
				RoleName:  tc.roleName,
			})
			assert.NoError(t, err)
			repoMock.AssertExpectations(t)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.RegisterWithRole(ctx, &request.Register{FirstName: "Sam", Email: "agent@example.com", Password: "secret1", RoleID: 9})
		assert.True(t, errors.Is(err, http.StatusNotFound))
		repoMock.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByEmail", ctx, "ana@example.com").Return(entity.UserDetail{
			User:     entity.User{ID: 4, Email: "ana@example.com", PasswordHash: hashed(t, "secret1"), RoleID: 3, IsActive: true},
			RoleName: "Customer",
		}, nil)

		resp, err := uc.Login(ctx, &request.Login{Email: "ana@example.com", Password: "secret1"})
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "ana@example.com", claims.Subject)
		assert.Equal(t, "Customer", claims.Role)
		uid, _ := claims.UserID()
		assert.Equal(t, int64(4), uid)
	})

	t.Run("wrong password", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByEmail", ctx, "ana@example.com").Return(entity.UserDetail{
			User: entity.User{ID: 4, PasswordHash: hashed(t, "secret1"), IsActive: true},
		}, nil)

		_, err := uc.Login(ctx, &request.Login{Email: "ana@example.com", Password: "nope"})
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByEmail", ctx, "ghost@example.com").Return(entity.UserDetail{}, errors.NotFound("user ghost@example.com not found"))

		_, err := uc.Login(ctx, &request.Login{Email: "ghost@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
	})

	t.Run("deactivated", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByEmail", ctx, "ana@example.com").Return(entity.UserDetail{
			User: entity.User{ID: 4, PasswordHash: hashed(t, "secret1"), IsActive: false},
		}, nil)

		_, err := uc.Login(ctx, &request.Login{Email: "ana@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
		assert.EqualError(t, err, "account is deactivated")
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	current := entity.UserDetail{
		User:     entity.User{ID: 4, FirstName: "Ana", Email: "ana@example.com", PasswordHash: "x", RoleID: 3, IsActive: true},
		RoleName: "Customer",
	}

	t.Run("keeps role when omitted", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByID", ctx, int64(4)).Return(current, nil)
		repoMock.On("Update", ctx, mock.MatchedBy(func(u entity.User) bool {
			return u.RoleID == 3 && u.FirstName == "Anna" && !u.IsActive && u.PasswordHash == "x"
		})).Return(nil)

		resp, err := uc.Update(ctx, 4, &request.UpdateUser{FirstName: "Anna", IsActive: false})
		assert.NoError(t, err)
		assert.Equal(t, "Customer", resp.RoleName)
	})

	t.Run("unknown role", func(t *testing.T) {
		setup()
		defer teardown()

		role := int64(12)
		repoMock.On("FindByID", ctx, int64(4)).Return(current, nil)

		_, err := uc.Update(ctx, 4, &request.UpdateUser{FirstName: "Anna", RoleID: &role})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("neither id nor name", func(t *testing.T) {
		setup()
		defer teardown()

		err := uc.ChangeRole(ctx, 4, &request.ChangeRole{})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		assert.EqualError(t, err, "Provide role_id or role_name.")
	})

	t.Run("by name", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("UpdateRole", ctx, int64(4), int64(2)).Return(nil)
		assert.NoError(t, uc.ChangeRole(ctx, 4, &request.ChangeRole{RoleName: "rentalagent"}))
	})

	t.Run("unknown name", func(t *testing.T) {
		setup()
		defer teardown()

		err := uc.ChangeRole(ctx, 4, &request.ChangeRole{RoleName: "Owner"})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}
