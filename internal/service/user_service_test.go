package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"linkup/internal/errors"
	"linkup/internal/model"
)

func TestAvatarInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Sarah Johnson", want: "SJ"},
		{name: "single word", in: "Madonna", want: "M"},
		{name: "three words keep first two", in: "Emily Rose Rodriguez", want: "ER"},
		{name: "lowercase input", in: "michael chen", want: "MC"},
		{name: "extra whitespace", in: "  sarah   johnson  ", want: "SJ"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, avatarInitials(tt.in))
		})
	}
}

func TestUserService_Search(t *testing.T) {
	t.Run("query too short", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, new(MockPostRepository), nil)

		for _, q := range []string{"", "a", " a ", "  "} {
			users, err := service.Search(context.Background(), q)
			assert.Nil(t, users)
			assert.Equal(t, errors.ErrQueryTooShort, err)
		}

		// The repository must never be consulted for short queries.
		mockUsers.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("trimmed query capped at 20", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("Search", mock.Anything, "sarah", 20).Return([]model.User{{ID: 1, Name: "Sarah Johnson"}}, nil)

		service := NewUserService(mockUsers, new(MockPostRepository), nil)
		users, err := service.Search(context.Background(), "  sarah ")

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		mockUsers.AssertExpectations(t)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("Search", mock.Anything, "zz", 20).Return(nil, nil)

		service := NewUserService(mockUsers, new(MockPostRepository), nil)
		users, err := service.Search(context.Background(), "zz")

		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository), new(MockPostRepository), nil)

		user, err := service.UpdateProfile(context.Background(), 1, "   ", "bio")
		assert.Nil(t, user)
		assert.Equal(t, errors.ErrNameRequired, err)
	})

	t.Run("avatar recomputed from new name", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:     1,
			Name:   "Sarah Johnson",
			Avatar: "SJ",
		}, nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockUsers, new(MockPostRepository), nil)
		user, err := service.UpdateProfile(context.Background(), 1, " Michael Chen ", "new bio")

		assert.NoError(t, err)
		assert.Equal(t, "Michael Chen", user.Name)
		assert.Equal(t, "MC", user.Avatar)
		assert.Equal(t, "new bio", user.Bio)
		mockUsers.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUsers, new(MockPostRepository), nil)
		user, err := service.UpdateProfile(context.Background(), 9, "Name", "")

		assert.Nil(t, user)
		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	t.Run("profile with post count", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Sarah Johnson"}, nil)
		mockPosts := new(MockPostRepository)
		mockPosts.On("CountByUser", mock.Anything, uint(1)).Return(int64(4), nil)

		service := NewUserService(mockUsers, mockPosts, nil)
		user, postsCount, err := service.GetProfile(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Sarah Johnson", user.Name)
		assert.Equal(t, int64(4), postsCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUsers, new(MockPostRepository), nil)
		user, _, err := service.GetProfile(context.Background(), 7)

		assert.Nil(t, user)
		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}
