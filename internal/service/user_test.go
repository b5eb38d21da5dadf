package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

func TestUserService_EnsureUser(t *testing.T) {
	t.Parallel()

	users := &mockUsers{}
	stats := &mockStats{}
	svc := NewUserService(users, stats)

	users.On("Save", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.ID == 5 && u.ChatID == 50 && u.Username == "eve" && u.IsActive
	})).Return(true, nil).Once()
	stats.On("Ensure", mock.Anything, int64(5)).Return(nil).Once()

	created, err := svc.EnsureUser(context.Background(), 5, 50, "eve")
	require.NoError(t, err)
	assert.True(t, created)

	users.AssertExpectations(t)
	stats.AssertExpectations(t)
}
