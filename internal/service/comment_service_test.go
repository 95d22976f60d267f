package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
)

func newCommentService() (CommentService, *MockCommentRepository, *MockTicketRepository, *MockActivityService) {
	commentRepo := new(MockCommentRepository)
	ticketRepo := new(MockTicketRepository)
	activity := new(MockActivityService)
	return NewCommentService(commentRepo, ticketRepo, activity), commentRepo, ticketRepo, activity
}

func TestCommentCreateSetsAuthorFromSession(t *testing.T) {
	svc, commentRepo, ticketRepo, activity := newCommentService()

	ticketRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Ticket{ID: 4}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
	activity.On("Record", mock.Anything, mock.Anything, "comments", "create", mock.AnythingOfType("string")).Return()

	created, err := svc.Create(context.Background(), actorSession(), &model.Comment{TicketID: 4, Body: "në rregull"})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), created.AuthorID)
	assert.Equal(t, "Ana Krasniqi", created.AuthorName)
	commentRepo.AssertExpectations(t)
}

func TestCommentCreateUnknownTicket(t *testing.T) {
	svc, commentRepo, ticketRepo, _ := newCommentService()

	ticketRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), actorSession(), &model.Comment{TicketID: 4, Body: "x"})

	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	commentRepo.AssertNotCalled(t, "Create")
}

// Replying to a comment that lives on a different ticket is rejected.
func TestCommentCreateReplyMismatch(t *testing.T) {
	svc, commentRepo, ticketRepo, _ := newCommentService()

	parentID := uint(10)
	ticketRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Ticket{ID: 4}, nil)
	commentRepo.On("FindByID", mock.Anything, parentID).Return(&model.Comment{ID: parentID, TicketID: 5}, nil)

	_, err := svc.Create(context.Background(), actorSession(), &model.Comment{TicketID: 4, ParentID: &parentID, Body: "x"})

	assert.ErrorIs(t, err, ErrReplyMismatch)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestCommentCreateReplySameTicket(t *testing.T) {
	svc, commentRepo, ticketRepo, activity := newCommentService()

	parentID := uint(10)
	ticketRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Ticket{ID: 4}, nil)
	commentRepo.On("FindByID", mock.Anything, parentID).Return(&model.Comment{ID: parentID, TicketID: 4}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
	activity.On("Record", mock.Anything, mock.Anything, "comments", "create", mock.AnythingOfType("string")).Return()

	_, err := svc.Create(context.Background(), actorSession(), &model.Comment{TicketID: 4, ParentID: &parentID, Body: "x"})

	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestCommentVote(t *testing.T) {
	tests := []struct {
		name          string
		up            bool
		wantUpvotes   int
		wantDownvotes int
	}{
		{"upvote", true, 3, 1},
		{"downvote", false, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commentRepo, _, _ := newCommentService()
			commentRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.Comment{ID: 7, Upvotes: 2, Downvotes: 1}, nil)
			commentRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

			voted, err := svc.Vote(context.Background(), actorSession(), 7, tt.up)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantUpvotes, voted.Upvotes)
			assert.Equal(t, tt.wantDownvotes, voted.Downvotes)
		})
	}
}

func TestCommentVoteNotFound(t *testing.T) {
	svc, commentRepo, _, _ := newCommentService()
	commentRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Vote(context.Background(), actorSession(), 7, true)

	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}
