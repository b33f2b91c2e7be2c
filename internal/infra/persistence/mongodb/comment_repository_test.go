package mongodb

import (
	"context"
	"testing"
	"time"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCommentRepository_CreateComment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns generated id", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.UTC)
		comment := &entity.Comment{Author: "Alice", Content: "hi", CreatedAt: createdAt}

		err := repo.CreateComment(context.Background(), comment)
		require.NoError(mt, err)

		assert.True(mt, primitive.IsValidObjectID(comment.ID))
		assert.Equal(mt, createdAt.Truncate(time.Millisecond), comment.CreatedAt)
		assert.Nil(mt, comment.UpdatedAt)
	})

	mt.Run("wraps driver failure", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
			Name:    "DuplicateKey",
		}))

		err := repo.CreateComment(context.Background(), &entity.Comment{Author: "a", Content: "b"})
		require.Error(mt, err)

		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(mt, errors.As(err, &dbErr))
	})
}

func TestCommentRepository_ListComments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes documents", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)

		newer := primitive.NewObjectID()
		older := primitive.NewObjectID()
		editedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		ns := mt.DB.Name() + ".comments"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: newer},
				{Key: "author", Value: "Bob"},
				{Key: "content", Value: "second"},
				{Key: "createdAt", Value: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)},
				{Key: "updatedAt", Value: editedAt},
			},
			bson.D{
				{Key: "_id", Value: older},
				{Key: "author", Value: "Alice"},
				{Key: "content", Value: "first"},
				{Key: "createdAt", Value: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
			},
		))

		comments, err := repo.ListComments(context.Background())
		require.NoError(mt, err)
		require.Len(mt, comments, 2)

		assert.Equal(mt, newer.Hex(), comments[0].ID)
		assert.Equal(mt, "second", comments[0].Content)
		require.NotNil(mt, comments[0].UpdatedAt)
		assert.True(mt, editedAt.Equal(*comments[0].UpdatedAt))

		assert.Equal(mt, older.Hex(), comments[1].ID)
		assert.Equal(mt, "Alice", comments[1].Author)
		assert.Nil(mt, comments[1].UpdatedAt)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".comments", mtest.FirstBatch))

		comments, err := repo.ListComments(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, comments)
		assert.Empty(mt, comments)
	})
}

func TestCommentRepository_UpdateCommentContent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := repo.UpdateCommentContent(context.Background(), primitive.NewObjectID().Hex(), "edited", now)
		assert.NoError(mt, err)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.UpdateCommentContent(context.Background(), primitive.NewObjectID().Hex(), "edited", now)
		assert.ErrorIs(mt, err, repository.ErrCommentNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)

		err := repo.UpdateCommentContent(context.Background(), "not-an-id", "edited", now)
		assert.ErrorIs(mt, err, repository.ErrInvalidCommentID)
	})
}

func TestCommentRepository_DeleteComment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		assert.NoError(mt, repo.DeleteComment(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("already gone", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		err := repo.DeleteComment(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrCommentNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewCommentRepository(mt.DB)

		err := repo.DeleteComment(context.Background(), "123")
		assert.ErrorIs(mt, err, repository.ErrInvalidCommentID)
	})
}
