package mongodb

import (
	"context"
	"time"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/repository"
	"workbench/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{
		coll: db.Collection(model.CommentCollection),
	}
}

// CreateComment persists a new comment and writes the generated ID back to the entity.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)
	commentM.ID = primitive.NilObjectID

	result, err := repo.coll.InsertOne(ctx, commentM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	comment.ID = id.Hex()
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListComments returns every comment ordered by creation time, newest first.
func (repo *commentRepository) ListComments(ctx context.Context) ([]*entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	var commentModels []*model.CommentModel
	if err := cursor.All(ctx, &commentModels); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// UpdateCommentContent replaces the content and stamps updatedAt, leaving author and createdAt alone.
func (repo *commentRepository) UpdateCommentContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	objectID, err := parseCommentID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: toStoredTime(updatedAt)},
		}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	if result.MatchedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteComment removes a comment permanently.
func (repo *commentRepository) DeleteComment(ctx context.Context, id string) error {
	objectID, err := parseCommentID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	if result.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// parseCommentID rejects malformed IDs before any round trip to the server.
func parseCommentID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(repository.ErrInvalidCommentID, "%q", id)
	}

	return objectID, nil
}

// toStoredTime matches the millisecond UTC precision of BSON dates.
func toStoredTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// --- Mapper Functions ---

// toCommentDomain converts a CommentModel document to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID.Hex(),
		Author:    data.Author,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a CommentModel document.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	commentM := &model.CommentModel{
		Author:    data.Author,
		Content:   data.Content,
		CreatedAt: toStoredTime(data.CreatedAt),
	}
	if data.UpdatedAt != nil {
		updatedAt := toStoredTime(*data.UpdatedAt)
		commentM.UpdatedAt = &updatedAt
	}

	return commentM
}
