package mongodb

import (
	"context"
	"testing"

	"workbench/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.MongoConfig
		want    string
		wantErr bool
	}{
		{name: "from uri path", cfg: &config.MongoConfig{URI: "mongodb://mongo:27017/comments-app"}, want: "comments-app"},
		{name: "explicit wins", cfg: &config.MongoConfig{URI: "mongodb://mongo:27017/comments-app", Database: "other"}, want: "other"},
		{name: "default", cfg: &config.MongoConfig{URI: "mongodb://localhost:27017"}, want: defaultDatabase},
		{name: "invalid uri", cfg: &config.MongoConfig{URI: "http://nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := databaseName(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureCommentIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("created", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, EnsureCommentIndexes(context.Background(), mt.DB))
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized"}))

		assert.Error(mt, EnsureCommentIndexes(context.Background(), mt.DB))
	})
}
