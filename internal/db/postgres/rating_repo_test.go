package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Shibaboard/internal/core/ratings"
)

func TestRatingRepo_Upsert_ReplacesInPlace(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	repo := NewRatingRepository(db)
	ctx := context.Background()

	voterID := createTestUser(t, db, "rating-upsert-voter")
	authorID := createTestUser(t, db, "rating-upsert-author")
	postID := createTestPost(t, db, authorID)

	like := &ratings.Vote{VoterID: voterID, TargetKind: ratings.TargetPost, TargetID: postID, Kind: ratings.KindLike}
	require.NoError(t, repo.Upsert(ctx, like))
	assert.NotZero(t, like.ID, "Vote ID should be set after upsert")

	agg, err := repo.Recount(ctx, ratings.TargetPost, postID)
	require.NoError(t, err)
	assert.Equal(t, ratings.Aggregate{Likes: 1, Dislikes: 0}, agg)

	// Casting the opposite kind replaces the row rather than adding one
	dislike := &ratings.Vote{VoterID: voterID, TargetKind: ratings.TargetPost, TargetID: postID, Kind: ratings.KindDislike}
	require.NoError(t, repo.Upsert(ctx, dislike))

	agg, err = repo.Recount(ctx, ratings.TargetPost, postID)
	require.NoError(t, err)
	assert.Equal(t, ratings.Aggregate{Likes: 0, Dislikes: 1}, agg)

	var voteRows int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM votes WHERE voter_id = $1 AND post_id = $2`, voterID, postID,
	).Scan(&voteRows))
	assert.Equal(t, 1, voteRows, "One row per voter and target, whatever the kind")
}

func TestRatingRepo_Delete_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	repo := NewRatingRepository(db)
	ctx := context.Background()

	voterID := createTestUser(t, db, "rating-delete-voter")
	authorID := createTestUser(t, db, "rating-delete-author")
	postID := createTestPost(t, db, authorID)

	vote := &ratings.Vote{VoterID: voterID, TargetKind: ratings.TargetPost, TargetID: postID, Kind: ratings.KindLike}
	require.NoError(t, repo.Upsert(ctx, vote))

	require.NoError(t, repo.Delete(ctx, voterID, ratings.TargetPost, postID))

	// Deleting again is a no-op, not an error
	require.NoError(t, repo.Delete(ctx, voterID, ratings.TargetPost, postID))

	agg, err := repo.Recount(ctx, ratings.TargetPost, postID)
	require.NoError(t, err)
	assert.Equal(t, ratings.Aggregate{}, agg)
}

func TestRatingRepo_Summaries_OneRowPerTarget(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	repo := NewRatingRepository(db)
	ctx := context.Background()

	viewerID := createTestUser(t, db, "rating-summary-viewer")
	otherID := createTestUser(t, db, "rating-summary-other")
	authorID := createTestUser(t, db, "rating-summary-author")
	votedPost := createTestPost(t, db, authorID)
	unvotedPost := createTestPost(t, db, authorID)

	require.NoError(t, repo.Upsert(ctx, &ratings.Vote{
		VoterID: viewerID, TargetKind: ratings.TargetPost, TargetID: votedPost, Kind: ratings.KindLike,
	}))
	require.NoError(t, repo.Upsert(ctx, &ratings.Vote{
		VoterID: otherID, TargetKind: ratings.TargetPost, TargetID: votedPost, Kind: ratings.KindDislike,
	}))

	// Left-join semantics: the zero-vote target still produces a row, and
	// rows come back ordered by id regardless of the input order
	summaries, err := repo.Summaries(ctx, ratings.TargetPost, []int64{unvotedPost, votedPost}, &viewerID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, votedPost, summaries[0].TargetID)
	assert.Equal(t, int64(1), summaries[0].Likes)
	assert.Equal(t, int64(1), summaries[0].Dislikes)
	require.NotNil(t, summaries[0].MyRating)
	assert.Equal(t, ratings.KindLike, *summaries[0].MyRating)

	assert.Equal(t, unvotedPost, summaries[1].TargetID)
	assert.Zero(t, summaries[1].Likes)
	assert.Zero(t, summaries[1].Dislikes)
	assert.Nil(t, summaries[1].MyRating)

	// Anonymous viewers never get a MyRating
	summaries, err = repo.Summaries(ctx, ratings.TargetPost, []int64{votedPost}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].MyRating)
}
