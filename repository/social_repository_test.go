package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaky-backend/entity"
	"speaky-backend/enum"
	"speaky-backend/repository"
	"speaky-backend/testutil"
)

func TestSaveFriendRequest_DuplicateIsIgnored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSocialRepository()
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")

	require.NoError(t, repo.SaveFriendRequest(ctx, db, &entity.Friendship{
		UserID: alice.ID, FriendID: bob.ID, Status: enum.FriendshipPending,
	}))
	require.NoError(t, repo.SaveFriendRequest(ctx, db, &entity.Friendship{
		UserID: alice.ID, FriendID: bob.ID, Status: enum.FriendshipPending,
	}))

	var count int64
	require.NoError(t, db.Model(&entity.Friendship{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAcceptFriendship(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSocialRepository()
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")

	require.NoError(t, repo.SaveFriendRequest(ctx, db, &entity.Friendship{
		UserID: alice.ID, FriendID: bob.ID, Status: enum.FriendshipPending,
	}))

	affected, err := repo.AcceptFriendship(ctx, db, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Already accepted, nothing left to flip.
	affected, err = repo.AcceptFriendship(ctx, db, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestFindFriendIDs_BothDirections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSocialRepository()
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")
	carol := testutil.CreateUser(t, db, "+3", "Carol", "@carol")

	require.NoError(t, db.Create(&entity.Friendship{
		UserID: alice.ID, FriendID: bob.ID, Status: enum.FriendshipAccepted,
	}).Error)
	require.NoError(t, db.Create(&entity.Friendship{
		UserID: carol.ID, FriendID: alice.ID, Status: enum.FriendshipAccepted,
	}).Error)
	// Pending rows never count as friends.
	require.NoError(t, db.Create(&entity.Friendship{
		UserID: bob.ID, FriendID: carol.ID, Status: enum.FriendshipPending,
	}).Error)

	ids, err := repo.FindFriendIDs(ctx, db, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{bob.ID, carol.ID}, ids)
	assert.NotContains(t, ids, alice.ID)

	count, err := repo.CountFriends(ctx, db, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestBlockUnblock_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSocialRepository()
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")

	require.NoError(t, repo.SaveBlock(ctx, db, &entity.BlockedUser{UserID: alice.ID, BlockedUserID: bob.ID}))
	require.NoError(t, repo.SaveBlock(ctx, db, &entity.BlockedUser{UserID: alice.ID, BlockedUserID: bob.ID}))

	var count int64
	require.NoError(t, db.Model(&entity.BlockedUser{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeleteBlock(ctx, db, alice.ID, bob.ID))
	require.NoError(t, repo.DeleteBlock(ctx, db, alice.ID, bob.ID))

	ids, err := repo.FindBlockedIDs(ctx, db, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
