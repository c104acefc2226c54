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

func TestCreateChatWithCreator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository()
	ctx := context.Background()

	creator := testutil.CreateUser(t, db, "+1", "Alice", "@alice")

	chat := &entity.Chat{ChatType: enum.ChatTypeGroup, Name: "Gophers", CreatedBy: creator.ID}
	require.NoError(t, repo.CreateChatWithCreator(ctx, db, chat))
	require.NotEmpty(t, chat.ID)

	members, err := repo.FindMembersByChatID(ctx, db, chat.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, creator.ID, members[0].UserID)
	assert.Equal(t, enum.ChatRoleAdmin, members[0].Role)
	assert.Equal(t, "Alice", members[0].User.Nickname)
}

func TestAddMember_DuplicatePairIsIgnored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository()
	ctx := context.Background()

	creator := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")

	chat := &entity.Chat{ChatType: enum.ChatTypeGroup, Name: "Gophers", CreatedBy: creator.ID}
	require.NoError(t, repo.CreateChatWithCreator(ctx, db, chat))

	require.NoError(t, repo.AddMember(ctx, db, &entity.ChatMember{ChatID: chat.ID, UserID: bob.ID, Role: enum.ChatRoleMember}))
	require.NoError(t, repo.AddMember(ctx, db, &entity.ChatMember{ChatID: chat.ID, UserID: bob.ID, Role: enum.ChatRoleMember}))

	members, err := repo.FindMembersByChatID(ctx, db, chat.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestAddMember_UnknownUserIsRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository()
	ctx := context.Background()

	creator := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	chat := &entity.Chat{ChatType: enum.ChatTypeGroup, Name: "Gophers", CreatedBy: creator.ID}
	require.NoError(t, repo.CreateChatWithCreator(ctx, db, chat))

	err := repo.AddMember(ctx, db, &entity.ChatMember{ChatID: chat.ID, UserID: "no-such-user", Role: enum.ChatRoleMember})
	assert.Error(t, err)
}

func TestRemoveMember_AbsentIsNoError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository()
	ctx := context.Background()

	creator := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	bob := testutil.CreateUser(t, db, "+2", "Bob", "@bob")

	chat := &entity.Chat{ChatType: enum.ChatTypeGroup, Name: "Gophers", CreatedBy: creator.ID}
	require.NoError(t, repo.CreateChatWithCreator(ctx, db, chat))
	require.NoError(t, repo.AddMember(ctx, db, &entity.ChatMember{ChatID: chat.ID, UserID: bob.ID}))

	require.NoError(t, repo.RemoveMember(ctx, db, chat.ID, bob.ID))
	require.NoError(t, repo.RemoveMember(ctx, db, chat.ID, bob.ID))

	isMember, err := repo.IsMember(ctx, db, chat.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestCountMessages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository()
	ctx := context.Background()

	creator := testutil.CreateUser(t, db, "+1", "Alice", "@alice")
	chat := &entity.Chat{ChatType: enum.ChatTypeDirect, Name: "", CreatedBy: creator.ID}
	require.NoError(t, repo.CreateChatWithCreator(ctx, db, chat))

	require.NoError(t, db.Create(&entity.Message{ChatID: chat.ID, SenderID: creator.ID, Content: "hi"}).Error)
	require.NoError(t, db.Create(&entity.Message{ChatID: chat.ID, SenderID: creator.ID, Content: "there"}).Error)

	count, err := repo.CountMessages(ctx, db, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
