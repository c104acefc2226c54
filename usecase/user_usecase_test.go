package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"speaky-backend/dto/req"
	"speaky-backend/entity"
	"speaky-backend/exception"
	"speaky-backend/repository"
	"speaky-backend/testutil"
	"speaky-backend/usecase"
)

func newUserUsecase(t *testing.T) (usecase.UserUsecase, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	uc := usecase.NewUserUsecase(repository.NewUserRepository(), validator.New(), db, testutil.NewTestLogger(), nil)
	return uc, db
}

func strptr(s string) *string {
	return &s
}

func TestRegister_DerivesUsernameFromNickname(t *testing.T) {
	uc, _ := newUserUsecase(t)

	user, err := uc.Register(context.Background(), &req.RegisterRequest{
		Phone:    "+79990001122",
		Nickname: "John Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "@johndoe", user.Username)
	assert.Equal(t, "John Doe", user.Nickname)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_SamePhoneUpdatesInPlace(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	first, err := uc.Register(ctx, &req.RegisterRequest{Phone: "+79990001122", Nickname: "John Doe"})
	require.NoError(t, err)

	second, err := uc.Register(ctx, &req.RegisterRequest{Phone: "+79990001122", Nickname: "Johnny"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Johnny", second.Nickname)
	assert.Equal(t, "@johnny", second.Username)
}

func TestRegister_MissingFieldsRejected(t *testing.T) {
	uc, _ := newUserUsecase(t)

	_, err := uc.Register(context.Background(), &req.RegisterRequest{Nickname: "John"})
	assert.True(t, errors.Is(err, exception.ErrValidation))

	_, err = uc.Register(context.Background(), &req.RegisterRequest{Phone: "+79990001122"})
	assert.True(t, errors.Is(err, exception.ErrValidation))
}

func TestLogin(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, &req.LoginRequest{Phone: "+70000000000"})
	assert.True(t, errors.Is(err, exception.ErrNotFound))

	registered, err := uc.Register(ctx, &req.RegisterRequest{Phone: "+79990001122", Nickname: "John Doe"})
	require.NoError(t, err)

	logged, err := uc.Login(ctx, &req.LoginRequest{Phone: "+79990001122"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, logged.ID)
}

func TestUpdateProfile_OnlyProvidedFieldsChange(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	registered, err := uc.Register(ctx, &req.RegisterRequest{Phone: "+79990001122", Nickname: "John Doe"})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(ctx, &req.EditProfileRequest{
		UserID:    registered.ID,
		AvatarURL: strptr("https://cdn.example/a.jpg"),
		Theme:     strptr("light"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.jpg", updated.AvatarURL)
	assert.Equal(t, "light", updated.Theme)
	assert.Equal(t, "John Doe", updated.Nickname)
	assert.Equal(t, "@johndoe", updated.Username)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	uc, _ := newUserUsecase(t)

	_, err := uc.UpdateProfile(context.Background(), &req.EditProfileRequest{
		UserID:   "no-such-id",
		Nickname: strptr("X"),
	})
	assert.True(t, errors.Is(err, exception.ErrNotFound))
}

func TestVerify_RequiresAdmin(t *testing.T) {
	uc, db := newUserUsecase(t)
	ctx := context.Background()

	actor := testutil.CreateUser(t, db, "+1", "Plain", "@plain")
	target := testutil.CreateUser(t, db, "+2", "Target", "@target")

	_, err := uc.Verify(ctx, &req.VerifyUserRequest{AdminID: actor.ID, TargetUserID: target.ID})
	assert.True(t, errors.Is(err, exception.ErrPermissionDenied))

	var unchanged entity.User
	require.NoError(t, db.First(&unchanged, "id = ?", target.ID).Error)
	assert.False(t, unchanged.Verified)
}

func TestVerify_AdminMarksTarget(t *testing.T) {
	uc, db := newUserUsecase(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, db, "+1", "Root", "@root")
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", admin.ID).Update("is_admin", true).Error)
	target := testutil.CreateUser(t, db, "+2", "Target", "@target")

	verified, err := uc.Verify(ctx, &req.VerifyUserRequest{AdminID: admin.ID, TargetUserID: target.ID})
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, target.ID, verified.ID)
	assert.Equal(t, "@target", verified.Username)
}
