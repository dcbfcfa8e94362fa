package registry_test

import (
	"context"
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/password"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserInput() registry.NewUser {
	return registry.NewUser{
		FirstName:   " Eric ",
		LastName:    "Mugisha",
		Email:       "Eric.Mugisha@Example.com",
		PhoneNumber: "+250788000111",
		NationalID:  "1198580012345678",
		Role:        domain.RoleLandOfficer,
		Password:    "password123",
	}
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, "Eric", u.FirstName)
			require.Equal(t, "eric.mugisha@example.com", u.Email)
			require.Equal(t, domain.RoleLandOfficer, u.Role)
			require.Equal(t, domain.UserStatusActive, u.Status)
			require.NoError(t, password.Verify("password123", u.PasswordHash))

			return &u, nil
		})

	u, err := f.reg.CreateUser(context.Background(), f.admin, newUserInput())
	require.NoError(t, err)
	require.Equal(t, "eric.mugisha@example.com", u.Email)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.CreateUser(context.Background(), f.officer, newUserInput())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{
		Err:        storage.ErrUniqueViolation,
		Constraint: "users_email_key",
	})

	_, err := f.reg.CreateUser(context.Background(), f.admin, newUserInput())
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "email is already registered", serrors.MessageOf(err))
}

func TestCreateUser_InvalidNationalID(t *testing.T) {
	f := newFixture(t)
	in := newUserInput()
	in.NationalID = "12345"

	_, err := f.reg.CreateUser(context.Background(), f.admin, in)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestUser_CitizenOnlySelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.User(ctx, f.citizen, f.officer.UserID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.st.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
	u, err := f.reg.User(ctx, f.citizen, f.citizen.UserID)
	require.NoError(t, err)
	require.Equal(t, f.citizen.UserID, u.ID)
}

func TestUser_NotFound(t *testing.T) {
	f := newFixture(t)
	f.st.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(nil, nil)

	_, err := f.reg.User(context.Background(), f.admin, f.citizen.UserID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateUser_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		actor   func(f *fixture) domain.Actor
		target  func(f *fixture) *domain.User
		patch   registry.UserPatch
		wantErr error
	}{
		{
			name:   "citizen edits own profile",
			actor:  func(f *fixture) domain.Actor { return f.citizen },
			target: func(f *fixture) *domain.User { return userOf(f.citizen) },
			patch:  registry.UserPatch{Address: ptr("KN 5 Rd, Kigali")},
		},
		{
			name:    "citizen cannot change own email",
			actor:   func(f *fixture) domain.Actor { return f.citizen },
			target:  func(f *fixture) *domain.User { return userOf(f.citizen) },
			patch:   registry.UserPatch{Email: ptr("other@example.com")},
			wantErr: serrors.ErrForbidden,
		},
		{
			name:    "citizen cannot edit others",
			actor:   func(f *fixture) domain.Actor { return f.citizen },
			target:  func(f *fixture) *domain.User { return userOf(f.officer) },
			patch:   registry.UserPatch{Address: ptr("KN 5 Rd, Kigali")},
			wantErr: serrors.ErrForbidden,
		},
		{
			name:   "officer edits citizen",
			actor:  func(f *fixture) domain.Actor { return f.officer },
			target: func(f *fixture) *domain.User { return userOf(f.citizen) },
			patch:  registry.UserPatch{PhoneNumber: ptr("0788999000")},
		},
		{
			name:    "officer cannot change role",
			actor:   func(f *fixture) domain.Actor { return f.officer },
			target:  func(f *fixture) *domain.User { return userOf(f.citizen) },
			patch:   registry.UserPatch{Role: ptr(domain.RoleAdmin)},
			wantErr: serrors.ErrForbidden,
		},
		{
			name:    "officer cannot edit admin",
			actor:   func(f *fixture) domain.Actor { return f.officer },
			target:  func(f *fixture) *domain.User { return userOf(f.admin) },
			patch:   registry.UserPatch{Address: ptr("KN 5 Rd, Kigali")},
			wantErr: serrors.ErrForbidden,
		},
		{
			name:   "admin changes role",
			actor:  func(f *fixture) domain.Actor { return f.admin },
			target: func(f *fixture) *domain.User { return userOf(f.citizen) },
			patch:  registry.UserPatch{Role: ptr(domain.RoleLandOfficer)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			target := tt.target(f)

			f.st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)
			if tt.wantErr == nil {
				f.st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u domain.User) (*domain.User, error) { return &u, nil })
			}

			_, err := f.reg.UpdateUser(context.Background(), tt.actor(f), target.ID, tt.patch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.reg.DeleteUser(ctx, f.admin, f.admin.UserID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	err = f.reg.DeleteUser(ctx, f.officer, f.citizen.UserID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.st.EXPECT().DeleteUser(gomock.Any(), f.citizen.UserID).Return(false, nil)
	err = f.reg.DeleteUser(ctx, f.admin, f.citizen.UserID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	f.st.EXPECT().DeleteUser(gomock.Any(), f.citizen.UserID).Return(true, nil)
	require.NoError(t, f.reg.DeleteUser(ctx, f.admin, f.citizen.UserID))
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.ListUsers(ctx, f.citizen, storage.UserFilter{}, domain.PageRequest{})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = f.reg.ListUsers(ctx, f.officer, storage.UserFilter{Role: "KING"}, domain.PageRequest{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	filter := storage.UserFilter{Role: domain.RoleLandOfficer, Status: domain.UserStatusActive}
	f.st.EXPECT().ListUsers(gomock.Any(), filter, domain.PageRequest{Page: 1, Size: 2, SortDir: domain.SortDesc}).
		Return([]domain.User{*userOf(f.officer), *userOf(f.admin)}, int64(5), nil)

	page, err := f.reg.ListUsers(ctx, f.officer, filter, domain.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, int64(5), page.TotalItems)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 1, page.CurrentPage)
}

func TestSetUserStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.SetUserStatus(ctx, f.admin, f.admin.UserID, domain.UserStatusSuspended)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
	f.st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) { return &u, nil })

	u, err := f.reg.SetUserStatus(ctx, f.admin, f.citizen.UserID, domain.UserStatusSuspended)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusSuspended, u.Status)
}

func TestChangeUserRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.ChangeUserRole(ctx, f.officer, f.citizen.UserID, domain.RoleLandOfficer)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = f.reg.ChangeUserRole(ctx, f.admin, f.admin.UserID, domain.RoleCitizen)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
	f.st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) { return &u, nil })

	u, err := f.reg.ChangeUserRole(ctx, f.admin, f.citizen.UserID, domain.RoleLandOfficer)
	require.NoError(t, err)
	require.Equal(t, domain.RoleLandOfficer, u.Role)
}

func TestUpdateUser_OwnPassword(t *testing.T) {
	hash, err := password.Hash("password123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		current *string
		wantErr error
	}{
		{name: "current password missing", wantErr: serrors.ErrBadRequest},
		{name: "current password wrong", current: ptr("not-my-password"), wantErr: serrors.ErrForbidden},
		{name: "current password given", current: ptr("password123")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			me := userOf(f.citizen)
			me.PasswordHash = hash

			f.st.EXPECT().UserByID(gomock.Any(), me.ID).Return(me, nil)
			if tt.wantErr == nil {
				f.st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u domain.User) (*domain.User, error) { return &u, nil })
			}

			u, err := f.reg.UpdateUser(context.Background(), f.citizen, me.ID, registry.UserPatch{
				Password:        ptr("brand-new-secret"),
				CurrentPassword: tt.current,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NoError(t, password.Verify("brand-new-secret", u.PasswordHash))
			require.Equal(t, now, u.PasswordChangedAt)
		})
	}
}

func TestUpdateUser_AdminResetsPassword(t *testing.T) {
	f := newFixture(t)
	target := userOf(f.citizen)

	f.st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)
	f.st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) { return &u, nil })

	u, err := f.reg.UpdateUser(context.Background(), f.admin, target.ID, registry.UserPatch{
		Password: ptr("brand-new-secret"),
	})
	require.NoError(t, err)
	require.Equal(t, now, u.PasswordChangedAt)
}
