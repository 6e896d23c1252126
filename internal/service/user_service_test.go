package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/internal/repository/mocks"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Str0ng!pass"

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		Req          *service.RegisterRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "ok",
			Req:  &service.RegisterRequest{Email: "  John@Example.com ", FirstName: "John", LastName: "Doe", Password: testPassword},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
					assert.Equal(t, "john@example.com", u.Email)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(testPassword)))
					u.ID = uuid.New()
					return nil
				})
			},
		},
		{
			Desc:  "already exists",
			Req:   &service.RegisterRequest{Email: "john@example.com", FirstName: "John", LastName: "Doe", Password: testPassword},
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
		},
		{
			Desc:  "db error",
			Req:   &service.RegisterRequest{Email: "john@example.com", FirstName: "John", LastName: "Doe", Password: testPassword},
			Error: errDB,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errDB)
			},
		},
		{
			Desc:         "weak password",
			Req:          &service.RegisterRequest{Email: "john@example.com", FirstName: "John", LastName: "Doe", Password: "password1"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "bad email",
			Req:          &service.RegisterRequest{Email: "john", FirstName: "John", LastName: "Doe", Password: testPassword},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing names",
			Req:          &service.RegisterRequest{Email: "john@example.com", Password: testPassword},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Register(ctx, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash(testPassword)
	require.NoError(t, err)
	stored := &entity.User{ID: uuid.New(), Email: "john@example.com", PasswordHash: hash}

	testCases := []struct {
		Desc         string
		Email        string
		Password     string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:     "ok",
			Email:    "JOHN@example.com",
			Password: testPassword,
			MockPrepFunc: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(stored, nil)
			},
		},
		{
			Desc:     "wrong password",
			Email:    "john@example.com",
			Password: "nope",
			Error:    errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(stored, nil)
			},
		},
		{
			Desc:     "unknown email",
			Email:    "ghost@example.com",
			Password: testPassword,
			Error:    errorvalues.ErrWrongCredentials,
			MockPrepFunc: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:     "db error",
			Email:    "john@example.com",
			Password: testPassword,
			Error:    errDB,
			MockPrepFunc: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(nil, errDB)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Login(ctx, tc.Email, tc.Password)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool := setupTestPool(t)
	repo := repository.NewUsersRepo(pool)
	us := service.NewUserService(repo)
	ctx := context.Background()
	email := "test_user@example.com"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Email:     email,
			FirstName: "Test",
			LastName:  "User",
			Password:  testPassword,
		})
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(testPassword)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:     "TEST_USER@example.com",
			FirstName: "Test",
			LastName:  "User",
			Password:  testPassword,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, email, testPassword)
		require.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa@example.com", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, testPassword)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, testPassword)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("workouts"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func setupTestPool(t *testing.T) repository.PgConnection {
	pool, err := repository.NewPool(context.Background(), setupTestDB(t), 4)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}
