package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/user"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type PostgresRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	contactRepo contact.Repository
	userRepo    user.Repository
}

func (s *PostgresRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewNopLogger()
	s.contactRepo = NewPostgresContactRepo(s.dbPool, testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, testLogger)
}

func (s *PostgresRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPostgresRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PostgresRepoIntegrationTestSuite))
}

func (s *PostgresRepoIntegrationTestSuite) Test_SaveAndList_NewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	older := &contact.Message{ID: uuid.New(), ClientID: "c1", Name: "Ada", Email: "ada@example.com", Subject: "Hi", Body: "first", ReceivedAt: base.Add(-time.Hour)}
	newer := &contact.Message{ID: uuid.New(), ClientID: "c2", Name: "Bob", Email: "bob@example.com", Subject: "Yo", Body: "second", ReceivedAt: base}

	s.Require().NoError(s.contactRepo.Save(ctx, older))
	s.Require().NoError(s.contactRepo.Save(ctx, newer))
	s.Require().NoError(s.contactRepo.Save(ctx, newer), "saving the same id twice is a no-op")

	messages, err := s.contactRepo.List(ctx, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(messages, 2)
	s.Equal(newer.ID, messages[0].ID)
	s.Equal(older.ID, messages[1].ID)

	page, err := s.contactRepo.List(ctx, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(older.ID, page[0].ID)
}

func (s *PostgresRepoIntegrationTestSuite) Test_UserUpsertAndFind() {
	ctx := context.Background()
	u := &user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hash-1"}

	s.Require().NoError(s.userRepo.Upsert(ctx, u))
	u.PasswordHash = "hash-2"
	s.Require().NoError(s.userRepo.Upsert(ctx, u))

	found, err := s.userRepo.FindByEmail(ctx, "owner@example.com")
	s.Require().NoError(err)
	s.Equal("hash-2", found.PasswordHash)

	_, err = s.userRepo.FindByEmail(ctx, "nobody@example.com")
	s.ErrorIs(err, apperror.ErrNotFound)
}
