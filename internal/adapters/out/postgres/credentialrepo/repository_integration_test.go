package credentialrepo_test

import (
	"context"
	"testing"
	"time"

	"messdelivery/internal/adapters/out/postgres/credentialrepo"
	"messdelivery/internal/adapters/out/postgres/pgtest"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CredentialRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *credentialrepo.GormCredentialRepository
}

func TestCredentialRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(CredentialRepositoryIntegrationTestSuite))
}

func (s *CredentialRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.container = container
	s.db = db

	s.Require().NoError(db.AutoMigrate(&credentialrepo.CredentialDTO{}))
	s.repository = credentialrepo.NewGormCredentialRepository(db)
}

func (s *CredentialRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE credentials").Error)
}

func (s *CredentialRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *CredentialRepositoryIntegrationTestSuite) TestAdd_ThenFindByEmail_IgnoresCase() {
	ctx := context.Background()
	c := credentialrepo.Credential{
		ID:           kernel.NewUUID(),
		Email:        " Ravi@Example.com",
		PasswordHash: []byte("$2a$10$hash"),
		Role:         profile.DeliveryPersonnel,
		CreatedAt:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.repository.Add(ctx, c))
	found, err := s.repository.FindByEmail(ctx, "RAVI@example.com")

	s.Require().NoError(err)
	s.True(found.ID.IsEqual(c.ID))
	s.Equal("ravi@example.com", found.Email)
	s.Equal(profile.DeliveryPersonnel, found.Role)
	s.Equal(c.PasswordHash, found.PasswordHash)
}

func (s *CredentialRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	first := credentialrepo.Credential{
		ID: kernel.NewUUID(), Email: "a@b.c", PasswordHash: []byte("h"), Role: profile.Student, CreatedAt: time.Now().UTC(),
	}
	second := first
	second.ID = kernel.NewUUID()
	second.Email = "A@B.C"

	s.Require().NoError(s.repository.Add(ctx, first))
	err := s.repository.Add(ctx, second)

	s.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (s *CredentialRepositoryIntegrationTestSuite) TestFindByEmail_NotFound() {
	_, err := s.repository.FindByEmail(context.Background(), "nobody@example.com")

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
