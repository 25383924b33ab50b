package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "messdelivery/internal/adapters/out/postgres"
	"messdelivery/internal/adapters/out/postgres/outboxrepo"
	"messdelivery/internal/adapters/out/postgres/pgtest"
	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/notification"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/domain/model/subscription"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	now       time.Time
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.container = container
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := s.db.Exec(`TRUNCATE TABLE deliveries, subscriptions, profiles, messes,
		delivery_notifications, outbox_messages`).Error
	s.Require().NoError(err)
	s.now = time.Date(2025, time.June, 3, 7, 0, 0, 0, time.UTC)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	s.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))
	s.NotSame(s.factory.Create(), s.factory.Create())
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommit_WritesDeliveryEventsToOutbox() {
	ctx := context.Background()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.DateOf(s.now), s.now)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	s.Require().NoError(uow.Commit(ctx))

	s.Empty(d.DomainEvents())

	var stored []outboxrepo.MessageDTO
	s.Require().NoError(s.db.Find(&stored).Error)
	s.Require().Len(stored, 1)
	s.Equal(delivery.EventCreated, stored[0].EventName)
	s.Equal(d.ID().Bytes(), stored[0].AggregateID)

	event, err := delivery.DecodeEvent(stored[0].Payload)
	s.Require().NoError(err)
	s.Equal("pending_assignment", event.Status)
	s.True(event.SubscriptionID.IsEqual(d.SubscriptionID()))
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsRowsAndEvents() {
	ctx := context.Background()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.DateOf(s.now), s.now)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	s.Require().NoError(uow.Rollback(ctx))

	s.Zero(s.countRows("deliveries"))
	s.Zero(s.countRows("outbox_messages"))
}

func (s *UnitOfWorkIntegrationTestSuite) TestSupportingRepositories_RoundTrip() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	studentID := kernel.NewUUID()
	personID := kernel.NewUUID()

	m, err := mess.NewMess(kernel.NewUUID(), ownerID, "Annapurna", "MG Road", s.now)
	s.Require().NoError(err)
	today := kernel.DateOf(s.now)
	sub, err := subscription.NewSubscription(kernel.NewUUID(), studentID, m.ID(), today, today, "sub/payment.png", s.now)
	s.Require().NoError(err)
	person, err := profile.NewProfile(personID, "Ravi", profile.DeliveryPersonnel, s.now)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.MessRepository().Add(ctx, m))
	s.Require().NoError(uow.SubscriptionRepository().Add(ctx, sub))
	s.Require().NoError(uow.ProfileRepository().Save(ctx, person))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(sub.Approve("sub/owner_confirmation.png", s.now))
	s.Require().NoError(person.JoinMessStaff(m.ID(), "+919999999999", s.now))

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.SubscriptionRepository().Update(ctx, sub))
	s.Require().NoError(uow.ProfileRepository().Save(ctx, person))
	s.Require().NoError(uow.Commit(ctx))

	uow = s.factory.Create()
	gotSub, err := uow.SubscriptionRepository().Get(ctx, sub.ID())
	s.Require().NoError(err)
	s.True(gotSub.IsActive())
	s.Equal("sub/owner_confirmation.png", gotSub.ConfirmationProof())

	gotPerson, err := uow.ProfileRepository().Get(ctx, personID)
	s.Require().NoError(err)
	s.True(gotPerson.IsStaffOf(m.ID()))
	s.Equal("+919999999999", gotPerson.PhoneNumber())

	gotMess, err := uow.MessRepository().Get(ctx, m.ID())
	s.Require().NoError(err)
	s.True(gotMess.IsOwnedBy(ownerID))

	_, err = uow.MessRepository().Get(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestNotificationRepository_MarkRead() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), userID, "Assigned", "assigned", s.now)
	s.Require().NoError(err)

	repo := s.factory.Create().NotificationRepository()
	s.Require().NoError(repo.Add(ctx, n))
	s.Require().NoError(n.MarkRead(userID))
	s.Require().NoError(repo.Update(ctx, n))

	got, err := repo.Get(ctx, n.ID())
	s.Require().NoError(err)
	s.True(got.IsRead())
}

func (s *UnitOfWorkIntegrationTestSuite) TestOutbox_PendingFailedProcessed() {
	ctx := context.Background()
	first := ports.OutboxMessage{
		ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventName: delivery.EventCreated,
		Payload: []byte(`{"status":"assigned"}`), OccurredAt: s.now,
	}
	second := ports.OutboxMessage{
		ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventName: delivery.EventAccepted,
		Payload: []byte(`{"status":"assigned"}`), OccurredAt: s.now.Add(time.Minute),
	}

	repo := s.factory.Create().OutboxRepository()
	s.Require().NoError(repo.Add(ctx, second, first))

	pending, err := repo.FetchPending(ctx, 10, 2)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.True(pending[0].ID.IsEqual(first.ID))

	s.Require().NoError(repo.MarkFailed(ctx, first.ID, errors.New("broker down")))
	s.Require().NoError(repo.MarkFailed(ctx, first.ID, errors.New("broker down")))
	s.Require().NoError(repo.MarkProcessed(ctx, second.ID, s.now))

	pending, err = repo.FetchPending(ctx, 10, 2)
	s.Require().NoError(err)
	s.Empty(pending)

	var dto outboxrepo.MessageDTO
	s.Require().NoError(s.db.First(&dto, "id = ?", first.ID.Bytes()).Error)
	s.Equal(2, dto.Attempts)
	s.Equal("broker down", dto.LastError)
}
