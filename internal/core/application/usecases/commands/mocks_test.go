package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/notification"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/domain/model/subscription"
	"messdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) UpdateStatus(ctx context.Context, d *delivery.Delivery, expected delivery.Status) error {
	return m.Called(ctx, d, expected).Error(0)
}

func (m *MockDeliveryRepository) SaveProof(ctx context.Context, d *delivery.Delivery, slot delivery.ProofSlot) error {
	return m.Called(ctx, d, slot).Error(0)
}

func (m *MockDeliveryRepository) ClaimFromPool(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Add(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*subscription.Subscription)
	return s, args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

type MockMessRepository struct{ mock.Mock }

func (m *MockMessRepository) Add(ctx context.Context, ms *mess.Mess) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockMessRepository) Get(ctx context.Context, id kernel.UUID) (*mess.Mess, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*mess.Mess)
	return ms, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit, maxAttempts)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	return m.Called(ctx, id, cause).Error(0)
}

// MockUoW satisfies every narrowed unit of work view.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	return m.Called().Get(0).(ports.SubscriptionRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	return m.Called().Get(0).(ports.ProfileRepository)
}

func (m *MockUoW) MessRepository() ports.MessRepository {
	return m.Called().Get(0).(ports.MessRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Upload(ctx context.Context, bucket, path, contentType string, content io.Reader) error {
	return m.Called(ctx, bucket, path, contentType, content).Error(0)
}

func (m *MockBlobStore) Remove(ctx context.Context, bucket, path string) error {
	return m.Called(ctx, bucket, path).Error(0)
}

func (m *MockBlobStore) SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, bucket, path, ttl)
	return args.String(0), args.Error(1)
}

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) CreateUser(ctx context.Context, identity ports.NewIdentity) (kernel.UUID, error) {
	args := m.Called(ctx, identity)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

// world is a mess with an owner, one staff member and an active subscriber.
type world struct {
	now      time.Time
	today    kernel.Date
	owner    profile.Caller
	person   profile.Caller
	student  profile.Caller
	stranger profile.Caller
	mess     *mess.Mess
	sub      *subscription.Subscription
	staff    *profile.Profile
}

func newWorld(t *testing.T) world {
	t.Helper()
	now := time.Date(2025, time.June, 4, 11, 0, 0, 0, time.UTC)
	w := world{now: now, today: kernel.DateOf(now)}

	var err error
	w.owner, err = profile.NewCaller(kernel.NewUUID(), profile.MessOwner)
	require.NoError(t, err)
	w.person, err = profile.NewCaller(kernel.NewUUID(), profile.DeliveryPersonnel)
	require.NoError(t, err)
	w.student, err = profile.NewCaller(kernel.NewUUID(), profile.Student)
	require.NoError(t, err)
	w.stranger, err = profile.NewCaller(kernel.NewUUID(), profile.DeliveryPersonnel)
	require.NoError(t, err)

	w.mess, err = mess.NewMess(kernel.NewUUID(), w.owner.ID(), "Annapurna", "MG Road", now)
	require.NoError(t, err)

	w.sub, err = subscription.RestoreSubscription(
		kernel.NewUUID(), w.student.ID(), w.mess.ID(), subscription.Active,
		w.today, w.today, "s/payment.png", "", now, now,
	)
	require.NoError(t, err)

	w.staff, err = profile.NewProfile(w.person.ID(), "Ravi", profile.DeliveryPersonnel, now)
	require.NoError(t, err)
	require.NoError(t, w.staff.JoinMessStaff(w.mess.ID(), "", now))

	return w
}

// delivery restores a delivery of the world's subscription in status with
// the given assignee.
func (w world) delivery(t *testing.T, status delivery.Status, assignee *kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), w.sub.ID(), w.mess.ID(), assignee, status,
		w.today, delivery.Proofs{}, w.now, w.now,
	)
	require.NoError(t, err)
	return d
}

func (w world) personID() *kernel.UUID {
	id := w.person.ID()
	return &id
}
