package http

import (
	"context"
	"time"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
)

// CommandHandler runs a command that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// CallerResolver authenticates a bearer token.
type CallerResolver interface {
	Resolve(ctx context.Context, token string) (profile.Caller, error)
}

// TokenIssuer logs a user in. Only the local identity provider has one.
type TokenIssuer interface {
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

// Handlers groups the use cases the transport dispatches to.
type Handlers struct {
	CreateDelivery       CommandHandler[commands.CreateDeliveryCommand]
	AcceptFromPool       CommandHandler[commands.AcceptFromPoolCommand]
	AdvanceStatus        CommandHandler[commands.AdvanceStatusCommand]
	AttachProof          ResultHandler[commands.AttachProofCommand, string]
	RequestSubscription  CommandHandler[commands.RequestSubscriptionCommand]
	ReviewSubscription   CommandHandler[commands.ReviewSubscriptionCommand]
	CreateDeliveryStaff  ResultHandler[commands.CreateDeliveryStaffCommand, kernel.UUID]
	MarkNotificationRead CommandHandler[commands.MarkNotificationReadCommand]

	PublicPool         ResultHandler[queries.GetPublicPoolQuery, []queries.DeliveryView]
	AssignedDeliveries ResultHandler[queries.GetAssignedDeliveriesQuery, []queries.DeliveryView]
	MessDeliveries     ResultHandler[queries.GetMessDeliveriesQuery, []queries.DeliveryView]
	StudentDeliveries  ResultHandler[queries.GetStudentDeliveriesQuery, []queries.DeliveryView]
	MessStaff          ResultHandler[queries.GetMessStaffQuery, []queries.StaffMemberView]
	DeliveryProofs     ResultHandler[queries.GetDeliveryProofsQuery, queries.DeliveryProofsView]
	Notifications      ResultHandler[queries.GetNotificationsQuery, []queries.NotificationView]
}

// Server adapts HTTP requests to command and query handlers.
type Server struct {
	handlers Handlers
	resolver CallerResolver
	issuer   TokenIssuer
}

// NewServer builds the transport. issuer may be nil, in which case the token
// endpoint is not mounted.
func NewServer(handlers Handlers, resolver CallerResolver, issuer TokenIssuer) *Server {
	return &Server{
		handlers: handlers,
		resolver: resolver,
		issuer:   issuer,
	}
}
