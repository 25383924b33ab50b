package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/guard"
)

var ErrReviewSubscriptionCommandIsNotConstructed = errors.New(
	"ReviewSubscriptionCommand must be created via NewReviewSubscriptionCommand constructor",
)

// ReviewSubscriptionCommand approves or rejects a pending subscription. An
// approval may carry the owner's confirmation screenshot.
type ReviewSubscriptionCommand struct { //nolint:recvcheck //using for validation
	caller         profile.Caller
	subscriptionID kernel.UUID
	approve        bool
	confirmation   *Upload

	guard guard.ConstructorGuard
}

func NewReviewSubscriptionCommand(
	caller profile.Caller,
	subscriptionID kernel.UUID,
	approve bool,
	confirmation *Upload,
) (ReviewSubscriptionCommand, error) {
	var fileErr error
	if confirmation != nil {
		fileErr = confirmation.validate("owner_confirmation_screenshot")
	}

	if err := errors.Join(caller.Validate(), requireID("subscriptionId", subscriptionID), fileErr); err != nil {
		return ReviewSubscriptionCommand{}, err
	}

	cmd := ReviewSubscriptionCommand{
		caller:         caller,
		subscriptionID: subscriptionID,
		approve:        approve,
		guard:          guard.NewConstructorGuard(),
	}
	if approve && confirmation != nil {
		c := *confirmation
		cmd.confirmation = &c
	}
	return cmd, nil
}

func (c ReviewSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrReviewSubscriptionCommandIsNotConstructed)
}

func (c ReviewSubscriptionCommand) Caller() profile.Caller {
	return c.caller
}

func (c ReviewSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c ReviewSubscriptionCommand) Approve() bool {
	return c.approve
}

// Confirmation is nil for rejections and for approvals without a screenshot.
func (c ReviewSubscriptionCommand) Confirmation() *Upload {
	return c.confirmation
}

// BlobPath is "{subscriptionId}/owner_confirmation.{ext}", or empty without
// a confirmation screenshot.
func (c ReviewSubscriptionCommand) BlobPath() string {
	if c.confirmation == nil {
		return ""
	}
	return c.confirmation.blobPath(c.subscriptionID, "owner_confirmation")
}
