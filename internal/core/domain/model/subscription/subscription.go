// Package subscription models a student's paid commitment to a mess for a
// date range. Deliveries can only be created for active subscriptions.
package subscription

import (
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription or RestoreSubscription")

type Subscription struct {
	id                kernel.UUID
	studentID         kernel.UUID
	messID            kernel.UUID
	status            Status
	startDate         kernel.Date
	endDate           kernel.Date
	paymentProof      string
	confirmationProof string
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewSubscription creates a request awaiting the owner's confirmation.
// paymentProof is the blob path of the student's payment screenshot.
func NewSubscription(
	id, studentID, messID kernel.UUID,
	startDate, endDate kernel.Date,
	paymentProof string,
	now time.Time,
) (*Subscription, error) {
	s := &Subscription{
		id:            id,
		studentID:     studentID,
		messID:        messID,
		status:        PendingOwnerConfirmation,
		startDate:     startDate,
		endDate:       endDate,
		paymentProof:  paymentProof,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := s.validateFields(); err != nil {
		return nil, err
	}
	if paymentProof == "" {
		return nil, errs.NewValueIsRequiredError("paymentProof")
	}
	return s, nil
}

func RestoreSubscription(
	id, studentID, messID kernel.UUID,
	status Status,
	startDate, endDate kernel.Date,
	paymentProof, confirmationProof string,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	s := &Subscription{
		id:                id,
		studentID:         studentID,
		messID:            messID,
		status:            status,
		startDate:         startDate,
		endDate:           endDate,
		paymentProof:      paymentProof,
		confirmationProof: confirmationProof,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}
	if err := errors.Join(s.validateFields(), status.Validate()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Subscription) validateFields() error {
	var dateOrder error
	if s.startDate.Validate() == nil && s.endDate.Validate() == nil && s.endDate.Before(s.startDate) {
		dateOrder = errs.NewValueIsInvalidErrorWithCause(
			"endDate", fmt.Errorf("%s is before start date %s", s.endDate, s.startDate),
		)
	}
	return errors.Join(
		wrapInvalid("id", s.id.Validate()),
		wrapInvalid("studentId", s.studentID.Validate()),
		wrapInvalid("messId", s.messID.Validate()),
		wrapInvalid("startDate", s.startDate.Validate()),
		wrapInvalid("endDate", s.endDate.Validate()),
		dateOrder,
	)
}

func wrapInvalid(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}

func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

func (s *Subscription) ID() kernel.UUID {
	return s.id
}

func (s *Subscription) StudentID() kernel.UUID {
	return s.studentID
}

func (s *Subscription) MessID() kernel.UUID {
	return s.messID
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) StartDate() kernel.Date {
	return s.startDate
}

func (s *Subscription) EndDate() kernel.Date {
	return s.endDate
}

func (s *Subscription) PaymentProof() string {
	return s.paymentProof
}

func (s *Subscription) ConfirmationProof() string {
	return s.confirmationProof
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsActive() bool {
	return s.status == Active
}

// Approve activates a pending subscription. confirmationProof may be empty
// when the owner approves without uploading a receipt.
func (s *Subscription) Approve(confirmationProof string, now time.Time) error {
	next, err := s.status.review(Active)
	if err != nil {
		return err
	}
	s.status = next
	s.confirmationProof = confirmationProof
	s.updatedAt = now
	return nil
}

// Reject closes a pending subscription without activating it.
func (s *Subscription) Reject(now time.Time) error {
	next, err := s.status.review(Rejected)
	if err != nil {
		return err
	}
	s.status = next
	s.updatedAt = now
	return nil
}
