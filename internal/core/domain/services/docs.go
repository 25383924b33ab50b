// Package services holds domain logic that spans more than one aggregate.
//
// The package includes:
//   - DeliveryAccessPolicy: who may create, advance, prove and view a delivery
//   - NotificationComposer: turns delivery events into per-user notifications
package services
