// Package delivery contains the Delivery aggregate: one meal drop for one
// subscription on one calendar day, its status machine, the four proof-photo
// slots, and the events it records for the notification outbox.
//
// Status progression:
//
//	pending_assignment ─> assigned ─> food_preparing ─> food_ready ─> picked_up ─> out_for_delivery ─> delivered
//	        │                 │              │               │             │                │
//	        └─────────────────┴──────────────┴───────────────┴─────────────┴────────────────┴──────> failed
//
// delivered and failed are terminal. A delivery leaves pending_assignment only
// by being assigned to a delivery person (at creation or by pool acceptance)
// or by failing.
package delivery
