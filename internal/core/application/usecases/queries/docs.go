// Package queries contains the read side of the service.
//
// Query handlers bypass the aggregates and read straight from the tables
// with raw SQL, returning flat read models shaped for one screen each.
// Authorization is checked in the same statement or just before it, since
// there is no aggregate to ask.
package queries
