// Package flatten provides the store used while normalizing and
// denormalizing: a table of buckets, each an append-only sequence of
// values addressed by position.
//
// Within a bucket, positions are assigned densely from 0 in the order
// values are added and never change.  Intern adds a value only if an
// equal leaf value (or the same container node) is not already
// present; Push always adds.
//
// A Store exports to, and is rehydrated from, an index: an object
// node mapping bucket names to arrays, in bucket creation order.
//
// A Store is not safe for concurrent use.
package flatten
