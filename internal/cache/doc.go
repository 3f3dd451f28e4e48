// Package cache implements a single-process, in-memory key–value cache
// bounded by a fixed capacity, with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked list)
//   - Provide O(1) Put/Get/Remove via map index + LRU pointers
//   - Keep the lookup map and the recency order agreeing on membership
//     after every operation
//   - Stay single-threaded and synchronous: no goroutines, no locks.
//     Callers that share a cache across goroutines serialize access
//     externally.
package cache
