// Package order implements the order aggregate and its lifecycle state
// machine.
//
// An order is created at checkout from cart line snapshots and moves through
// placed, preparing, ready, pickedup and delivered, with cancelled reachable
// from any non-terminal state. Every transition stamps a per-status
// timestamp. The move to ready is gated on a rider being assigned; reaching
// a terminal state frees that rider for the next order while the embedded
// snapshot stays on the order as history.
package order
