// Package kernel contains the shared value objects of the domain model:
// order identifiers and monetary amounts. Value objects are immutable,
// created through factory functions and validated via Validate, so entities
// built on top of them never carry half-initialized state.
package kernel
