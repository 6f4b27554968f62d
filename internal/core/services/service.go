package services

import "context"

// Service is a single use case. Decorators such as rate limiting wrap a
// Service and return another one with the same input and result types.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
