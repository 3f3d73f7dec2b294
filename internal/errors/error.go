// Package errors provides custom error types for product-related operations.
package errors

import "errors"

// ErrProductNotFound reports that no product row matched the request.
// Stock decrements reuse it for the insufficient-stock case as well, so the
// two outcomes are deliberately indistinguishable to callers.
var ErrProductNotFound = errors.New("product not found")
