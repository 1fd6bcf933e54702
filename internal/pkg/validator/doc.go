// Package validator provides a small validation abstraction for usecase
// inputs.
//
// Business code depends on the Validator interface; the go-playground
// validator v10 implementation lives in this package.
package validator
