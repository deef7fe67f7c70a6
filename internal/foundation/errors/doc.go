// Package errors provides the classified error primitives used across docsite.
//
// A ClassifiedError carries a category, a severity and structured context so the
// outer surfaces can present it consistently: the CLI adapter maps categories to
// process exit codes and the HTTP adapter maps them to status codes and a JSON body.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "sidebar table is invalid").
//		WithContext("prefix", "/guide").
//		Fatal().
//		Build()
package errors
