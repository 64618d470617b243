// Package provider defines the translation model client implementations.
package provider

import "github.com/storelingo/storelingo"

// ModelClient is the interface for translation model backends.
// This is an alias to the main package interface for convenience.
type ModelClient = storelingo.ModelClient

// CompletionRequest is an alias to the main package type.
type CompletionRequest = storelingo.CompletionRequest

// CompletionResponse is an alias to the main package type.
type CompletionResponse = storelingo.CompletionResponse
