// SPDX-License-Identifier: MIT

package vectorize

import (
	"fmt"
	"strings"
)

// EmptyDocumentPolicy decides what TF does with a document of length zero.
//
//   - EmptyDocumentError: fail with ErrEmptyDocument (default).
//   - EmptyDocumentZero : define the TF (and TF-IDF) row as all-zero.
type EmptyDocumentPolicy int

const (
	// EmptyDocumentError reports zero-length documents as ErrEmptyDocument.
	EmptyDocumentError EmptyDocumentPolicy = iota

	// EmptyDocumentZero maps zero-length documents to all-zero rows.
	EmptyDocumentZero
)

const (
	policyNameError = "error"
	policyNameZero  = "zero"
)

// String returns the flag spelling of the policy ("error" or "zero").
func (p EmptyDocumentPolicy) String() string {
	switch p {
	case EmptyDocumentError:
		return policyNameError
	case EmptyDocumentZero:
		return policyNameZero
	default:
		return fmt.Sprintf("EmptyDocumentPolicy(%d)", int(p))
	}
}

// valid reports whether p is one of the defined policies.
func (p EmptyDocumentPolicy) valid() bool {
	return p == EmptyDocumentError || p == EmptyDocumentZero
}

// ParseEmptyDocumentPolicy converts "error" / "zero" (case-insensitive) to a policy.
func ParseEmptyDocumentPolicy(s string) (EmptyDocumentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case policyNameError:
		return EmptyDocumentError, nil
	case policyNameZero:
		return EmptyDocumentZero, nil
	default:
		return EmptyDocumentError, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// Options configures a TfidfVectorizer.
//
// Fields:
//   - EmptyDocuments: policy for documents without tokens (see EmptyDocumentPolicy).
//
// There are intentionally no stop-word, n-gram or max-feature knobs.
type Options struct {
	EmptyDocuments EmptyDocumentPolicy
}

// Option mutates Options; pass any number to NewTfidfVectorizer.
type Option func(*Options)

// DefaultOptions returns the reference behavior: empty documents are an error.
func DefaultOptions() Options {
	return Options{EmptyDocuments: EmptyDocumentError}
}

// WithEmptyDocumentPolicy sets the policy for zero-length documents.
func WithEmptyDocumentPolicy(p EmptyDocumentPolicy) Option {
	return func(o *Options) {
		o.EmptyDocuments = p
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
