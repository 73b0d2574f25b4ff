// Package domain contains the core model for envlines.
//
// The domain is transport- and filesystem-agnostic: it does not open files,
// decode bytes or write to terminals. Infra/adapters map into/from these types.
package domain
