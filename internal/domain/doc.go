// Package domain contains the core model for starfield.
//
// The domain is format- and storage-agnostic: it does not depend on SVG, PNG,
// YAML parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
