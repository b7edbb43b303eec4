// Package domain contains the core calibration model.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// filesystem or any output format. Infra/adapters map into/from these types.
package domain
