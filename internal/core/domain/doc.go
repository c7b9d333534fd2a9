// Package domain contains the core business entities for hiresift.
// Domain types have no dependencies on adapters or infrastructure.
package domain
