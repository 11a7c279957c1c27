// Package kernel holds the value objects shared by every aggregate of the
// fulfillment domain: identifiers, money amounts, shipping addresses and
// contact details. All of them are immutable and validate on construction.
package kernel
