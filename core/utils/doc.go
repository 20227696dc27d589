// Package utils provides the loose-typing helpers used when decoding
// reconciliation payloads, where clients send a scalar in place of a list or a
// number as a string.
package utils
