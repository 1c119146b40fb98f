// Package models defines the wire-level records exchanged with the bank API.
package models
