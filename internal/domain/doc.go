// Package domain defines core data models, errors and interfaces shared across
// the calculator. It contains plain values and contracts only.
package domain
