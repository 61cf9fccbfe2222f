// Package cli parses the gridpath command line into a Config.
package cli
