// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults overlaid by an optional JSON file), builds the
// calculator service and formatter, and picks renderers, exposing them via
// the App struct for commands to use.
package app
