// Package commands defines the gridviz CLI.
//
// Commands
//
//   - render    Render the transformation comparison figure to a PNG
//   - cases     List the built-in transformation catalogue
//   - version   Print the gridviz version
//
// # Implementation
//
// The root command holds the global --config and --verbose flags. The
// scene is loaded lazily by the render command so that cases and version
// work without any configuration present.
package commands
