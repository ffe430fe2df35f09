// Package commands defines the funcdemo CLI.
//
// Commands
//
//   - lambdas     Function values, comparators and sorting
//   - interfaces  Equipment built through suppliers
//   - streams     Lazy stream sources, operations and statistics
//   - all         Every demo in order
//
// The root command resolves --roster and --today into demo options before any
// subcommand runs.
package commands
