// Package commands implements the bindingdemo CLI.
//
// The root command loads bindings.yaml (or the file given with --config)
// and installs its logger and error handler before any subcommand runs.
package commands
