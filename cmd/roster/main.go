// Command roster is an interactive tracker for departments, roles and
// employees backed by a local SQLite database.
package main

import "github.com/mesh-intelligence/roster/internal/cli"

func main() {
	cli.Execute()
}
