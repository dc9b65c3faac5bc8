// Package types defines the Roster store interface, the department, role and
// employee entities, the joined row views returned by list queries, and the
// standard errors shared by backends and the CLI.
package types
