/*
Package observability provides tools for looking inside a running tumble engine.

It records finished roll sessions from lifecycle hooks so that the debug
server (or a test) can show what was rolled, in which order and whether the
session was skipped.
*/
package observability
