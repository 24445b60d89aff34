/*
Package closer ties callbacks and release ordering to external resources such as
cursors, statements and connections.

# Close hooks

[OnClose] wraps a resource so that callbacks run exactly once, in registration order, the
first time the resource is closed, before the real close. Which operation counts as
closing depends on the resource [Family], chosen once when the wrapper is built:

	| Family     | Shape                      | Close-shaped operation |
	|------------|----------------------------|------------------------|
	| cursor     | *sql.Rows, pgx.Rows        | Close                  |
	| statement  | *sql.Stmt                  | Close                  |
	| connection | *sql.Conn, *pgxpool.Conn   | Close, Release         |
	| closer     | io.Closer                  | Close                  |

Every other method is forwarded through interface embedding, so the wrapper is
interchangeable with the resource for the interface the caller holds it as.

# Failures

A hook failure is either native (a driver error, see [IsNative], or one marked with
[Native]) and returned unchanged, or unexpected and returned as an
[UnexpectedHookError]. Teardown paths use [Quietly], which never reports failures to the
caller, and [Chain], which releases acquired resources in reverse order.
*/
package closer
