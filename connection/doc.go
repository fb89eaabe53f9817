/*
Package connection locates, starts and shuts down CSI application instances
(ETABS and SAP2000) over their COM automation interface.

Connect attaches to a running instance through the vendor's API helper
object and returns a Handle to its model. Start launches a fresh instance,
Close asks a running one to exit. A Handle implements the dispatcher
interfaces consumed by the tables, model and analysis packages.

All calls are synchronous single attempts with no retry policy; when no
instance is reachable the caller gets a ConnectError naming the likely
cause. On platforms without COM every entry point fails immediately the
same way.
*/
package connection
