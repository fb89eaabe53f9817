/*
Package tables retrieves analysis result tables from a connected CSI
application (ETABS or SAP2000) and reshapes the vendor's flat row-major
payloads into rectangular Table values.

The client validates each requested key against the model's available
tables, optionally applies load-case and load-combination selections first,
and returns a Table with named columns and preserved row order. Zero-value
Config options fall back to sensible defaults; tests can inject a scripted
Dispatcher (see the modelmock package) to exercise retrieval paths without a
running vendor application.
*/
package tables
