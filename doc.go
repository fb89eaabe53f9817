/*
Package csi is a thin convenience layer over the COM automation interface of
CSI's structural analysis applications, ETABS and SAP2000.

The package exposes Connect and Start to attach to (or launch) a vendor
instance, and a Client facade that groups the capability clients: tables for
result-table retrieval, model for model-file operations and analysis for the
analysis engine. Raw hands back the underlying automation object for vendor
calls the SDK does not wrap.

All structural analysis and data storage happens inside the vendor process;
this SDK marshals method calls and reshapes returned arrays. Everything is
synchronous and single-attempt.
*/
package csi
