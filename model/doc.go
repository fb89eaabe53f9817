/*
Package model provides model-file operations on a connected CSI application:
reading the open model's file name, initializing a blank model and opening
model files with explicit units.

The Units values mirror the vendor's eUnits enumeration and are passed
through verbatim.
*/
package model
