/*
Package domain contains the data model shared by every scribe component.

It defines the wire shapes sent to the workspace API (content blocks, page
creation and append requests), the uniform OperationResult returned by every
operation, and the registry entry recorded for each created page. The package
has no I/O and no dependencies beyond the standard library.
*/
package domain
