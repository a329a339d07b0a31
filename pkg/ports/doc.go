/*
Package ports defines the interfaces between the dectab core and its adapters.

# Key Interfaces

  - TableStore: persists recognized decision tables (memory, Redis).
  - TableRecognizer: the recognition entry point used by the HTTP and MCP front ends.

A reusable contract suite for TableStore implementations lives in pkg/ports/tests.
*/
package ports
