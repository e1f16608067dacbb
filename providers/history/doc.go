// Package history defines the [Store] interface for persisting completed
// request/response exchanges, along with the [Entry] record type.
//
// The in-process implementation lives in the inmemory subpackage.
package history
