// Package api defines the billsplit.v1 RPC surface: message types, procedure
// names, the JSON codec and typed Connect clients.
//
// Messages are plain Go structs encoded as JSON. Money amounts travel as decimal
// strings ("5.33").
package api
