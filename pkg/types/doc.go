// Package types defines the vehicle and service-event records, the Store
// interface, validation rules, and standard errors for the garagelog
// record store.
package types
