// Package rest is the HTTP adapter. It binds query parameters into domain
// criteria, calls the driving ports, and serves collection files straight
// from the project data root. Nothing here contains business rules.
package rest
