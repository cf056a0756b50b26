// Package shipment contains the Shipment aggregate, the unit of work of the
// marketplace: one freight movement requested by a shipper, negotiated with
// the broker, and executed by a transporter.
//
// The shipment status state machine is defined once, as data, in status.go;
// every mutation on the aggregate consults that table. This keeps the rules
// that the legacy handlers duplicated in ad hoc conditionals in one place.
package shipment
