// Package payments is the billing bounded context: a subscription payments
// ledger with confirmation email on record. External billing references are
// encrypted with a module-scoped key before storage.
package payments
