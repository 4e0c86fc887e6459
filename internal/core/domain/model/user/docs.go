// Package user holds the account record shared by customers, the restaurant and
// delivery staff, plus the Candidate projection used when dispatching orders.
//
// A User is a plain record: credential checks and token issuance live in
// package auth and take the record as input.
package user
