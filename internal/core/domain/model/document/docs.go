// Package document provides the Document entity: the paperwork attached to an order.
//
// An order carries an Invoice, a Packing List and a Certificate of Origin from the
// moment it is placed, and a shipping Label once it has been handed to a carrier.
// Document ids are derived from the order id and the kind, so every order has at most
// one document of each kind.
package document
