// Package order contains the order aggregate: the immutable-once-created
// financial record produced by checkout, its line-item snapshots, the billing
// and shipping address values, and the lifecycle status machine.
//
// An order captures prices and vehicle attributes at creation time. Later
// catalog edits never change what a historical order says was bought or paid.
// After creation only the status, the admin notes, and the write-once
// lifecycle timestamps may change, and only through the aggregate's methods.
package order
