/*
Package assert provides runtime assertions for invariants that only a programming error could violate.
In this module they guard token claim state, so a token can never be claimed twice or claimed out of range.

A failed assertion panics with the label and the caller's file and line.
To turn off assertions build with the 'noassert' flag.
Disable and Enable exist for tests, and should likely not be used in production code.
*/
package assert
