// Package models defines the domain models for billsplit.
//
// # Bills and items
//
// A Bill is a restaurant receipt: an ordered catalog of Items plus the People splitting it.
// Items carry their line price as the text the receipt supplied ("$8.00") and a unit
// Quantity. A multi-unit item (three orange juices on one line) can be split unit by unit.
//
// # Participants
//
// The people list shown to the user also contains an "add person" card. It is modelled as
// its own variant of Participant so that nothing expecting a Person can receive it:
//   - Person: a real participant who can be charged
//   - AddPersonPlaceholder: the UI affordance, never an assignment target
//
// # Accounts
//
// User, Friend and Payment back the authentication and settle-up features. Bills reference
// people by ID strings, never by pointer.
package models
