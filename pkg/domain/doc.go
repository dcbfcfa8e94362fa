// Package domain contains the core entities of the land registry: users,
// land parcels, ownerships, workflow requests and documents, together with
// the enumerations and transition rules that belong to them. The types are
// free of infrastructure concerns so they can be shared across packages.
package domain
