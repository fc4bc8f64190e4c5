// Package bannedlist implements the operator-curated banned email list.
//
// This is the single source of truth for whether an email address is
// banned. Entries flow in from admin actions (API or banctl) and are
// checked by the anti-spam gate before an identity is handed out.
//
// The service layer contains pure business logic and depends on the
// Repository interface defined in repository.go. It never imports
// net/http or database/sql directly. Resilience policy lives one layer
// up, in the antispam gate: every operation here is a faithful,
// failure-transparent mirror of the store.
package bannedlist
