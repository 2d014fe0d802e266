package model

// AddOutcome defines the result of adding an entry to an activity list.
type AddOutcome string

// Activity add outcomes. A duplicate add is a no-op, not an error.
const (
	Added          = AddOutcome("added")
	AlreadyPresent = AddOutcome("already-present")
)

// Entry defines one resolved activity item: the stored movie id together
// with the title looked up from the catalog at read time.
type Entry struct {
	ID    MovieID
	Title string
}
