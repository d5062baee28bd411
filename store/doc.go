// Package store persists lexicons in a BadgerDB database.
//
// A Store holds one lexicon snapshot. Import replaces the snapshot with
// the forms of an unexpanded lexicon; Load rebuilds the lexicon, which
// makes a *Store usable as a sintaxis.LexiconSource:
//
//	st, err := store.Open("/var/lib/sintaxis")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	a, err := sintaxis.New(ctx, st)
//
// Tests use an in-memory database:
//
//	st, err := store.OpenInMemory()
package store
