package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/gramatica-es/sintaxis"
)

// Store wraps a BadgerDB instance holding one lexicon snapshot.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ sintaxis.LexiconSource = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens the database in directory dir, creating it if needed.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		info, err = os.Stat(dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	logger := slog.Default().With(slog.String("component", "store"))
	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// IsClosed reports whether the database is closed.
func (s *Store) IsClosed() bool {
	return s.db.IsClosed()
}

// Import replaces the stored snapshot with the forms of lx. lx must not
// have been expanded by an Analyzer; the stored snapshot is expanded
// again whenever it is loaded.
func (s *Store) Import(ctx context.Context, lx *sintaxis.Lexicon) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	if lx.Frozen() {
		return ErrExpandedLexicon
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	stale, err := s.keys()
	if err != nil {
		return fmt.Errorf("scan snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("drop %q: %w", key, err)
		}
	}

	n := 0
	for _, c := range sintaxis.LexicalCategories() {
		for _, form := range lx.Words(c) {
			if err := wb.Set(makeFormKey(c, form), []byte{}); err != nil {
				return fmt.Errorf("write %s %q: %w", c, form, err)
			}
			n++
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	s.logger.Info("lexicon imported", slog.Int("forms", n))
	return nil
}

// Load rebuilds the stored lexicon. An empty store yields an empty
// lexicon.
func (s *Store) Load(ctx context.Context) (*sintaxis.Lexicon, error) {
	if s.db.IsClosed() {
		return nil, ErrClosed
	}
	lx := sintaxis.NewLexicon()

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeFormPrefix()

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, form, err := parseFormKey(it.Item().KeyCopy(nil))
			if err != nil {
				return err
			}
			if err := lx.Add(c, form); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return lx, nil
}

// Count returns the number of stored forms.
func (s *Store) Count() (int, error) {
	if s.db.IsClosed() {
		return 0, ErrClosed
	}
	keys, err := s.keys()
	return len(keys), err
}

// keys returns a copy of every form key.
func (s *Store) keys() ([][]byte, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeFormPrefix()

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}
