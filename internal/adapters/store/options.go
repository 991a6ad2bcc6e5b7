// Package store persists the raw and processed player tables as CSV files.
package store

import "os"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithDataDir sets the directory the CSV files are written into.
func WithDataDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithDirPerm sets the permission used when creating the data directory.
func WithDirPerm(perm os.FileMode) Option {
	return func(s *Store) {
		if perm != 0 {
			s.dirPerm = perm
		}
	}
}

// WithFilePerm sets the permission used when creating output files.
func WithFilePerm(perm os.FileMode) Option {
	return func(s *Store) {
		if perm != 0 {
			s.filePerm = perm
		}
	}
}
