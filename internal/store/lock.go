package store

import (
	"os"
	"syscall"
)

// fileLock serializes writes to one context's data file across concurrent
// hk invocations, using flock on a sibling .lock file.
type fileLock struct {
	path string
	file *os.File
}

func newFileLock(path string) *fileLock {
	return &fileLock{path: path}
}

// Lock acquires an exclusive lock, creating the lock file if needed.
// Blocks until the lock is acquired.
func (l *fileLock) Lock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return err
	}

	l.file = f
	return nil
}

// Unlock releases the lock and closes the file. Safe to call when the
// lock is not held.
func (l *fileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		l.file = nil
		return err
	}

	err := l.file.Close()
	l.file = nil
	return err
}
