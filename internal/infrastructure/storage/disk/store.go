package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var errUnsafePath = crerr.New("unsafe object path")

// Store keeps uploaded objects as plain files under root/bucket/key.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, crerr.New("upload root directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, crerr.Wrapf(err, "resolve upload root %q", root)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create upload root %q", abs)
	}
	return &Store{root: abs}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Put writes data atomically: a temp file in the bucket directory is renamed into place.
func (s *Store) Put(ctx context.Context, bucket, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create bucket directory %q", bucket)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return crerr.Wrap(err, "create temp object")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write object %s/%s", bucket, key)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close object %s/%s", bucket, key)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "commit object %s/%s", bucket, key)
	}
	return nil
}

func (s *Store) objectPath(bucket, key string) (string, error) {
	for _, part := range []string{bucket, key} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", crerr.Wrapf(errUnsafePath, "bucket=%q key=%q", bucket, key)
		}
	}
	return filepath.Join(s.root, bucket, key), nil
}

// IsUnsafePath reports whether err came from a rejected bucket or key.
func IsUnsafePath(err error) bool {
	return crerr.Is(err, errUnsafePath)
}
