package cache

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/voxelgraph/waterz/scoring"
)

// DefaultDirName is the cache subdirectory created under the user's home
// directory.
const DefaultDirName = ".cache/waterz"

const (
	treeFileName = "tree.gob"
	lockFileName = ".lock"
)

// Cache stores parsed scoring.Tree values under dir, one subdirectory per
// content hash of the expression text that produced them.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir. dir is created on first Build call if
// it does not yet exist.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// NewDefault returns a Cache rooted at $HOME/.cache/waterz.
func NewDefault() (*Cache, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil, ErrNoHomeDir
	}

	return New(filepath.Join(home, DefaultDirName)), nil
}

// Key returns the content-hash key for a scoring expression: a hex-encoded
// SHA-256 of its source text.
func Key(expr string) string {
	sum := sha256.Sum256([]byte(expr))

	return hex.EncodeToString(sum[:])
}

// Build returns the parsed, validated scoring.Tree for expr, reading it from
// disk when a cached entry exists and forceRebuild is false, and otherwise
// parsing it fresh via scoring.Build and writing the result back to disk.
//
// Access to a given key's cache entry is serialized with an advisory
// exclusive flock(2) (golang.org/x/sys/unix.Flock) on a lock file inside
// that key's directory, so two callers racing to build the same expression
// never interleave a partial write with a read.
//
// The returned hit flag reports whether the tree came from an existing
// cache entry (true) or was just parsed and written fresh (false), for
// callers that want to instrument cache effectiveness.
func (c *Cache) Build(expr string, forceRebuild bool) (tree *scoring.Tree, hit bool, err error) {
	key := Key(expr)
	entryDir := filepath.Join(c.dir, key)
	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		return nil, false, err
	}

	lockPath := filepath.Join(entryDir, lockFileName)
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, false, err
	}
	defer lockFile.Close()

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX); err != nil {
		return nil, false, err
	}
	defer unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)

	treePath := filepath.Join(entryDir, treeFileName)
	if !forceRebuild {
		if cached, ok, err := loadTree(treePath); err != nil {
			return nil, false, err
		} else if ok {
			return cached, true, nil
		}
	}

	built, err := scoring.Build(expr)
	if err != nil {
		return nil, false, err
	}
	if err := storeTree(treePath, built); err != nil {
		return nil, false, err
	}

	return built, false, nil
}

// loadTree reads and gob-decodes a cached tree, reporting ok=false (no
// error) when no entry exists yet at path.
func loadTree(path string) (*scoring.Tree, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, err
	}
	defer f.Close()

	var tree scoring.Tree
	if err := gob.NewDecoder(f).Decode(&tree); err != nil {
		return nil, false, err
	}

	return &tree, true, nil
}

// storeTree gob-encodes tree to a temp file and renames it into place, so a
// reader never observes a partially written entry even without the lock.
func storeTree(path string, tree *scoring.Tree) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(tree); err != nil {
		f.Close()
		os.Remove(tmp)

		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)

		return err
	}

	return os.Rename(tmp, path)
}
