// sourcemap.go — Silver source registry (public API + private implementation)
//
// OVERVIEW
// --------
// A SourceMap mirrors a project directory as a tree of *deferred* source
// files: registration records paths only, and a file's contents are read
// the first time something asks for them. Projects under refactoring tend
// to carry files nobody imports; deferring the reads keeps those free.
//
// Each loaded file is assigned a base offset in one project-wide character
// coordinate space, so token spans from different files never overlap and a
// bare offset is enough to name a location anywhere in the project. The
// lexer cooperates through NewLexerAt, which starts its spans at the base
// the registry hands it.
//
// PUBLIC API (this file)
// ----------------------
//   - NewSourceMap(root) — walk root, register every .sil file, read nothing.
//   - (*SourceMap).Lookup(path) — find a registered file without loading it.
//   - (*SourceMap).Load(path) — read on first use, assign the base offset;
//     later calls return the cached file.
//   - (*SourceMap).LexFile(path, opts...) — Load + lex at the file's base.
//   - (*SourceMap).FileForPos(pos) — map a global offset back to its file.
//   - (*SourceMap).Slice(span) — the text a global span covers.
//   - (*SourceMap).Tree() — the deferred registry tree, for display/walks.
//   - FileIDFor(path) — the registry's stable file identity.
//
// What Load does, precisely:
//  1. Identity. A file's FileID is the FNV-1a hash of its full registry
//     path (slash-separated, relative to the root). Hashing the whole path
//     rather than the basename keeps "a/main.sil" and "b/main.sil" distinct.
//  2. Read + base assignment. First load reads the file and pins its Base
//     to the registry's running offset counter; the counter then advances
//     by the file's rune count plus one, reserving room for the synthetic
//     closing NEWLINE span (end, end+1) so adjacent files stay disjoint.
//  3. Caching. Only successful loads are cached; failures are never cached.
//
// Error semantics:
//   - Unregistered paths and unreadable files return plain errors.
//   - LexFile rewrites an *IndentError's global offset to a file-relative
//     one before caret rendering, so the snippet points into the right file.
//
// Concurrency:
//   - Not synchronized; callers should not share one SourceMap across
//     goroutines, same as a Lexer.
package silver

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SourceExt is the file extension the registry recognizes.
const SourceExt = ".sil"

// FileID identifies a registered source file: the FNV-1a hash of its full
// registry path.
type FileID uint64

// FileIDFor returns the FileID for a registry path.
func FileIDFor(p string) FileID {
	h := fnv.New64a()
	h.Write([]byte(p))
	return FileID(h.Sum64())
}

// DeferredFile is a registered-but-unread source file. Branch nodes of the
// registry tree reuse the type with the directory's path and a zero ID.
type DeferredFile struct {
	Path string // slash-separated, relative to the registry root
	ID   FileID
}

func (d DeferredFile) String() string { return d.Path }

// SourceFile is a loaded file pinned into the global coordinate space.
type SourceFile struct {
	Path    string
	ID      FileID
	Base    int // global character offset of the file's first character
	Content string
}

// End returns the global offset one past the file's final character.
func (sf *SourceFile) End() int {
	return sf.Base + utf8.RuneCountInString(sf.Content)
}

// Contains reports whether pos falls inside the file, including the
// closing offset one past the text where the synthetic NEWLINE lives.
func (sf *SourceFile) Contains(pos int) bool {
	return pos >= sf.Base && pos <= sf.End()
}

// SourceMap is the project-wide registry of deferred and loaded files.
type SourceMap struct {
	root     string
	tree     *Tree[DeferredFile]
	loaded   map[FileID]*SourceFile
	order    []FileID // load order, for deterministic position lookups
	nextBase int
}

// NewSourceMap walks root and registers every source file beneath it
// without reading any. The tree mirrors the directory structure: branches
// are directories, leaves are files.
func NewSourceMap(root string) (*SourceMap, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("registry root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry root %s is not a directory", root)
	}
	tree, err := buildRegistryTree(root, filepath.Base(root), "")
	if err != nil {
		return nil, err
	}
	return &SourceMap{
		root:   root,
		tree:   tree,
		loaded: make(map[FileID]*SourceFile),
	}, nil
}

func buildRegistryTree(dir, display, rel string) (*Tree[DeferredFile], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read registry dir %s: %w", dir, err)
	}
	branch := NewBranch(DeferredFile{Path: display})
	for _, e := range entries {
		name := e.Name()
		childRel := path.Join(rel, name)
		if e.IsDir() {
			child, err := buildRegistryTree(filepath.Join(dir, name), childRel, childRel)
			if err != nil {
				return nil, err
			}
			branch.Add(child)
			continue
		}
		if !strings.HasSuffix(name, SourceExt) {
			continue
		}
		branch.Add(NewLeaf(DeferredFile{Path: childRel, ID: FileIDFor(childRel)}))
	}
	return branch, nil
}

// Tree returns the registry tree. Callers may walk it but should treat it
// as read-only.
func (sm *SourceMap) Tree() *Tree[DeferredFile] { return sm.tree }

// Lookup finds a registered file by its registry path without loading it.
func (sm *SourceMap) Lookup(p string) (DeferredFile, bool) {
	id := FileIDFor(p)
	node := sm.tree.Find(func(d DeferredFile) bool { return d.ID == id && d.Path == p })
	if node == nil || !node.IsLeaf() {
		return DeferredFile{}, false
	}
	return node.Value, true
}

// Load reads a registered file on first use and assigns its base offset.
// Subsequent loads return the cached file.
func (sm *SourceMap) Load(p string) (*SourceFile, error) {
	id := FileIDFor(p)
	if sf, ok := sm.loaded[id]; ok {
		return sf, nil
	}
	if _, ok := sm.Lookup(p); !ok {
		return nil, fmt.Errorf("no source file %q in the registry", p)
	}
	data, err := os.ReadFile(filepath.Join(sm.root, filepath.FromSlash(p)))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p, err)
	}
	sf := &SourceFile{Path: p, ID: id, Base: sm.nextBase, Content: string(data)}
	sm.nextBase = sf.End() + 1
	sm.loaded[id] = sf
	sm.order = append(sm.order, id)
	return sf, nil
}

// FileForPos maps a global character offset back to the loaded file that
// contains it.
func (sm *SourceMap) FileForPos(pos int) (*SourceFile, bool) {
	for _, id := range sm.order {
		if sf := sm.loaded[id]; sf.Contains(pos) {
			return sf, true
		}
	}
	return nil, false
}

// Slice returns the text a global span covers. Spans reaching one past a
// file's text (the synthetic closing NEWLINE) are clamped to the text.
func (sm *SourceMap) Slice(span Span) (string, error) {
	sf, ok := sm.FileForPos(span.Start)
	if !ok {
		return "", fmt.Errorf("offset %d is not inside any loaded file", span.Start)
	}
	runes := []rune(sf.Content)
	start := span.Start - sf.Base
	end := span.End - sf.Base
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end]), nil
}

// LexFile loads a registered file and lexes it with spans based at the
// file's global offset.
func (sm *SourceMap) LexFile(p string, opts ...Option) ([]Token, error) {
	sf, err := sm.Load(p)
	if err != nil {
		return nil, err
	}
	tokens, err := NewLexerAt(sf.Content, sf.Base, opts...).Scan()
	if err != nil {
		// The lexer reports global offsets; caret rendering wants a
		// file-relative one.
		var ie *IndentError
		if errors.As(err, &ie) {
			local := &IndentError{Width: ie.Width, Offset: ie.Offset - sf.Base}
			return nil, WrapErrorWithName(local, sf.Path, sf.Content)
		}
		return nil, err
	}
	return tokens, nil
}
