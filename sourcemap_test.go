package silver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeProject materializes files under a fresh temp root and returns it.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func Test_SourceMap_RegistersWithoutReading(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.sil":     "x = 1\n",
		"sub/b.sil": "y\n",
		"notes.txt": "not a source file",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	if _, ok := sm.Lookup("a.sil"); !ok {
		t.Fatal("a.sil not registered")
	}
	if _, ok := sm.Lookup("sub/b.sil"); !ok {
		t.Fatal("sub/b.sil not registered")
	}
	if _, ok := sm.Lookup("notes.txt"); ok {
		t.Fatal("non-source file must not be registered")
	}
	// Nothing is loaded yet, so no position maps to a file.
	if _, ok := sm.FileForPos(0); ok {
		t.Fatal("FileForPos must fail before any Load")
	}
}

func Test_SourceMap_FileIDUsesFullPath(t *testing.T) {
	if FileIDFor("a/main.sil") == FileIDFor("b/main.sil") {
		t.Fatal("sibling files in different directories must get distinct IDs")
	}
}

func Test_SourceMap_LoadAssignsBases(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.sil":     "x = 1\n", // 6 runes, so the next base is 7
		"sub/b.sil": "y\n",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	a, err := sm.Load("a.sil")
	if err != nil {
		t.Fatalf("Load a.sil: %v", err)
	}
	if a.Base != 0 || a.End() != 6 {
		t.Fatalf("a.sil: base %d end %d, want 0 and 6", a.Base, a.End())
	}
	b, err := sm.Load("sub/b.sil")
	if err != nil {
		t.Fatalf("Load sub/b.sil: %v", err)
	}
	if b.Base != 7 {
		t.Fatalf("sub/b.sil: base %d, want 7", b.Base)
	}
	again, err := sm.Load("a.sil")
	if err != nil {
		t.Fatalf("reload a.sil: %v", err)
	}
	if again != a {
		t.Fatal("second Load must return the cached file")
	}
}

func Test_SourceMap_LoadUnregistered(t *testing.T) {
	root := writeProject(t, map[string]string{"a.sil": "x\n"})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	if _, err := sm.Load("missing.sil"); err == nil {
		t.Fatal("loading an unregistered path must fail")
	}
}

func Test_SourceMap_LexFileSpansStartAtBase(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.sil":     "x = 1\n",
		"sub/b.sil": "y\n",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	if _, err := sm.Load("a.sil"); err != nil {
		t.Fatalf("Load a.sil: %v", err)
	}
	tokens, err := sm.LexFile("sub/b.sil")
	if err != nil {
		t.Fatalf("LexFile: %v", err)
	}
	if tokens[0].Type != IDENT || tokens[0].Text != "y" {
		t.Fatalf("first token: %v %q", tokens[0].Type, tokens[0].Text)
	}
	if tokens[0].Span != NewSpan(7, 8) {
		t.Fatalf("first token span: %v, want [7..8)", tokens[0].Span)
	}
}

func Test_SourceMap_FileForPosAndSlice(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.sil":     "x = 1\n",
		"sub/b.sil": "y\n",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	if _, err := sm.Load("a.sil"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := sm.Load("sub/b.sil"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	sf, ok := sm.FileForPos(7)
	if !ok || sf.Path != "sub/b.sil" {
		t.Fatalf("pos 7: got %v, %v", sf, ok)
	}
	sf, ok = sm.FileForPos(3)
	if !ok || sf.Path != "a.sil" {
		t.Fatalf("pos 3: got %v, %v", sf, ok)
	}
	if _, ok := sm.FileForPos(100); ok {
		t.Fatal("pos 100 maps to no file")
	}

	text, err := sm.Slice(NewSpan(0, 1))
	if err != nil || text != "x" {
		t.Fatalf("Slice [0..1): %q, %v", text, err)
	}
	text, err = sm.Slice(NewSpan(7, 8))
	if err != nil || text != "y" {
		t.Fatalf("Slice [7..8): %q, %v", text, err)
	}
}

func Test_SourceMap_LexFileRendersIndentError(t *testing.T) {
	root := writeProject(t, map[string]string{
		"bad.sil": "a\n  b\n c\n",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	_, err = sm.LexFile("bad.sil")
	if err == nil {
		t.Fatal("want an indentation error")
	}
	msg := err.Error()
	mustContain(t, msg, "LEXICAL ERROR in bad.sil at 3:1")
	mustContain(t, msg, "inconsistent dedent")
	mustContain(t, msg, "^")
}

func Test_SourceMap_TreeRendering(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.sil":     "x\n",
		"sub/b.sil": "y\n",
	})
	sm, err := NewSourceMap(root)
	if err != nil {
		t.Fatalf("NewSourceMap: %v", err)
	}
	out := sm.Tree().String()
	for _, want := range []string{"|-a.sil", "|-sub\n", "|-sub/b.sil"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in tree:\n%s", want, out)
		}
	}
}
