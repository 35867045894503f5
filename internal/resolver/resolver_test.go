package resolver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	return New(Options{})
}

func TestResolve_RelativeSpecifier(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.ts"), "x")
	writeFile(t, filepath.Join(root, "src", "utils", "helpers.ts"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "./utils/helpers",
		FromFile:  filepath.Join(root, "src", "app.ts"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
	assert.Equal(t, filepath.Join(root, "src", "utils", "helpers.ts"), result.Path)
}

func TestResolve_ViteAliasFromConfig(t *testing.T) {
	root := t.TempDir()
	example := filepath.Join(root, "example")
	writeFile(t, filepath.Join(example, "vite.config.js"), `export default {
  resolve: {
    alias: {
      '@': fileURLToPath(new URL('./src', import.meta.url))
    }
  }
}
`)
	writeFile(t, filepath.Join(example, "src", "stores", "user.js"), "x")
	writeFile(t, filepath.Join(example, "src", "App.vue.js"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "@/stores/user.js",
		FromFile:  filepath.Join(example, "src", "App.vue.js"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
	assert.Equal(t, filepath.Join(example, "src", "stores", "user.js"), result.Path)
}

func TestResolve_TraversalAttackRejected(t *testing.T) {
	root := t.TempDir()

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: strings.Repeat("../", 10) + "etc/passwd",
		FromFile:  filepath.Join(root, "src", "app.ts"),
		Root:      root,
	})

	require.Equal(t, StatusRejected, result.Status)
	assert.Equal(t, "traversal-depth", result.Reason)
}

func TestResolve_MissingAliasTargetListsCandidates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.js"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "@/missing/thing.js",
		FromFile:  filepath.Join(root, "src", "app.js"),
		Root:      root,
	})

	require.Equal(t, StatusNotFound, result.Status)
	require.NotEmpty(t, result.Candidates)
	assert.Equal(t, filepath.Join(root, "src", "missing", "thing.js"), result.Candidates[0])
}

func TestResolve_BareSpecifierFallsThrough(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.js"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "lodash",
		FromFile:  filepath.Join(root, "src", "app.js"),
		Root:      root,
	})

	// Library resolution is out of scope: both the file-relative and the
	// root-relative attempt are probed, then reported.
	require.Equal(t, StatusNotFound, result.Status)
	assert.Contains(t, result.Candidates, filepath.Join(root, "src", "lodash.ts"))
	assert.Contains(t, result.Candidates, filepath.Join(root, "lodash.ts"))
}

func TestResolve_BareSpecifierNearCurrentFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.js"), "x")
	writeFile(t, filepath.Join(root, "src", "helpers.js"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "helpers",
		FromFile:  filepath.Join(root, "src", "app.js"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
	assert.Equal(t, filepath.Join(root, "src", "helpers.js"), result.Path)
}

func TestResolve_SensitiveFileRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "secrets", ".env"), "TOKEN=x")
	writeFile(t, filepath.Join(root, "src", "app.js"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "./secrets/.env",
		FromFile:  filepath.Join(root, "src", "app.js"),
		Root:      root,
	})

	require.Equal(t, StatusRejected, result.Status)
	assert.Equal(t, "sensitive-directory", result.Reason)
}

func TestResolve_RootAbsoluteIsWorkspaceRelative(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.ts"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "/src/main",
		FromFile:  filepath.Join(root, "src", "app.ts"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
	assert.Equal(t, filepath.Join(root, "src", "main.ts"), result.Path)
}

func TestResolve_NearestConfigWinsOverRootConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), `{
		"compilerOptions": { "paths": { "@/*": ["./src/*"] } }
	}`)
	writeFile(t, filepath.Join(root, "packages", "admin", "tsconfig.json"), `{
		"compilerOptions": { "paths": { "@/*": ["./app/*"] } }
	}`)
	writeFile(t, filepath.Join(root, "src", "store.ts"), "root variant")
	writeFile(t, filepath.Join(root, "packages", "admin", "app", "store.ts"), "admin variant")
	writeFile(t, filepath.Join(root, "packages", "admin", "app", "main.ts"), "x")

	result := testResolver().Resolve(context.Background(), Request{
		Specifier: "@/store",
		FromFile:  filepath.Join(root, "packages", "admin", "app", "main.ts"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
	assert.Equal(t, filepath.Join(root, "packages", "admin", "app", "store.ts"), result.Path)
}

func TestResolve_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "utils.ts"), "x")
	writeFile(t, filepath.Join(root, "src", "app.ts"), "x")

	req := Request{
		Specifier: "./utils",
		FromFile:  filepath.Join(root, "src", "app.ts"),
		Root:      root,
	}

	res := testResolver()
	first := res.Resolve(context.Background(), req)
	second := res.Resolve(context.Background(), req)
	assert.Equal(t, first, second)
}

func TestResolve_FoundPathsStayInsideWorkspace(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.ts"), "x")
	writeFile(t, filepath.Join(root, "src", "b.ts"), "x")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), "x")

	res := testResolver()
	for _, spec := range []string{"./b", "~/src/a", "@/a", "/src/b"} {
		result := res.Resolve(context.Background(), Request{
			Specifier: spec,
			FromFile:  filepath.Join(root, "src", "a.ts"),
			Root:      root,
		})
		if result.Status != StatusFound {
			continue
		}
		inside := strings.HasPrefix(result.Path, root+string(filepath.Separator))
		inDeps := strings.Contains(result.Path, DefaultDependencyDir)
		assert.True(t, inside || inDeps, "escaped workspace: %s -> %s", spec, result.Path)
	}
}

func TestResolve_CustomDependencyDir(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "bower_components", "pkg", "index.js"), "x")
	writeFile(t, filepath.Join(root, "src", "app.js"), "x")

	res := New(Options{DependencyDir: "bower_components"})
	result := res.Resolve(context.Background(), Request{
		Specifier: filepath.Join(outside, "bower_components", "pkg", "index.js"),
		FromFile:  filepath.Join(root, "src", "app.js"),
		Root:      root,
	})

	require.Equal(t, StatusFound, result.Status)
}
