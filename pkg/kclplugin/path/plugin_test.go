package pathplugin_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kcl-lang.io/kcl-go/pkg/native"
	"kcl-lang.io/kcl-go/pkg/plugin"
	"kcl-lang.io/kcl-go/pkg/spec/gpyrpc"

	pathplugin "github.com/macropower/kclpath/pkg/kclplugin/path"
	"github.com/macropower/kclpath/pkg/pathparse"
)

func TestPluginPath(t *testing.T) {
	t.Parallel()

	pathplugin.Register()

	tcs := map[string]struct {
		kclCode string
		want    string
	}{
		"split": {
			kclCode: `path.split("C:\\foo")`,
			want:    `["C:/", "foo"]`,
		},
		"prefix": {
			kclCode: `path.prefix("vfs123://foo")`,
			want:    `"vfs123://"`,
		},
		"hierarchy": {
			kclCode: `path.hierarchy("/foo/bar/")`,
			want:    `"foo/bar"`,
		},
		"is_absolute": {
			kclCode: `path.is_absolute("foo/bar")`,
			want:    `false`,
		},
		"normalize": {
			kclCode: `path.normalize("vfs://../foo//bar")`,
			want:    `"vfs://foo/bar"`,
		},
		"append": {
			kclCode: `path.append("C:\\foo", "../bar")`,
			want:    `"C:/bar"`,
		},
		"join": {
			kclCode: `path.join("/srv", ["app", "../shared", "lib"])`,
			want:    `"/srv/shared/lib"`,
		},
		"dirname": {
			kclCode: `path.dirname("/foo/bar.tmp")`,
			want:    `"/foo"`,
		},
		"relative_to": {
			kclCode: `path.relative_to("/foo/bar", "/foo/baz")`,
			want:    `"../baz"`,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := native.NewNativeServiceClient()
			result, err := client.ExecProgram(&gpyrpc.ExecProgramArgs{
				KFilenameList: []string{"main.k"},
				KCodeList: []string{
					"import kcl_plugin.path\n" +
						"result = " + tc.kclCode,
				},
				Args: []*gpyrpc.Argument{},
			})
			require.NoError(t, err)
			require.Empty(t, result.GetErrMessage(), result.GetLogMessage())

			want := fmt.Sprintf(`{"result": %s}`, tc.want)

			got := result.GetJsonResult()
			assert.JSONEq(t, want, got)
		})
	}
}

func TestPluginMethodErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		method  string
		args    []any
	}{
		"append relative base": {
			method:  "append",
			args:    []any{"foo", "bar"},
			wantErr: pathparse.ErrRequiresAbsoluteBase,
		},
		"append absolute suffix": {
			method:  "append",
			args:    []any{"/foo", "/bar"},
			wantErr: pathparse.ErrRejectsAbsoluteSuffix,
		},
		"dirname relative": {
			method:  "dirname",
			args:    []any{"foo"},
			wantErr: pathparse.ErrRequiresAbsoluteBase,
		},
		"relative_to relative target": {
			method:  "relative_to",
			args:    []any{"/foo/bar", "foo/bar"},
			wantErr: pathparse.ErrRequiresAbsoluteBase,
		},
		"join absolute element": {
			method:  "join",
			args:    []any{"/foo", []any{"bar", "/baz"}},
			wantErr: pathparse.ErrRejectsAbsoluteSuffix,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := call(t, tc.method, tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, result)
		})
	}

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		for method, args := range map[string][]any{
			"normalize":   {42},
			"split":       {},
			"append":      {"/foo"},
			"relative_to": {1, 2},
			"join":        {"/foo", "bar"},
		} {
			_, err := call(t, method, args...)

			var argErr *pathplugin.InvalidArgumentError
			require.ErrorAs(t, err, &argErr, method)
			assert.Contains(t, err.Error(), "invalid argument")
		}
	})

	t.Run("results", func(t *testing.T) {
		t.Parallel()

		result, err := call(t, "split", `vfs:\\foo\bar\`)
		require.NoError(t, err)
		assert.Equal(t, []string{"vfs://", "foo/bar"}, result.V)

		result, err = call(t, "is_absolute", "/")
		require.NoError(t, err)
		assert.Equal(t, true, result.V)

		result, err = call(t, "relative_to", `C:\foo\bar`, `D:\foo\bar`)
		require.NoError(t, err)
		assert.Equal(t, `D:\foo\bar`, result.V)
	})
}

func call(t *testing.T, method string, args ...any) (*plugin.MethodResult, error) {
	t.Helper()

	spec, ok := pathplugin.Plugin.MethodMap[method]
	require.True(t, ok, "method %s not registered", method)

	return spec.Body(&plugin.MethodArgs{Args: args, KwArgs: map[string]any{}})
}
