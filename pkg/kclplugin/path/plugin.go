// Package pathplugin exposes [pathparse] as the KCL plugin "path".
//
//	import kcl_plugin.path
//
//	parent = path.dirname("/srv/app/config.yaml")
//	rel = path.relative_to("/srv/app", "/srv/shared/lib")
package pathplugin

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/kclpath/pkg/kclplugin/plugins"
	"github.com/macropower/kclpath/pkg/pathparse"
)

// Name is the name KCL code imports the plugin by (kcl_plugin.path).
const Name = "path"

type InvalidArgumentError struct {
	Err error
}

func NewInvalidArgumentError(err error) *InvalidArgumentError {
	return &InvalidArgumentError{Err: err}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %v", e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// Register registers the path [Plugin] with the KCL plugin system.
func Register() {
	plugin.RegisterPlugin(Plugin)
}

// Plugin is the KCL plugin that exposes [pathparse] functions.
var Plugin = plugin.Plugin{
	Name: Name,
	MethodMap: map[string]plugin.MethodSpec{
		"split": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "[str]",
			},
			Body: unary("split", func(path string) (any, error) {
				prefix, hierarchy := pathparse.Split(path)

				return []string{prefix, hierarchy}, nil
			}),
		},
		"prefix": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "str",
			},
			Body: unary("prefix", func(path string) (any, error) {
				return pathparse.Prefix(path), nil
			}),
		},
		"hierarchy": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "str",
			},
			Body: unary("hierarchy", func(path string) (any, error) {
				return pathparse.Hierarchy(path), nil
			}),
		},
		"is_absolute": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "bool",
			},
			Body: unary("is_absolute", func(path string) (any, error) {
				return pathparse.IsAbsolute(path), nil
			}),
		},
		"normalize": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "str",
			},
			Body: unary("normalize", func(path string) (any, error) {
				return pathparse.Normalize(path), nil
			}),
		},
		"dirname": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				ResultType: "str",
			},
			Body: unary("dirname", func(path string) (any, error) {
				return pathparse.Dirname(path)
			}),
		},
		"append": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str", "str"},
				ResultType: "str",
			},
			Body: binary("append", pathparse.Append),
		},
		"relative_to": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str", "str"},
				ResultType: "str",
			},
			Body: binary("relative_to", pathparse.RelativeTo),
		},
		"join": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str", "[str]"},
				ResultType: "str",
			},
			Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
				logger := methodLogger("join")
				logger.Debug("invoking kcl plugin")

				safeArgs := plugins.SafeMethodArgs{Args: args}

				var merr error

				base, err := safeArgs.StrArg(0)
				if err != nil {
					merr = multierror.Append(merr, err)
				}

				elems, err := safeArgs.ListStrArg(1)
				if err != nil {
					merr = multierror.Append(merr, err)
				}

				if merr != nil {
					return nil, NewInvalidArgumentError(merr)
				}

				result, err := pathparse.Join(base, elems...)
				if err != nil {
					return nil, fmt.Errorf("path.join: %w", err)
				}

				logger.Debug("returning results")

				return &plugin.MethodResult{V: result}, nil
			},
		},
	},
}

type methodBody = func(args *plugin.MethodArgs) (*plugin.MethodResult, error)

func methodLogger(method string) *slog.Logger {
	return slog.With(
		slog.String("plugin", Name),
		slog.String("method", method),
	)
}

func unary(method string, fn func(path string) (any, error)) methodBody {
	return func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
		logger := methodLogger(method)
		logger.Debug("invoking kcl plugin")

		safeArgs := plugins.SafeMethodArgs{Args: args}

		pathStr, err := safeArgs.StrArg(0)
		if err != nil {
			return nil, NewInvalidArgumentError(err)
		}

		result, err := fn(pathStr)
		if err != nil {
			return nil, fmt.Errorf("path.%s: %w", method, err)
		}

		logger.Debug("returning results", slog.Any("result", result))

		return &plugin.MethodResult{V: result}, nil
	}
}

func binary(method string, fn func(a, b string) (string, error)) methodBody {
	return func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
		logger := methodLogger(method)
		logger.Debug("invoking kcl plugin")

		safeArgs := plugins.SafeMethodArgs{Args: args}

		var merr error

		a, err := safeArgs.StrArg(0)
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		b, err := safeArgs.StrArg(1)
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return nil, NewInvalidArgumentError(merr)
		}

		result, err := fn(a, b)
		if err != nil {
			return nil, fmt.Errorf("path.%s: %w", method, err)
		}

		logger.Debug("returning results", slog.String("result", result))

		return &plugin.MethodResult{V: result}, nil
	}
}
