package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/kclpath/pkg/pathparse"
)

type pathArgs struct {
	output string
	stdin  bool
}

func (a *pathArgs) addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.output, "output", "o", OutputText, "Output format (text, json, yaml)")
}

func (a *pathArgs) addStdinFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.stdin, "stdin", false, "Read additional paths from stdin, one per line")
}

// NewSplitCmd returns the split command.
func NewSplitCmd() *cobra.Command {
	return newEachCmd(&cobra.Command{
		Use:   "split [PATH]...",
		Short: "Print the prefix and hierarchy of each path",
		Example: `  kclpath split 'C:\foo\bar' vfs://foo /foo
  # C:/	foo/bar
  # vfs://	foo
  # /	foo`,
	}, func(path string) (any, error) {
		return pathparse.Parse(path), nil
	})
}

// NewNormalizeCmd returns the normalize command.
func NewNormalizeCmd() *cobra.Command {
	return newEachCmd(&cobra.Command{
		Use:     "normalize [PATH]...",
		Short:   "Resolve '.' and '..' segments and collapse separators",
		Example: `  kclpath normalize 'vfs://foo//bar/../baz'`,
	}, func(path string) (any, error) {
		return pathparse.Normalize(path), nil
	})
}

// NewIsAbsoluteCmd returns the is-absolute command.
func NewIsAbsoluteCmd() *cobra.Command {
	return newEachCmd(&cobra.Command{
		Use:   "is-absolute [PATH]...",
		Short: "Report whether each path has a prefix",
	}, func(path string) (any, error) {
		return pathparse.IsAbsolute(path), nil
	})
}

// NewDirnameCmd returns the dirname command.
func NewDirnameCmd() *cobra.Command {
	return newEachCmd(&cobra.Command{
		Use:     "dirname [PATH]...",
		Short:   "Print the parent directory of each absolute path",
		Example: `  kclpath dirname /foo/bar.tmp`,
	}, func(path string) (any, error) {
		return pathparse.Dirname(path)
	})
}

// NewAppendCmd returns the append command.
func NewAppendCmd() *cobra.Command {
	args := &pathArgs{}

	cmd := &cobra.Command{
		Use:   "append BASE SUFFIX...",
		Short: "Append relative suffixes to an absolute base path",
		Example: `  kclpath append 'C:\foo' ../bar
  kclpath append /srv app ../shared lib`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			if err := validateOutput(args.output); err != nil {
				return err
			}

			result, err := pathparse.Join(posArgs[0], posArgs[1:]...)
			if err != nil {
				return fmt.Errorf("append: %w", err)
			}

			return writeRecords(cc.OutOrStdout(), args.output, []Record{{Args: posArgs, Result: result}})
		},
	}

	args.addOutputFlag(cmd)

	return cmd
}

// NewRelativeToCmd returns the relative-to command.
func NewRelativeToCmd() *cobra.Command {
	args := &pathArgs{}

	cmd := &cobra.Command{
		Use:   "relative-to SOURCE TARGET",
		Short: "Print the path of TARGET relative to SOURCE",
		Long: `Print the path of TARGET relative to SOURCE.

Both paths must be absolute. If they have different prefixes, or share no
leading segment, TARGET is printed unchanged.`,
		Example: `  kclpath relative-to /foo/bar /foo/baz
  # ../baz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			if err := validateOutput(args.output); err != nil {
				return err
			}

			result, err := pathparse.RelativeTo(posArgs[0], posArgs[1])
			if err != nil {
				return fmt.Errorf("relative-to: %w", err)
			}

			return writeRecords(cc.OutOrStdout(), args.output, []Record{{Args: posArgs, Result: result}})
		},
	}

	args.addOutputFlag(cmd)

	return cmd
}

// newEachCmd completes cmd as a command that applies fn to every path given
// as an argument or read from stdin.
func newEachCmd(cmd *cobra.Command, fn func(path string) (any, error)) *cobra.Command {
	args := &pathArgs{}

	cmd.RunE = func(cc *cobra.Command, posArgs []string) error {
		if err := validateOutput(args.output); err != nil {
			return err
		}

		paths, err := readPaths(cc.InOrStdin(), posArgs, args.stdin)
		if err != nil {
			return err
		}

		logger := slog.With(slog.String("command", cc.Name()))
		logger.Debug("processing paths", slog.Int("count", len(paths)))

		records := make([]Record, 0, len(paths))
		for _, p := range paths {
			result, err := fn(p)
			if err != nil {
				return fmt.Errorf("%s: %w", cc.Name(), err)
			}

			records = append(records, Record{Args: []string{p}, Result: result})
		}

		return writeRecords(cc.OutOrStdout(), args.output, records)
	}

	args.addOutputFlag(cmd)
	args.addStdinFlag(cmd)

	return cmd
}

// readPaths returns args followed by the lines of in. Lines are read when
// fromStdin is set, or when no args were given and in is not a terminal.
func readPaths(in io.Reader, args []string, fromStdin bool) ([]string, error) {
	paths := append([]string{}, args...)

	if !fromStdin && (len(args) > 0 || isTerminal(in)) {
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: at least one path is required", ErrInvalidArgument)
		}

		return paths, nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: at least one path is required", ErrInvalidArgument)
	}

	return paths, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
