package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	kclcmd "kcl-lang.io/cli/cmd/kcl/commands"

	"github.com/macropower/kclpath/pkg/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// Global lock for KCL command creation.
var mu sync.Mutex

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	mu.Lock()
	defer mu.Unlock()

	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go", slog.String("command", cc.Name()))

		return nil
	}

	cmd.AddCommand(kclcmd.NewRunCmd())
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewSplitCmd())
	cmd.AddCommand(NewNormalizeCmd())
	cmd.AddCommand(NewIsAbsoluteCmd())
	cmd.AddCommand(NewAppendCmd())
	cmd.AddCommand(NewDirnameCmd())
	cmd.AddCommand(NewRelativeToCmd())

	return cmd
}
