package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mgnsk/lqueue/cmd/qtest/console"
	"github.com/mgnsk/lqueue/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qtest",
		Short: "Interactive test harness for lqueue",
		Long: `Interactive test harness for lqueue.

Commands are read from a script file, standard input or an interactive prompt.
Run help at the prompt for the list of commands.

Environment variables:
  QTEST_FAIL=0
  QTEST_LENGTH=1024
  QTEST_LOG_LEVEL=info`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "read commands from file")
	flags.String("config", "", "config file")
	flags.Int("fail", 0, "percent of allocations to refuse")
	flags.Int("length", 1024, "size of the buffer removed values are copied into")
	flags.Bool("descend", false, "sort and merge in descending order")
	flags.Bool("numeric", false, "compare values as integers when possible")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Bool("echo", true, "echo commands read from a script")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored output")

	return cmd
}

func initConfig(flags *pflag.FlagSet) error {
	if err := viper.BindPFlags(flags); err != nil {
		return err
	}

	viper.SetEnvPrefix("QTEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

func run(stdout, stderr io.Writer) error {
	level, err := logger.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	colored := !viper.GetBool("no-color")
	if f, ok := stderr.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		colored = false
	}

	log := logger.NewWithLevel("", stderr, level, colored)

	cfg := console.DefaultConfig()
	cfg.FailPercent = viper.GetInt("fail")
	cfg.Length = viper.GetInt("length")
	cfg.Descend = viper.GetBool("descend")
	cfg.Numeric = viper.GetBool("numeric")
	cfg.Echo = viper.GetBool("echo")
	cfg.Seed = viper.GetInt64("seed")
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	c := console.New(cfg, log, stdout)

	switch file := viper.GetString("file"); {
	case file != "":
		var f *os.File
		if f, err = os.Open(file); err != nil {
			return err
		}
		defer f.Close()

		err = c.RunScript(f)
	case isatty.IsTerminal(os.Stdin.Fd()):
		err = c.RunInteractive()
	default:
		err = c.RunScript(os.Stdin)
	}

	if closeErr := c.Close(); closeErr != nil {
		log.Errorf("%s", closeErr)
		if err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return err
	}

	if n := c.Errors(); n > 0 {
		return fmt.Errorf("%d commands failed", n)
	}

	log.Infof("all commands succeeded")

	return nil
}
