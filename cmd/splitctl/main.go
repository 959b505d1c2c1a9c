package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/replay"
	"github.com/mmynk/billsplit/pkg/logging"
)

var (
	scriptPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitctl",
		Short: "Replay bill split sessions offline",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, false)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&scriptPath, "file", "f", "session.json", "session script (- for stdin)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(replayCmd())
	rootCmd.AddCommand(infoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadResult(in io.Reader) (*replay.Result, error) {
	if scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	script, err := replay.Load(in)
	if err != nil {
		return nil, err
	}
	return replay.Run(script)
}

func replayCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply the scripted intents and print what everyone owes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadResult(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if verbose {
				for i, step := range res.Steps {
					fmt.Fprintf(out, "%3d  %-8s %-12s %s\n", i+1, opName(step.Intent), step.Intent.Item, step.Outcome)
				}
				fmt.Fprintln(out)
			}

			splits, err := res.Splits()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "PERSON\tSUBTOTAL\tBASE\tTAX\tTOTAL\t")
			for _, s := range splits {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
					s.Name, s.Subtotal.StringFixed(2), s.Base.StringFixed(2), s.Tax.StringFixed(2), s.Total.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the outcome of every intent")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print who holds each item after the scripted intents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadResult(cmd.InOrStdin())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tHOLDERS\tSHARED\tREMAINING")
			for _, item := range res.Catalog.Items() {
				info := res.State.Info(item.ID)
				holders := make([]string, 0, len(info.People))
				for _, p := range info.People {
					if n := res.State.Claimed(item.ID, p); n > 0 {
						p = fmt.Sprintf("%s×%d", p, n)
					}
					holders = append(holders, p)
				}
				remaining := "-"
				if item.IsMultiUnit() {
					remaining = fmt.Sprint(res.State.Remaining(item))
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", item.Name, strings.Join(holders, ","), info.IsShared, remaining)
			}
			return w.Flush()
		},
	}
}

func opName(in replay.Intent) string {
	if in.Op == "" {
		return replay.OpDrop
	}
	return in.Op
}
