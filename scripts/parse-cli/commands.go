package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/catalog"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errNoAmount = errors.New("no amount found")

// cli holds the state shared by all commands of one invocation.
type cli struct {
	cfgFile string
	debug   bool

	log    zerolog.Logger
	parser *parser.Parser
}

func newRootCmd() *cobra.Command {
	c := &cli{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "parse-cli",
		Short: "Parse Indonesian money messages into transactions",
		Long: `parse-cli runs the transaction parser on text given as arguments.

Example:
  parse-cli parse "Habis beli kopi 25rb"
  parse-cli classify "terima gaji bulan ini"
  parse-cli --config tables.yaml categories --type income`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.log = logger.New(c.debug)
			if !c.debug {
				c.log = c.log.Level(zerolog.WarnLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "keyword table file (JSON or YAML, default built-in tables)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		c.parseCmd(),
		c.amountCmd(),
		c.classifyCmd(),
		c.askCmd(),
		c.categoriesCmd(),
		checkConfigCmd(),
		dumpDefaultsCmd(),
	)
	return root
}

// loadParser builds the parser from --config on first use. Unusable config
// files fall back to the built-in tables with a warning.
func (c *cli) loadParser() (*parser.Parser, error) {
	if c.parser != nil {
		return c.parser, nil
	}
	p, err := parser.New(catalog.Load(c.cfgFile, c.log))
	if err != nil {
		return nil, err
	}
	c.parser = p
	return p, nil
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a message into a transaction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadParser()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			tx, ok := p.Parse(text)
			if !ok {
				return errNoAmount
			}
			c.log.Debug().Str("text", text).Int64("amount", tx.Amount).Msg("Parsed")
			return writeJSON(cmd.OutOrStdout(), tx)
		},
	}
}

func (c *cli) amountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amount <text...>",
		Short: "Extract the amount from a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadParser()
			if err != nil {
				return err
			}
			amount, ok := p.ExtractAmount(strings.Join(args, " "))
			if !ok {
				return errNoAmount
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount)
			return nil
		},
	}
}

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text...>",
		Short: "Show direction and category with the keywords that decided them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadParser()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p.Explain(strings.Join(args, " ")))
		},
	}
}

func (c *cli) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text...>",
		Short: "Check whether a message is a question about finances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadParser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if indicator, ok := p.QueryIndicator(strings.Join(args, " ")); ok {
				fmt.Fprintf(out, "question (matched %q)\n", indicator)
				return nil
			}
			fmt.Fprintln(out, "not a question")
			return nil
		},
	}
}

func (c *cli) categoriesCmd() *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadParser()
			if err != nil {
				return err
			}

			cats := p.Taxonomy().All()
			if typ != "" {
				dir, err := parser.ParseDirection(typ)
				if err != nil {
					return err
				}
				cats = p.Taxonomy().ForDirection(dir)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE")
			for _, cat := range cats {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Direction)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "only categories usable for income or expense")
	return cmd
}

func checkConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config <file>",
		Short: "Validate a keyword table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%s is invalid:\n%w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d keyword entries\n",
				args[0], len(t.Categories), len(t.CategoryKeywords))
			return nil
		},
	}
}

func dumpDefaultsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump-defaults",
		Short: "Print the built-in tables, a starting point for a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Format(strings.ToLower(format))
			if f != catalog.JSON && f != catalog.YAML {
				return fmt.Errorf("unknown format %q", format)
			}
			return catalog.Encode(cmd.OutOrStdout(), parser.DefaultTables(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
