package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theflywheel/chainmap"
)

var cmdDemo = &cobra.Command{
	Use:   "demo KEY=VALUE [KEY=VALUE] ...",
	Short: "Build a table from key=value pairs and walk through its operations",
	Long: `
The "demo" command inserts the given key=value pairs into a fresh table,
then demonstrates lookup, update, deletion and iteration on it.

EXIT STATUS
===========

Exit status is 0 if the command was successful.
Exit status is 1 if an argument could not be parsed.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunDemo(args)
	},
}

func init() {
	cmdRoot.AddCommand(cmdDemo)
}

// RunDemo fills a table from key=value arguments and exercises every
// public operation on it.
func RunDemo(args []string) error {
	if len(args) == 0 {
		args = []string{"key_1=value_1", "key_2=value_2", "key_3=value_3"}
		logrus.Infof("no arguments given, using %d sample pairs", len(args))
	}

	m := chainmap.New[string, string]()

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return errors.Errorf("argument %q is not of the form KEY=VALUE", arg)
		}
		m.Set(key, value)
	}
	logrus.Infof("inserted %d arguments, table holds %d entries", len(args), m.Len())

	fmt.Println(m)

	// Look up every key that went in.
	for _, arg := range args {
		key, _, _ := strings.Cut(arg, "=")
		if v, ok := m.Get(key); ok {
			fmt.Printf("%s => %s\n", key, v)
		}
	}

	// Delete the first key and show the table again.
	firstKey, _, _ := strings.Cut(args[0], "=")
	if m.Delete(firstKey) {
		logrus.Infof("deleted %q, table holds %d entries", firstKey, m.Len())
	}

	fmt.Println("remaining entries:")
	for k, v := range m.All() {
		fmt.Printf("  %s: %s\n", k, v)
	}

	return nil
}
