package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/theflywheel/chainmap"
)

var cmdStress = &cobra.Command{
	Use:   "stress [flags]",
	Short: "Fill, verify and drain a table while reporting rates",
	Long: `
The "stress" command inserts a number of sequential keys, verifies every
one of them, then deletes them all again. Filling walks the table up
through its capacity doublings; draining walks it back down to the
minimum capacity.

EXIT STATUS
===========

Exit status is 0 if the command was successful.
Exit status is 1 if the options were invalid or verification failed.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStress(stressOptions)
	},
}

// StressOptions bundles all options for the stress command.
type StressOptions struct {
	Keys int
}

var stressOptions StressOptions

func init() {
	cmdRoot.AddCommand(cmdStress)

	f := cmdStress.Flags()
	f.IntVar(&stressOptions.Keys, "keys", env.Int("CHAINMAP_STRESS_KEYS", 100_000),
		"number of keys to insert (default: $CHAINMAP_STRESS_KEYS or 100000)")
}

// RunStress performs the fill/verify/drain cycle and logs throughput for
// each phase.
func RunStress(opts StressOptions) error {
	if opts.Keys <= 0 {
		return errors.Errorf("invalid key count %d, must be positive", opts.Keys)
	}

	m := chainmap.New[string, int]()

	logrus.Infof("inserting %d keys", opts.Keys)
	start := time.Now()
	for i := 0; i < opts.Keys; i++ {
		m.Set(fmt.Sprintf("k%d", i), i)
	}
	elapsed := time.Since(start)
	logrus.Infof("fill done in %v (%.0f keys/sec), len=%d",
		elapsed, float64(opts.Keys)/elapsed.Seconds(), m.Len())

	if m.Len() != opts.Keys {
		return errors.Errorf("table holds %d entries after inserting %d distinct keys", m.Len(), opts.Keys)
	}

	logrus.Infof("verifying %d keys", opts.Keys)
	start = time.Now()
	for i := 0; i < opts.Keys; i++ {
		v, ok := m.Get(fmt.Sprintf("k%d", i))
		if !ok {
			return errors.Errorf("key k%d missing during verification", i)
		}
		if v != i {
			return errors.Errorf("key k%d holds %d, want %d", i, v, i)
		}
	}
	elapsed = time.Since(start)
	logrus.Infof("verify done in %v (%.0f lookups/sec)",
		elapsed, float64(opts.Keys)/elapsed.Seconds())

	logrus.Infof("draining %d keys", opts.Keys)
	start = time.Now()
	for i := 0; i < opts.Keys; i++ {
		if !m.Delete(fmt.Sprintf("k%d", i)) {
			return errors.Errorf("key k%d missing during drain", i)
		}
	}
	elapsed = time.Since(start)
	logrus.Infof("drain done in %v (%.0f deletes/sec), len=%d",
		elapsed, float64(opts.Keys)/elapsed.Seconds(), m.Len())

	// The drained table must still accept inserts at its minimum capacity.
	m.Set("survivor", 1)
	if _, ok := m.Get("survivor"); !ok {
		return errors.New("drained table rejected a fresh insert")
	}
	logrus.Info("stress cycle completed")

	return nil
}
