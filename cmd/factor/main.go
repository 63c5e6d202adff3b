// Command factor prints the prime factorization of each of its integer
// arguments in the style of factor(1), or of each whitespace-separated
// integer on standard input when no arguments are given.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/primekit/factorint/factor"
)

var errInvalidInput = errors.New("invalid input")

func main() {
	if err := newCommand(os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:           "factor [number ...]",
		Short:         "Print the prime factors of 64-bit unsigned integers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, stdin, args, jobs)
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", 1, "number of integers to factor concurrently")

	return cmd
}

func run(cmd *cobra.Command, stdin io.Reader, args []string, jobs int) error {
	tokens := args
	if len(tokens) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			tokens = append(tokens, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	type input struct {
		n   uint64
		ok  bool
		out string
	}

	inputs := make([]input, len(tokens))
	failed := false
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "factor: %q is not a valid positive integer\n", tok)
			failed = true
			continue
		}
		inputs[i] = input{n: n, ok: true}
	}

	// Each factorization is independent, so the batch fans out over a
	// bounded group; results are collected in place and printed in
	// input order afterwards.
	if jobs < 1 {
		jobs = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i := range inputs {
		if !inputs[i].ok {
			continue
		}
		i := i
		g.Go(func() error {
			inputs[i].out = fmt.Sprintf("%d:%s\n", inputs[i].n, factor.Factor(inputs[i].n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for i := range inputs {
		if inputs[i].ok {
			if _, err := w.WriteString(inputs[i].out); err != nil {
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed {
		return errInvalidInput
	}
	return nil
}
