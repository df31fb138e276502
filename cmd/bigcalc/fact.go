package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
)

var factCmd = &cobra.Command{
	Use:   "fact N",
	Short: "Compute the factorial of a non-negative integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", args[0])
		}
		if n < 0 {
			return errors.Errorf("factorial of a negative integer %v is undefined", n)
		}
		fmt.Println(factorial(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factCmd)
}

// factorial returns n! as an arbitrary-precision integer.
func factorial(n int64) bigint.Int {
	f := bigint.One
	for i := int64(2); i <= n; i++ {
		f = f.Mul(bigint.New(i))
	}
	return f
}
