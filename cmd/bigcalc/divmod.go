package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
)

var divmodCmd = &cobra.Command{
	Use:   "divmod DIVIDEND DIVISOR",
	Short: "Print the truncated quotient and remainder of two integers",
	Long: `Print the truncated quotient and remainder of two integers.
The quotient truncates towards zero and the remainder takes the sign of
the dividend, so divmod -17 5 prints -3 and -2.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := bigint.Parse(args[0])
		if err != nil {
			return errors.Wrapf(err, "parsing dividend %q", args[0])
		}
		y, err := bigint.Parse(args[1])
		if err != nil {
			return errors.Wrapf(err, "parsing divisor %q", args[1])
		}
		q, r, err := x.QuoRem(y)
		if err != nil {
			return err
		}
		fmt.Printf("quotient:  %s\nremainder: %s\n", q, r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(divmodCmd)
}
