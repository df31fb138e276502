package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate an integer expression in reverse Polish notation",
	Long: `Evaluate an integer expression in reverse Polish notation.
The expression is a whitespace-separated list of decimal integers and the
operators + - * /. Division truncates towards zero.

Example:
  bigcalc eval "999999999999 999999999999 * 7 /"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := evaluate(args[0])
		if err != nil {
			return errors.Wrap(err, "evaluating expression")
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// evaluate computes the value of an expression in reverse Polish notation.
func evaluate(input string) (bigint.Int, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigint.Int{}, errors.New("empty expression")
	}
	stack := make([]bigint.Int, 0, len(tokens))
	for _, token := range tokens {
		var err error
		switch token {
		case "+", "-", "*", "/":
			stack, err = applyOperator(stack, token)
		default:
			stack, err = pushOperand(stack, token)
		}
		if err != nil {
			return bigint.Int{}, errors.Wrapf(err, "processing token %q", token)
		}
	}
	if len(stack) != 1 {
		return bigint.Int{}, errors.Errorf("%v operands left on the stack, expected exactly one", len(stack))
	}
	return stack[0], nil
}

func applyOperator(stack []bigint.Int, token string) ([]bigint.Int, error) {
	if len(stack) < 2 {
		return nil, errors.New("not enough operands")
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigint.Int
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"operator": token,
		"left":     left.String(),
		"right":    right.String(),
		"result":   result.String(),
	}).Debug("applied operator")
	return append(stack, result), nil
}

func pushOperand(stack []bigint.Int, token string) ([]bigint.Int, error) {
	operand, err := bigint.Parse(token)
	if err != nil {
		return nil, err
	}
	log.WithField("operand", operand.String()).Debug("pushed operand")
	return append(stack, operand), nil
}
