// Command day02 prints the answers for day 2.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/day02"
)

func main() {
	logger, err := aoc.NewLogger(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if _, err := aoc.Run(logger, os.Stdout, day02.Day); err != nil {
		logger.Fatal("solving puzzle", zap.Error(err))
	}
}
