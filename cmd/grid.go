package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/percolation-sim/sim"
)

var gridClientSize int // Grid dimension; 0 = read from the first input token

// gridCmd drives a single grid from a stream of commands on stdin
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Apply open/isOpen/isFull commands from stdin to one grid",
	Long: `Reads whitespace-separated "command row col" tuples from stdin and applies them
to an n-by-n grid. Commands: open, isOpen, isFull. Without --n, the first
token of the input is the grid dimension.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := RunGridClient(os.Stdin, os.Stdout, gridClientSize); err != nil {
			logrus.Fatalf("Grid client failed: %v", err)
		}
	},
}

// RunGridClient reads commands from in, applies them to a fresh grid and
// echoes each result to out, followed by the open-site count and whether
// the grid percolates. Out-of-range sites are reported inline and skipped.
func RunGridClient(in io.Reader, out io.Writer, n int) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	if n == 0 {
		tok, ok := nextToken(scanner)
		if !ok {
			return fmt.Errorf("missing grid size")
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("parsing grid size %q: %w", tok, err)
		}
		n = v
	}
	g, err := sim.NewGrid(n)
	if err != nil {
		return err
	}
	logrus.Debugf("grid client started with n=%d", n)

	for {
		command, ok := nextToken(scanner)
		if !ok {
			break
		}
		row, col, err := readSite(scanner, command)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s(%d, %d): ", command, row, col)
		result, err := applyGridCommand(g, command, row, col)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	fmt.Fprintf(out, "numberOfOpenSites(): %d\n", g.NumberOfOpenSites())
	fmt.Fprintf(out, "percolates(): %t\n", g.Percolates())
	return nil
}

func applyGridCommand(g *sim.Grid, command string, row, col int) (string, error) {
	switch command {
	case "open":
		if err := g.Open(row, col); err != nil {
			return "", err
		}
		return "void", nil
	case "isOpen":
		open, err := g.IsOpen(row, col)
		return strconv.FormatBool(open), err
	case "isFull":
		full, err := g.IsFull(row, col)
		return strconv.FormatBool(full), err
	default:
		return "unknown", nil
	}
}

func readSite(scanner *bufio.Scanner, command string) (row, col int, err error) {
	coords := [2]int{}
	for i := range coords {
		tok, ok := nextToken(scanner)
		if !ok {
			return 0, 0, fmt.Errorf("command %q: incomplete site", command)
		}
		coords[i], err = strconv.Atoi(tok)
		if err != nil {
			return 0, 0, fmt.Errorf("command %q: parsing coordinate %q: %w", command, tok, err)
		}
	}
	return coords[0], coords[1], nil
}

func nextToken(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func init() {
	gridCmd.Flags().IntVar(&gridClientSize, "n", 0, "Grid dimension (0 = read from the first input token)")
}
