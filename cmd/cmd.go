/*
Trinity CLI - Cobra Command Structure
=======================================

This file implements the Cobra-based command structure for the Trinity
REPL. The root command launches an interactive session for evaluating
matrix expressions; REPL-internal commands provide variable management,
history, and display precision.
*/

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DoctorDalek1963/trinity/config"
	"github.com/DoctorDalek1963/trinity/environment"
	"github.com/DoctorDalek1963/trinity/eval"
	"github.com/DoctorDalek1963/trinity/history"
	"github.com/DoctorDalek1963/trinity/matrixvalue"
	"github.com/DoctorDalek1963/trinity/parser"
	"github.com/DoctorDalek1963/trinity/settings"
)

const banner = `
  ╔╦╗╦═╗╦╔╗╔╦╔╦╗╦ ╦
   ║ ╠╦╝║║║║║ ║ ╚╦╝
   ╩ ╩╚═╩╝╚╝╩ ╩  ╩
`

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

var env2 = environment.New(matrixvalue.Dim2)
var env3 = environment.New(matrixvalue.Dim3)

var rootCmd = &cobra.Command{
	Use:   "trinity",
	Short: "Trinity - a matrix expression calculator",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `Trinity` + colorReset + ` evaluates expressions over numbers and 2x2/3x3 matrices:
  ` + colorGreen + `✓` + colorReset + ` Named matrices, anonymous literals, and rotation matrices
  ` + colorGreen + `✓` + colorReset + ` Implicit multiplication, transpose, and integer powers
  ` + colorGreen + `✓` + colorReset + ` Calculation history and adjustable display precision`,
	Run: startREPL,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := config.Load("matrices.json", env2, env3); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Printf(colorYellow+"Warning: failed to load matrices.json: %v\n"+colorReset, err)
		}
	}
}

// startREPL launches the interactive evaluation session.
func startREPL(cmd *cobra.Command, args []string) {
	scanner := bufio.NewScanner(os.Stdin)

	printWelcome()

	for {
		fmt.Print(colorCyan + "» " + colorReset)

		if !scanner.Scan() {
			fmt.Println(colorYellow + "\nGoodbye!" + colorReset)
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit":
			fmt.Println(colorYellow + "Goodbye!" + colorReset)
			return

		case input == "clear" || input == "cls":
			clearScreen()
			printWelcome()
			continue

		case input == "help":
			printHelp()
			continue

		case input == "vars" || input == "variables":
			showVariables()
			continue

		case input == "history":
			if err := history.ShowHistory(); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}
			continue

		case strings.HasPrefix(input, "precision "):
			handlePrecision(input)
			continue

		case strings.HasPrefix(input, "set "):
			handleSet(input)
			continue

		default:
			handleExpression(input)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf(colorRed+"Input error: %v\n"+colorReset, err)
	}
}

func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  A Matrix Expression Calculator" + colorReset)
	fmt.Println(colorDim + "  Type 'help' for commands or 'exit' to quit\n" + colorReset)
}

func printHelp() {
	fmt.Println(colorCyan + "Trinity" + colorReset)
	fmt.Println(colorYellow + "┌─ BASIC COMMANDS ─────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expression>"+colorReset, "Evaluate a matrix expression")
	fmt.Printf("│ %-25s %s\n", colorGreen+"set <Name> <expr>"+colorReset, "Store a matrix under a name")
	fmt.Printf("│ %-25s %s\n", colorGreen+"vars"+colorReset, "List stored matrix names")
	fmt.Printf("│ %-25s %s\n", colorGreen+"history"+colorReset, "Show evaluation history")
	fmt.Printf("│ %-25s %s\n", colorGreen+"precision <n>"+colorReset, "Set display precision (0-20)")
	fmt.Printf("│ %-25s %s\n", colorGreen+"clear"+colorReset, "Clear the terminal")
	fmt.Printf("│ %-25s %s\n", colorGreen+"exit"+colorReset, "Exit Trinity")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
	fmt.Println(colorCyan + "┌─ EXAMPLES ───────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Numbers:"+colorReset, "3.2 * 5")
	fmt.Printf("│ %-25s %s\n", colorBold+"Matrix literal:"+colorReset, "[1 2; 3 4]")
	fmt.Printf("│ %-25s %s\n", colorBold+"Rotation:"+colorReset, "rot(45)")
	fmt.Printf("│ %-25s %s\n", colorBold+"Transpose:"+colorReset, "M ^ T")
	fmt.Printf("│ %-25s %s\n", colorBold+"Power:"+colorReset, "M ^ {1 + 2}")
	fmt.Println(colorCyan + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func formatValue(v matrixvalue.Value) string {
	if v.IsNumber() {
		format := fmt.Sprintf("%%.%dg", settings.Precision)
		return colorGreen + fmt.Sprintf(format, v.AsNumber()) + colorReset
	}
	return colorGreen + v.AsMatrix().String() + colorReset
}

func renderForHistory(v matrixvalue.Value) string {
	if v.IsNumber() {
		format := fmt.Sprintf("%%.%dg", settings.Precision)
		return fmt.Sprintf(format, v.AsNumber())
	}
	return v.AsMatrix().String()
}

func showVariables() {
	names2 := env2.Names()
	names3 := env3.Names()
	if len(names2) == 0 && len(names3) == 0 {
		fmt.Println(colorYellow + "No matrices stored." + colorReset)
		return
	}

	fmt.Println(colorCyan + "┌─ Stored Matrices ────────────────────────────────────────┐" + colorReset)
	for _, n := range names2 {
		m, _ := env2.Get(n.String())
		fmt.Printf(colorCyan+"│ "+colorReset+colorBold+"%-15s"+colorReset+" = %s\n", n.String(), m.String())
	}
	for _, n := range names3 {
		m, _ := env3.Get(n.String())
		fmt.Printf(colorCyan+"│ "+colorReset+colorBold+"%-15s"+colorReset+" = %s\n", n.String(), m.String())
	}
	fmt.Println(colorCyan + "└──────────────────────────────────────────────────────────┘" + colorReset)
}

func handlePrecision(input string) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		fmt.Println(colorRed + "Usage: " + colorReset + "precision <number>")
		return
	}

	precision, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Printf(colorRed+"Invalid number: %s\n"+colorReset, parts[1])
		return
	}

	if err := settings.Set(precision); err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorGreen+"Precision set to %d significant digits\n"+colorReset, settings.Precision)
}

// handleSet processes "set <Name> <expression>", storing the evaluated
// result in whichever environment matches its dimension.
func handleSet(input string) {
	rest := strings.TrimSpace(strings.TrimPrefix(input, "set "))
	parts := strings.SplitN(rest, " ", 2)
	if len(parts) != 2 {
		fmt.Println(colorRed + "Usage: " + colorReset + "set <Name> <expression>")
		return
	}

	name, exprText := parts[0], parts[1]
	node, err := parser.Parse(exprText)
	if err != nil {
		fmt.Printf(colorRed+"Parse error: %v\n"+colorReset, err)
		return
	}

	v, err := eval.Evaluate(node, env2, env3)
	if err != nil {
		fmt.Printf(colorRed+"Evaluation error: %v\n"+colorReset, err)
		return
	}

	if v.IsNumber() {
		fmt.Println(colorRed + "Cannot store a number as a named matrix." + colorReset)
		return
	}

	m := v.AsMatrix()
	target := env2
	if m.Dim() == matrixvalue.Dim3 {
		target = env3
	}
	if err := target.Set(name, m); err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorGreen+"%s = %s\n"+colorReset, name, m.String())
}

// handleExpression parses, evaluates, prints, and records an expression.
func handleExpression(input string) {
	node, err := parser.Parse(input)
	if err != nil {
		fmt.Printf(colorRed+"Parse error: %v\n"+colorReset, err)
		return
	}

	v, err := eval.Evaluate(node, env2, env3)
	if err != nil {
		fmt.Printf(colorRed+"Evaluation error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorBold+"= "+colorReset+"%s\n", formatValue(v))

	if err := history.AddHistory(input, v, renderForHistory); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to save to history: %v\n"+colorReset, err)
	}
}
