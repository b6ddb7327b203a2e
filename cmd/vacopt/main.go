// Command vacopt runs one vacation-allocation optimization: it reads an
// OptimizationRequest as JSON from a file (or stdin when no argument is
// given) and writes the resulting OptimizationResult as JSON to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mcordeiromrc/SmartVacations/internal/models"
	"github.com/mcordeiromrc/SmartVacations/internal/optimizer"
)

func main() {
	input, err := readInput()
	if err != nil {
		log.Fatalf("reading request: %v", err)
	}

	var req models.OptimizationRequest
	if err := json.Unmarshal(input, &req); err != nil {
		log.Fatalf("parsing request: %v", err)
	}

	result, err := optimizer.Run(req)
	if err != nil {
		log.Fatalf("running optimization: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("writing result: %v", err)
	}

	fmt.Fprintf(os.Stderr, "solved via %s: %d allocation(s), total impact %s, %.2fs elapsed\n",
		result.SolverMethod, len(result.Allocations),
		humanize.FormatFloat("#,###.##", result.TotalImpact),
		result.OptimizationTimeSeconds)
}

func readInput() ([]byte, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}
	return io.ReadAll(os.Stdin)
}
