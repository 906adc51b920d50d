package commands

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"line-fitter/internal/model"
	"line-fitter/pkg/geometry"
)

// loadPoints reads points from the optional file argument, or stdin.
func loadPoints(args []string) ([]geometry.Point2D, error) {
	if len(args) == 0 {
		return readPoints(os.Stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPoints(f)
}

// readPoints parses one point per line, "x y" or "x,y". Blank lines and
// lines starting with '#' are skipped. The GUI's coordinate bounds apply:
// out-of-range points are dropped with a warning.
func readPoints(r io.Reader) ([]geometry.Point2D, error) {
	set := model.NewPointSet()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected two coordinates, got %q", lineNo, text)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x %q: %v", lineNo, fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y %q: %v", lineNo, fields[1], err)
		}

		if !set.Add(x, y) {
			log.Printf("line %d: point (%g, %g) outside [%g, %g]; skipped",
				lineNo, x, y, model.CoordMin, model.CoordMax)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set.Points(), nil
}
