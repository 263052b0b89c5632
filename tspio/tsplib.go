package tspio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arlotaylor/glstsp/tspmatrix"
)

// ParseTSPLIB reads a TSPLIB-format instance from r and returns its node
// coordinates in file order (spec.md §6). Only TYPE: TSP with
// EDGE_WEIGHT_TYPE: EUC_2D is supported; any other combination, or a
// missing header field, is rejected with ErrUnsupportedVariant. A DIMENSION
// header, if present, is cross-checked against the number of coordinate
// lines actually read and rejected with ErrDimensionMismatch on disagreement.
func ParseTSPLIB(r io.Reader) ([]tspmatrix.Point, error) {
	scanner := bufio.NewScanner(r)

	var kind, edgeWeight string
	var coords []tspmatrix.Point
	var inNodeSection bool
	dimension := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if inNodeSection {
			if line == "NODE_COORD_SECTION" {
				continue
			}
			p, err := parseNodeLine(line)
			if err != nil {
				return nil, err
			}
			coords = append(coords, p)
			continue
		}

		if line == "NODE_COORD_SECTION" {
			inNodeSection = true
			continue
		}

		key, value, ok := splitHeaderLine(line)
		if !ok {
			continue
		}
		switch key {
		case "TYPE":
			kind = value
		case "EDGE_WEIGHT_TYPE":
			edgeWeight = value
		case "DIMENSION":
			if d, err := strconv.Atoi(value); err == nil {
				dimension = d
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if kind != "TSP" || edgeWeight != "EUC_2D" {
		return nil, ErrUnsupportedVariant
	}
	if len(coords) < 2 {
		return nil, ErrEmptyInput
	}
	if dimension >= 0 && dimension != len(coords) {
		return nil, ErrDimensionMismatch
	}

	return coords, nil
}

// splitHeaderLine splits a "KEY : VALUE" or "KEY: VALUE" header line.
func splitHeaderLine(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// parseNodeLine parses a "index x y" NODE_COORD_SECTION line. The leading
// index is validated for shape but not otherwise used: nodes are assigned
// positions by file order, giving the 0-indexed internal numbering spec.md
// §6 requires regardless of the file's own (usually 1-based) indexing.
func parseNodeLine(line string) (tspmatrix.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tspmatrix.Point{}, ErrMalformedNode
	}

	if _, err := strconv.Atoi(fields[0]); err != nil {
		return tspmatrix.Point{}, ErrMalformedNode
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tspmatrix.Point{}, ErrMalformedNode
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tspmatrix.Point{}, ErrMalformedNode
	}

	return tspmatrix.Point{X: int32(x), Y: int32(y)}, nil
}
