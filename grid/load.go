package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// hexVertexColumns is the number of columns in hexagon_grid_table.csv
// after the leading grid_id column: 6 vertices * (x, y) = 12.
const hexVertexColumns = 12

// hexRowColumns is the total expected column count per row, per spec.md §6.
const hexRowColumns = 1 + hexVertexColumns

// LoadCells parses hexagon_grid_table.csv rows of the form
// "grid_id, v1x, v1y, ..., v6x, v6y" (13 columns) into Cells whose
// centroid is the mean of the six hexagon vertices, matching the
// original implementation's centroid-by-averaging approach
// (original_source/mobility_on_demand/model/grid.py).
func LoadCells(r io.Reader) ([]Cell, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var cells []Cell
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("grid: reading hex grid csv: %w", err)
		}
		if len(row) != hexRowColumns {
			continue
		}

		var lngSum, latSum float64
		for i := 1; i < hexRowColumns; i += 2 {
			lng, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("grid: parsing vertex lng in row %v: %w", row, err)
			}
			lat, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("grid: parsing vertex lat in row %v: %w", row, err)
			}
			lngSum += lng
			latSum += lat
		}

		cells = append(cells, Cell{
			ID:  row[0],
			Lng: lngSum / 6,
			Lat: latSum / 6,
		})
	}

	return cells, nil
}

// LoadTransitions parses idle_transition_probability.csv rows of the form
// "hour, start_grid_id, end_grid_id, probability".
func LoadTransitions(r io.Reader) ([]TransitionRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []TransitionRow
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("grid: reading transition csv: %w", err)
		}
		if len(row) != 4 {
			continue
		}

		hour, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("grid: parsing hour in row %v: %w", row, err)
		}
		prob, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("grid: parsing probability in row %v: %w", row, err)
		}

		rows = append(rows, TransitionRow{
			Hour:        hour,
			StartCell:   row[1],
			EndCell:     row[2],
			Probability: prob,
		})
	}

	return rows, nil
}
