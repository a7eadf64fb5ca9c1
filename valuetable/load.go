package valuetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// LoadScalarSeed parses init_values.csv rows of the form "grid_id, value"
// into an existing Table. Returns ErrSeedUnreadable wrapping the parse
// error on malformed input (spec.md §7, SeedMissing is fatal at
// construction).
func LoadScalarSeed(r io.Reader, into *Table) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSeedUnreadable, err)
		}
		if len(row) != 2 {
			continue
		}

		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return fmt.Errorf("%w: value %q: %v", ErrSeedUnreadable, row[1], err)
		}
		into.Seed(row[0], value)
	}

	return nil
}

// LoadTimeIndexedSeed parses init_values.csv rows of the form "grid_id,
// bucket, value" into an existing TimeIndexed table.
func LoadTimeIndexedSeed(r io.Reader, into *TimeIndexed) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSeedUnreadable, err)
		}
		if len(row) != 3 {
			continue
		}

		bucketIdx, err := strconv.Atoi(row[1])
		if err != nil {
			return fmt.Errorf("%w: bucket %q: %v", ErrSeedUnreadable, row[1], err)
		}
		value, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return fmt.Errorf("%w: value %q: %v", ErrSeedUnreadable, row[2], err)
		}
		into.Seed(row[0], bucketIdx, value)
	}

	return nil
}
