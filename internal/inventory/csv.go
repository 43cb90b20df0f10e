package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the fixed column layout of the dataset file.
var Header = []string{
	"brand", "model", "year", "mileage", "price", "fuel", "type",
	"reliability", "insurance_cost", "maintenance_cost",
	"suitable_driver_type", "color", "mpg_city", "mpg_highway",
	"safety_rating", "cargo_space",
}

// LoadFile reads the dataset CSV at path. A missing file is a fatal,
// user-visible condition; the caller is expected to stop, not recover.
func LoadFile(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %q has no header row", path)
	}
	if len(rows[0]) != len(Header) {
		return nil, fmt.Errorf("dataset %q: expected %d columns, got %d", path, len(Header), len(rows[0]))
	}

	inv := &Inventory{}
	for i, row := range rows[1:] {
		l, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset %q row %d: %w", path, i+2, err)
		}
		l.ID = i + 1
		inv.Items = append(inv.Items, l)
	}

	return inv, nil
}

// SaveFile writes the inventory to a CSV file at path, creating intermediate
// directories as needed.
func SaveFile(path string, inv *Inventory) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, l := range inv.Items {
		row := []string{
			l.Brand,
			l.Model,
			strconv.Itoa(l.Year),
			strconv.Itoa(l.Mileage),
			strconv.FormatFloat(l.Price, 'f', -1, 64),
			l.Fuel,
			l.Type,
			string(l.Reliability),
			string(l.Insurance),
			string(l.Maintenance),
			l.DriverTypes,
			l.Color,
			strconv.Itoa(l.MPGCity),
			strconv.Itoa(l.MPGHighway),
			strconv.Itoa(l.SafetyRating),
			strconv.Itoa(l.CargoSpace),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}

func parseRow(row []string) (Listing, error) {
	if len(row) != len(Header) {
		return Listing{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}

	year, err := strconv.Atoi(row[2])
	if err != nil {
		return Listing{}, fmt.Errorf("year: %w", err)
	}
	mileage, err := strconv.Atoi(row[3])
	if err != nil {
		return Listing{}, fmt.Errorf("mileage: %w", err)
	}
	price, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Listing{}, fmt.Errorf("price: %w", err)
	}
	mpgCity, err := strconv.Atoi(row[12])
	if err != nil {
		return Listing{}, fmt.Errorf("mpg_city: %w", err)
	}
	mpgHighway, err := strconv.Atoi(row[13])
	if err != nil {
		return Listing{}, fmt.Errorf("mpg_highway: %w", err)
	}
	safety, err := strconv.Atoi(row[14])
	if err != nil {
		return Listing{}, fmt.Errorf("safety_rating: %w", err)
	}
	cargo, err := strconv.Atoi(row[15])
	if err != nil {
		return Listing{}, fmt.Errorf("cargo_space: %w", err)
	}

	l := Listing{
		Brand:        row[0],
		Model:        row[1],
		Year:         year,
		Mileage:      mileage,
		Price:        price,
		Fuel:         row[5],
		Type:         row[6],
		Reliability:  Tier(row[7]),
		Insurance:    Tier(row[8]),
		Maintenance:  Tier(row[9]),
		DriverTypes:  row[10],
		Color:        row[11],
		MPGCity:      mpgCity,
		MPGHighway:   mpgHighway,
		SafetyRating: safety,
		CargoSpace:   cargo,
	}

	for _, t := range []Tier{l.Reliability, l.Insurance, l.Maintenance} {
		if !t.IsValid() {
			return Listing{}, fmt.Errorf("unknown tier %q", t)
		}
	}

	return l, nil
}
